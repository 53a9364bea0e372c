// Package logging provides a minimal logging interface and adapters for
// threadmesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the orchestration core uses for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.New(logging.LevelInfo, "json", os.Stdout)
//	srv := server.New(cfg, chat, server.WithLogger(logger))
//
// The design intentionally keeps the interface minimal so tests and embedders
// can plug any structured logger.
package logging
