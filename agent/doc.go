// Package agent contains the background analysis agents that run alongside
// the primary chat completion, and the machinery that schedules them. The
// package focuses on three concerns:
//
//  1. A static, validated catalog of agent definitions (Registry)
//  2. Bounded concurrent dispatch with per-agent timeouts (Executor, Pool)
//  3. Concrete agent implementations (Brainstorm)
//
// Design principles:
//   - Minimal hidden global state; providers and loggers are injected
//   - Failure isolation; one agent's error or timeout never affects another
//     agent or the primary response
//   - Extensibility; adding an agent kind means one Definition plus one
//     Agent implementation, with no change to the scheduling machinery
//
// Execution model: the executor partitions the enabled working set by
// execution mode, submits parallel agents to a fixed-capacity worker pool and
// runs sequential agents one after another in registry order. Every agent
// sees the same immutable conversation history; results land in disjoint
// slots of a map keyed by agent id, so no cross-task synchronization beyond
// "wait for all" is needed.
package agent
