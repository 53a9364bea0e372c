// Package memory implements the two memory layers of a topic thread and the
// assembly of both into the primary completion prompt.
//
// Long-term memory is a topic summary: a short description of the parent
// conversation relative to the excerpt the thread branched from. It is
// generated at most once per thread, returned to the caller for persistence
// and reused verbatim afterwards. Working memory is the bounded window of
// recent turns re-rendered into every request.
package memory
