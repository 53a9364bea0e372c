// Package core defines the shared conversation types exchanged between the
// context assembler, the agent executor and the HTTP surface: messages,
// turns and the context pack describing a topic thread. All values are
// request-scoped and immutable once handed to the orchestration layer.
package core
