// Package recent remembers the most recently switched-to contexts.
//
// The list lives in a small key/value Store that is independent of the
// kubeconfig file. FileStore keeps one YAML file per key below the kctx
// state directory; MemoryStore is used by tests and when history is
// disabled.
//
// Tracker owns the list semantics: names move to the front when used
// again, duplicates are never stored and the list is capped (five entries
// by default). Reads are forgiving, a missing or corrupt state file simply
// yields an empty list, while write failures are returned to the caller.
package recent
