// Package context provides kubectl-style context management on top of the
// kubeconfig file.
//
// A Repository projects the kubeconfig Document into a list of Context
// values and performs the mutations kctx supports:
//   - Switch the active context with SwitchContext
//   - Switch and assign a namespace in a single write with SwitchContextWithNamespace
//   - Assign or clear a context's namespace with SetNamespace
//
// Every call re-reads the kubeconfig; nothing is cached between calls. This
// keeps independently invoked commands consistent without any shared
// initialisation, and is cheap because kubeconfig files are small.
//
// # Duplicate names
//
// kubectl does not prevent two context entries with the same name. Listing
// returns every entry in document order; lookups and mutations by name use
// the last entry with that name.
//
// # Concurrency
//
// A Repository serialises its own read-modify-write cycles with a mutex.
// Concurrent writers in different processes are not coordinated; callers
// that need that must hold an external lock keyed on the kubeconfig path.
package context
