// Package kubeconfig reads and writes the kubeconfig file that holds a user's
// cluster-access contexts.
//
// # Location
//
// The file is located the same way kubectl does it for a single file:
//  1. An explicit path passed to NewStoreWithPath (the --kubeconfig flag)
//  2. The KUBECONFIG environment variable (first entry if it is a list)
//  3. ~/.kube/config
//
// Merging several kubeconfig files is not supported; only the first entry
// of a KUBECONFIG list is read and written.
//
// # Document model
//
// Only the parts kctx works with are typed: the current-context pointer and
// the cluster/user/namespace references of each context. Cluster and user
// entries are kept as raw YAML nodes keyed by name, and any key the model
// does not know about is captured as an undecoded node in Extra maps, so a
// load, mutate and save cycle preserves everything else in meaning.
//
// # Failure model
//
// Reads never fail: a missing or unparsable file loads as an empty
// Document and a warning is logged. Writes always report failure through a
// *WriteError. Writes replace the file in place without a temporary file, so
// a crash mid-write can leave a truncated file behind.
//
// # Concurrency
//
// Store does no locking of its own. Callers in a multi-process setting must
// serialise writes to the same path themselves.
package kubeconfig
