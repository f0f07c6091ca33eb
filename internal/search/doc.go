// Package search filters and ranks contexts for the search command.
//
// Search applies hard filters first (current only, namespace set, exact
// cluster, exact namespace) and then scores the survivors against the
// free-text query. Each of the name, cluster, user and namespace fields
// is matched case-insensitively:
//
//	exact match       100
//	prefix match       75
//	substring match    50
//
// and weighted by field importance (name 0.40, cluster 0.25, user 0.20,
// namespace 0.15), so a relevance score always lies between 0 and 100.
// Contexts scoring zero are not part of the result.
//
// Highlighting is a separate text transform that never affects scoring.
package search
