package search

import (
	"k8s.io/apimachinery/pkg/util/sets"

	kcontext "kctx/internal/context"
)

// FilterOptions lists the values the cluster and namespace filters can take.
type FilterOptions struct {
	Clusters   []string `json:"clusters"`
	Namespaces []string `json:"namespaces"`
}

// Options collects the distinct clusters and displayed namespaces of
// contexts, sorted.
func Options(contexts []kcontext.Context) FilterOptions {
	clusters := sets.New[string]()
	namespaces := sets.New[string]()

	for _, c := range contexts {
		if c.Cluster != "" {
			clusters.Insert(c.Cluster)
		}
		namespaces.Insert(c.DisplayNamespace())
	}

	return FilterOptions{
		Clusters:   sets.List(clusters),
		Namespaces: sets.List(namespaces),
	}
}
