// Package namespace derives the namespaces offered when assigning a
// namespace to a context.
//
// The list is advisory: any namespace name may be assigned, including ones
// that appear nowhere in the kubeconfig.
package namespace

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation"

	"kctx/internal/kubeconfig"
)

// Default is the namespace used by contexts that do not set one.
const Default = metav1.NamespaceDefault

// commonNamespaces is sorted.
var commonNamespaces = []string{
	Default,
	corev1.NamespaceNodeLease,
	metav1.NamespacePublic,
	metav1.NamespaceSystem,
}

// CommonNamespaces returns the namespaces every cluster has.
func CommonNamespaces() []string {
	out := make([]string, len(commonNamespaces))
	copy(out, commonNamespaces)
	return out
}

// FromContexts returns every namespace set on a context in doc, plus
// "default", sorted.
func FromContexts(doc *kubeconfig.Document) []string {
	namespaces := sets.New[string](Default)
	if doc != nil {
		for _, nc := range doc.Contexts {
			if ns := nc.Context.Namespace; ns != "" {
				namespaces.Insert(ns)
			}
		}
	}
	return sets.List(namespaces)
}

// AllAvailable returns the union of CommonNamespaces and FromContexts,
// sorted lexicographically.
func AllAvailable(doc *kubeconfig.Document) []string {
	all := sets.New[string](commonNamespaces...)
	all.Insert(FromContexts(doc)...)
	return sets.List(all)
}

// Validate checks that ns is a valid Kubernetes namespace name (an RFC 1123
// label). The empty string is valid and means "clear the namespace".
func Validate(ns string) error {
	if ns == "" {
		return nil
	}
	if errs := validation.IsDNS1123Label(ns); len(errs) > 0 {
		return fmt.Errorf("invalid namespace %q: %s", ns, strings.Join(errs, "; "))
	}
	return nil
}
