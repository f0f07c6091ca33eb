package context

import (
	"errors"
	"fmt"

	"kctx/internal/kubeconfig"
)

// DefaultNamespace is shown for contexts that do not set a namespace.
const DefaultNamespace = "default"

// Context is a named cluster-access profile.
type Context struct {
	Name    string `json:"name"`
	Cluster string `json:"cluster"`
	User    string `json:"user"`
	// Namespace is empty when the context does not set one.
	Namespace string `json:"namespace,omitempty"`
	// Current is derived from the document's current-context pointer.
	Current bool `json:"current"`
}

// DisplayNamespace returns the namespace, or "default" when unset.
func (c Context) DisplayNamespace() string {
	if c.Namespace == "" {
		return DefaultNamespace
	}
	return c.Namespace
}

// HasNamespace reports whether the context sets a namespace explicitly.
func (c Context) HasNamespace() bool {
	return c.Namespace != ""
}

// ContextNotFoundError is returned when a named context does not exist.
type ContextNotFoundError struct {
	Name string
}

func (e *ContextNotFoundError) Error() string {
	return fmt.Sprintf("context %q not found", e.Name)
}

// IsNotFound reports whether err is, or wraps, a ContextNotFoundError.
func IsNotFound(err error) bool {
	var nf *ContextNotFoundError
	return errors.As(err, &nf)
}

// FromDocument projects the contexts of doc in document order.
func FromDocument(doc *kubeconfig.Document) []Context {
	if doc == nil {
		return []Context{}
	}

	contexts := make([]Context, 0, len(doc.Contexts))
	for _, nc := range doc.Contexts {
		contexts = append(contexts, fromNamed(nc, doc.CurrentContext))
	}
	return contexts
}

func fromNamed(nc kubeconfig.NamedContext, current string) Context {
	return Context{
		Name:      nc.Name,
		Cluster:   nc.Context.Cluster,
		User:      nc.Context.User,
		Namespace: nc.Context.Namespace,
		Current:   current != "" && nc.Name == current,
	}
}

// Names returns the names of the given contexts in order.
func Names(contexts []Context) []string {
	names := make([]string, len(contexts))
	for i, c := range contexts {
		names[i] = c.Name
	}
	return names
}
