package context

import (
	"fmt"
	"strings"
	"sync"

	"kctx/internal/kubeconfig"
	"kctx/pkg/logging"
)

// ConfigStore is the persistence the Repository needs.
// *kubeconfig.Store satisfies it.
type ConfigStore interface {
	Load() *kubeconfig.Document
	Save(doc *kubeconfig.Document) error
}

// Repository exposes queries and mutations over the kubeconfig contexts.
type Repository struct {
	mu    sync.Mutex
	store ConfigStore
}

// NewRepository creates a Repository backed by store.
func NewRepository(store ConfigStore) *Repository {
	return &Repository{store: store}
}

// Document returns a fresh snapshot of the kubeconfig.
func (r *Repository) Document() *kubeconfig.Document {
	return r.store.Load()
}

// GetContexts returns all contexts in document order.
func (r *Repository) GetContexts() []Context {
	return FromDocument(r.store.Load())
}

// GetContext returns the context with the given name.
func (r *Repository) GetContext(name string) (*Context, error) {
	doc := r.store.Load()

	nc := doc.FindContext(name)
	if nc == nil {
		return nil, &ContextNotFoundError{Name: name}
	}
	ctx := fromNamed(*nc, doc.CurrentContext)
	return &ctx, nil
}

// GetCurrentContextName returns the current-context pointer as stored,
// or an empty string when none is set.
func (r *Repository) GetCurrentContextName() string {
	return r.store.Load().CurrentContext
}

// GetCurrentContext returns the active context, or nil when no context is
// active or the pointer names a context that does not exist.
func (r *Repository) GetCurrentContext() *Context {
	doc := r.store.Load()
	if doc.CurrentContext == "" {
		return nil
	}

	nc := doc.FindContext(doc.CurrentContext)
	if nc == nil {
		logging.Debug("Repository", "current-context %q does not match any context", doc.CurrentContext)
		return nil
	}
	ctx := fromNamed(*nc, doc.CurrentContext)
	return &ctx
}

// GetContextNames returns all context names, e.g. for shell completion.
func (r *Repository) GetContextNames() []string {
	return Names(r.GetContexts())
}

// SwitchContext makes name the active context.
// The kubeconfig is not modified when the context does not exist.
func (r *Repository) SwitchContext(name string) error {
	return r.SwitchContextWithNamespace(name, "")
}

// SwitchContextWithNamespace makes name the active context and, when
// namespace is non-empty, assigns it to that context. Both changes are
// persisted in a single write.
func (r *Repository) SwitchContextWithNamespace(name, namespace string) error {
	namespace = strings.TrimSpace(namespace)

	return r.update(name, func(doc *kubeconfig.Document, nc *kubeconfig.NamedContext) {
		if namespace != "" {
			nc.Context.Namespace = namespace
		}
		doc.CurrentContext = name
	})
}

// SetNamespace assigns namespace to the named context. An empty namespace
// removes the namespace key instead of storing an empty string.
func (r *Repository) SetNamespace(name, namespace string) error {
	namespace = strings.TrimSpace(namespace)

	return r.update(name, func(_ *kubeconfig.Document, nc *kubeconfig.NamedContext) {
		nc.Context.Namespace = namespace
	})
}

// update re-reads the document, applies mutate to the named context and
// saves once.
func (r *Repository) update(name string, mutate func(*kubeconfig.Document, *kubeconfig.NamedContext)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := r.store.Load()

	nc := doc.FindContext(name)
	if nc == nil {
		return &ContextNotFoundError{Name: name}
	}

	mutate(doc, nc)

	if err := r.store.Save(doc); err != nil {
		logging.Error("Repository", err, "Failed to update context %s", name)
		return fmt.Errorf("failed to update context %q: %w", name, err)
	}

	logging.Debug("Repository", "Updated context %s (current-context=%s, namespace=%q)",
		name, doc.CurrentContext, nc.Context.Namespace)
	return nil
}
