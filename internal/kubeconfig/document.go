package kubeconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the in-memory form of a kubeconfig file.
type Document struct {
	APIVersion string `yaml:"apiVersion,omitempty"`
	Kind       string `yaml:"kind,omitempty"`
	// CurrentContext names the active context. It is not required to
	// reference an existing entry.
	CurrentContext string         `yaml:"current-context,omitempty"`
	Contexts       []NamedContext `yaml:"contexts,omitempty"`
	Clusters       []RawEntry     `yaml:"clusters,omitempty"`
	Users          []RawEntry     `yaml:"users,omitempty"`
	// Extra holds top-level keys kctx does not interpret, such as
	// preferences and extensions, as undecoded nodes.
	Extra map[string]yaml.Node `yaml:",inline"`
}

// NamedContext is one entry of the contexts sequence.
type NamedContext struct {
	Name    string               `yaml:"name"`
	Context ContextInfo          `yaml:"context"`
	Extra   map[string]yaml.Node `yaml:",inline"`
}

// ContextInfo carries the references of a context.
// An empty Namespace is never written to disk.
type ContextInfo struct {
	Cluster   string               `yaml:"cluster"`
	User      string               `yaml:"user"`
	Namespace string               `yaml:"namespace,omitempty"`
	Extra     map[string]yaml.Node `yaml:",inline"`
}

// RawEntry is a cluster or user entry preserved verbatim.
// Only the name is decoded; the rest of the node is written back untouched.
type RawEntry struct {
	Name string
	node yaml.Node
}

// NewRawEntry builds an entry that carries only a name. Useful when creating
// documents in code.
func NewRawEntry(name string) RawEntry {
	return RawEntry{
		Name: name,
		node: yaml.Node{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: "name"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			},
		},
	}
}

// UnmarshalYAML keeps the whole node and extracts the name key.
func (e *RawEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping for named entry", value.Line)
	}

	e.node = *value
	e.Name = ""
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "name" {
			e.Name = value.Content[i+1].Value
		}
	}
	return nil
}

// MarshalYAML writes back the preserved node.
func (e RawEntry) MarshalYAML() (interface{}, error) {
	if e.node.Kind == 0 {
		return map[string]string{"name": e.Name}, nil
	}
	node := e.node
	return &node, nil
}

// ContextIndex returns the index of the last context entry with the given
// name, or -1. When names are duplicated the last entry wins for lookups.
func (d *Document) ContextIndex(name string) int {
	for i := len(d.Contexts) - 1; i >= 0; i-- {
		if d.Contexts[i].Name == name {
			return i
		}
	}
	return -1
}

// FindContext returns the last context entry with the given name, or nil.
func (d *Document) FindContext(name string) *NamedContext {
	i := d.ContextIndex(name)
	if i < 0 {
		return nil
	}
	return &d.Contexts[i]
}

// HasContext reports whether a context entry with the given name exists.
func (d *Document) HasContext(name string) bool {
	return d.ContextIndex(name) >= 0
}

// ClusterNames returns the names of the cluster entries in document order.
func (d *Document) ClusterNames() []string {
	return entryNames(d.Clusters)
}

// UserNames returns the names of the user entries in document order.
func (d *Document) UserNames() []string {
	return entryNames(d.Users)
}

func entryNames(entries []RawEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
