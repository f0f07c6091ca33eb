package kubeconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/client-go/tools/clientcmd"

	"kctx/pkg/logging"
)

const (
	// fileMode matches what kubectl uses for kubeconfig files.
	fileMode = 0600
	dirMode  = 0755
)

// Store loads and saves a single kubeconfig file.
type Store struct {
	path string
}

// NewStore creates a Store that resolves its path on every call from the
// KUBECONFIG environment variable, falling back to ~/.kube/config.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithPath creates a Store pinned to the given file.
// An empty path behaves like NewStore.
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Path returns the file this Store reads and writes.
func (s *Store) Path() string {
	if s.path != "" {
		return s.path
	}
	return ResolvePath()
}

// ResolvePath returns the kubeconfig location from the environment.
// When KUBECONFIG holds a list, the first non-empty entry is used.
func ResolvePath() string {
	if env := os.Getenv(clientcmd.RecommendedConfigPathEnvVar); env != "" {
		for _, p := range filepath.SplitList(env) {
			if p = strings.TrimSpace(p); p != "" {
				return p
			}
		}
	}
	return clientcmd.RecommendedHomeFile
}

// Load reads and parses the kubeconfig. It never fails: a missing or
// malformed file yields an empty Document.
func (s *Store) Load() *Document {
	doc, err := s.LoadStrict()
	if err != nil {
		logging.Warn("Kubeconfig", "Using empty kubeconfig: %v", err)
		return &Document{}
	}
	return doc
}

// LoadStrict reads and parses the kubeconfig and reports why it could not.
// The returned error is always a *ConfigUnavailableError.
func (s *Store) LoadStrict() (*Document, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		reason := "unreadable"
		if errors.Is(err, os.ErrNotExist) {
			reason = "missing"
		}
		return nil, &ConfigUnavailableError{Path: path, Reason: reason, Err: err}
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &ConfigUnavailableError{Path: path, Reason: "unparsable", Err: err}
	}

	logging.Debug("Kubeconfig", "Loaded %d contexts from %s", len(doc.Contexts), path)
	return doc, nil
}

// Save serialises the document and replaces the file content.
// Failures are returned as *WriteError.
func (s *Store) Save(doc *Document) error {
	path := s.Path()

	if doc == nil {
		return &WriteError{Path: path, Err: errors.New("nil document")}
	}

	data, err := Encode(doc)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, fileMode); err != nil {
		logging.Error("Kubeconfig", err, "Failed to write %s", path)
		return &WriteError{Path: path, Err: err}
	}

	logging.Debug("Kubeconfig", "Saved %d contexts to %s", len(doc.Contexts), path)
	return nil
}

// Parse decodes kubeconfig YAML. Empty input yields an empty Document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse kubeconfig: %w", err)
	}
	return &doc, nil
}

// Encode renders a Document as YAML with two-space indentation.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode kubeconfig: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode kubeconfig: %w", err)
	}
	return buf.Bytes(), nil
}
