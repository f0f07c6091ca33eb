package recent

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"kctx/pkg/logging"
)

const (
	// DefaultMaxEntries is the list capacity when none is configured.
	DefaultMaxEntries = 5

	// StateKey is the Store key holding the list.
	StateKey = "recent-contexts"
)

// WriteError reports that the recency list could not be persisted.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save recent contexts: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type state struct {
	Contexts []string `yaml:"contexts"`
}

// Tracker maintains the most-recently-used list of context names.
type Tracker struct {
	mu    sync.Mutex
	store Store
	max   int
}

// NewTracker creates a Tracker on store. A max of zero or less selects
// DefaultMaxEntries.
func NewTracker(store Store, max int) *Tracker {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Tracker{store: store, max: max}
}

// Max returns the list capacity.
func (t *Tracker) Max() int {
	return t.max
}

// Recent returns the stored names, most recent first, that are present in
// available. The result never exceeds the capacity. Unreadable state is
// logged and treated as empty.
func (t *Tracker) Recent(available []string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	known := make(map[string]struct{}, len(available))
	for _, name := range available {
		known[name] = struct{}{}
	}

	result := make([]string, 0, t.max)
	for _, name := range t.read() {
		if _, ok := known[name]; !ok {
			continue
		}
		result = append(result, name)
		if len(result) == t.max {
			break
		}
	}
	return result
}

// Add moves name to the front of the list and persists it. Empty names are
// ignored.
func (t *Tracker) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	list := []string{name}
	for _, existing := range t.read() {
		if existing == name {
			continue
		}
		list = append(list, existing)
	}
	if len(list) > t.max {
		list = list[:t.max]
	}

	return t.write(list)
}

// Clear empties the list.
func (t *Tracker) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.write([]string{})
}

// read returns the stored list without duplicates or empty names.
func (t *Tracker) read() []string {
	data, err := t.store.Get(StateKey)
	if err != nil {
		logging.Warn("Recent", "Could not read recent contexts, starting empty: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var s state
	if err := yaml.Unmarshal(data, &s); err != nil {
		logging.Warn("Recent", "Ignoring malformed recent contexts state: %v", err)
		return nil
	}

	seen := make(map[string]struct{}, len(s.Contexts))
	list := make([]string, 0, len(s.Contexts))
	for _, name := range s.Contexts {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		list = append(list, name)
	}
	return list
}

func (t *Tracker) write(list []string) error {
	data, err := yaml.Marshal(state{Contexts: list})
	if err != nil {
		return &WriteError{Err: err}
	}
	if err := t.store.Set(StateKey, data); err != nil {
		logging.Error("Recent", err, "Failed to persist recent contexts")
		return &WriteError{Err: err}
	}
	logging.Debug("Recent", "Recorded %d recent contexts", len(list))
	return nil
}
