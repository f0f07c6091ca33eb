package search

import (
	"sort"
	"strings"

	kcontext "kctx/internal/context"
)

// Field identifies a searchable context field.
type Field string

const (
	FieldName      Field = "name"
	FieldCluster   Field = "cluster"
	FieldUser      Field = "user"
	FieldNamespace Field = "namespace"
)

// Match qualities per field.
const (
	ExactScore     = 100.0
	PrefixScore    = 75.0
	SubstringScore = 50.0

	// MaxScore is the score given to every result of an empty query.
	MaxScore = 100.0
)

// fieldWeights sum to 1 so the weighted score stays within 0-100.
var fieldWeights = []struct {
	field  Field
	weight float64
	value  func(kcontext.Context) string
}{
	{FieldName, 0.40, func(c kcontext.Context) string { return c.Name }},
	{FieldCluster, 0.25, func(c kcontext.Context) string { return c.Cluster }},
	{FieldUser, 0.20, func(c kcontext.Context) string { return c.User }},
	{FieldNamespace, 0.15, func(c kcontext.Context) string { return c.Namespace }},
}

// Filters selects and ranks contexts.
type Filters struct {
	// Query is matched against name, cluster, user and namespace.
	// Whitespace-only queries are treated as empty.
	Query string
	// Cluster keeps only contexts referencing exactly this cluster.
	Cluster string
	// Namespace keeps only contexts whose displayed namespace is exactly
	// this value; unset namespaces display as "default".
	Namespace string
	// ShowOnlyCurrent keeps only the active context.
	ShowOnlyCurrent bool
	// ShowOnlyWithNamespace keeps only contexts that set a namespace.
	ShowOnlyWithNamespace bool
}

// Active reports whether any hard filter is set.
func (f Filters) Active() bool {
	return f.Cluster != "" || f.Namespace != "" || f.ShowOnlyCurrent || f.ShowOnlyWithNamespace
}

// Result is one ranked search hit.
type Result struct {
	Context kcontext.Context `json:"context"`
	// Score is the relevance between 0 and 100.
	Score float64 `json:"score"`
	// MatchedFields lists the fields that contributed, in field order.
	MatchedFields []Field `json:"matchedFields,omitempty"`
}

// Search filters contexts and orders them by relevance.
// The input slice is not modified.
func Search(contexts []kcontext.Context, f Filters) []Result {
	query := foldCase(strings.TrimSpace(f.Query))

	results := make([]Result, 0, len(contexts))
	for _, c := range contexts {
		if !f.keep(c) {
			continue
		}

		if query == "" {
			results = append(results, Result{Context: c, Score: MaxScore})
			continue
		}

		score, matched := scoreContext(c, query)
		if score <= 0 {
			continue
		}
		results = append(results, Result{Context: c, Score: score, MatchedFields: matched})
	}

	if query != "" {
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].Score != results[j].Score {
				return results[i].Score > results[j].Score
			}
			return results[i].Context.Name < results[j].Context.Name
		})
	}

	return results
}

// keep applies the hard filters.
func (f Filters) keep(c kcontext.Context) bool {
	if f.ShowOnlyCurrent && !c.Current {
		return false
	}
	if f.ShowOnlyWithNamespace && !c.HasNamespace() {
		return false
	}
	if f.Cluster != "" && c.Cluster != f.Cluster {
		return false
	}
	if f.Namespace != "" && c.DisplayNamespace() != f.Namespace {
		return false
	}
	return true
}

func scoreContext(c kcontext.Context, query string) (float64, []Field) {
	var total float64
	var matched []Field

	for _, fw := range fieldWeights {
		quality := matchQuality(fw.value(c), query)
		if quality == 0 {
			continue
		}
		total += quality * fw.weight
		matched = append(matched, fw.field)
	}

	if total > MaxScore {
		total = MaxScore
	}
	return total, matched
}

// foldCase is the case rule shared by scoring and highlighting.
func foldCase(s string) string {
	return strings.ToLower(s)
}

// matchQuality scores a single field against a query already passed
// through foldCase.
func matchQuality(value, query string) float64 {
	v := foldCase(value)
	if v == "" || len(query) > len(v) {
		return 0
	}

	switch {
	case v == query:
		return ExactScore
	case strings.HasPrefix(v, query):
		return PrefixScore
	case strings.Contains(v, query):
		return SubstringScore
	default:
		return 0
	}
}
