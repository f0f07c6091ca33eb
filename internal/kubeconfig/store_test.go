package kubeconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"k8s.io/client-go/tools/clientcmd"
)

func TestResolvePath(t *testing.T) {
	t.Run("defaults to home kubeconfig", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "")
		assert.Equal(t, clientcmd.RecommendedHomeFile, ResolvePath())
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/tmp/other-config")
		assert.Equal(t, "/tmp/other-config", ResolvePath())
	})

	t.Run("first entry of a path list", func(t *testing.T) {
		list := strings.Join([]string{"", "/tmp/first", "/tmp/second"}, string(os.PathListSeparator))
		t.Setenv("KUBECONFIG", list)
		assert.Equal(t, "/tmp/first", ResolvePath())
	})

	t.Run("explicit path wins over environment", func(t *testing.T) {
		t.Setenv("KUBECONFIG", "/tmp/from-env")
		assert.Equal(t, "/tmp/pinned", NewStoreWithPath("/tmp/pinned").Path())
		assert.Equal(t, "/tmp/from-env", NewStore().Path())
	})
}

func TestStore_Load(t *testing.T) {
	t.Run("parses contexts and pointer", func(t *testing.T) {
		store := NewStoreWithPath(writeKubeconfig(t, sampleKubeconfig))

		doc := store.Load()
		require.Len(t, doc.Contexts, 2)
		assert.Equal(t, "dev", doc.CurrentContext)
		assert.Equal(t, "dev", doc.Contexts[0].Name)
		assert.Equal(t, "dev-cluster", doc.Contexts[0].Context.Cluster)
		assert.Equal(t, "dev-admin", doc.Contexts[0].Context.User)
		assert.Equal(t, "team-a", doc.Contexts[0].Context.Namespace)
		assert.Empty(t, doc.Contexts[1].Context.Namespace)
		assert.Equal(t, []string{"dev-cluster", "prod-cluster"}, doc.ClusterNames())
		assert.Equal(t, []string{"dev-admin", "prod-admin"}, doc.UserNames())
	})

	t.Run("missing file yields empty document", func(t *testing.T) {
		store := NewStoreWithPath(filepath.Join(t.TempDir(), "does-not-exist"))

		doc := store.Load()
		require.NotNil(t, doc)
		assert.Empty(t, doc.Contexts)
		assert.Empty(t, doc.CurrentContext)
	})

	t.Run("malformed file yields empty document", func(t *testing.T) {
		store := NewStoreWithPath(writeKubeconfig(t, "contexts: [unterminated"))

		doc := store.Load()
		require.NotNil(t, doc)
		assert.Empty(t, doc.Contexts)
	})

	t.Run("empty file yields empty document", func(t *testing.T) {
		store := NewStoreWithPath(writeKubeconfig(t, ""))

		doc := store.Load()
		require.NotNil(t, doc)
		assert.Empty(t, doc.Contexts)
	})
}

func TestStore_LoadStrict(t *testing.T) {
	tests := []struct {
		name       string
		path       func(t *testing.T) string
		wantReason string
	}{
		{
			name:       "missing",
			path:       func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
			wantReason: "missing",
		},
		{
			name:       "unparsable",
			path:       func(t *testing.T) string { return writeKubeconfig(t, "- just\n- a list\n") },
			wantReason: "unparsable",
		},
		{
			name:       "unreadable directory",
			path:       func(t *testing.T) string { return t.TempDir() },
			wantReason: "unreadable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStoreWithPath(tt.path(t)).LoadStrict()
			require.Error(t, err)

			var cu *ConfigUnavailableError
			require.True(t, errors.As(err, &cu))
			assert.Equal(t, tt.wantReason, cu.Reason)
		})
	}
}

func TestStore_RoundTrip(t *testing.T) {
	path := writeKubeconfig(t, sampleKubeconfig)
	store := NewStoreWithPath(path)

	before := store.Load()
	require.NoError(t, store.Save(before))
	after := store.Load()

	assert.Equal(t, before.CurrentContext, after.CurrentContext)
	require.Len(t, after.Contexts, len(before.Contexts))
	for i := range before.Contexts {
		assert.Equal(t, before.Contexts[i].Name, after.Contexts[i].Name)
		assert.Equal(t, before.Contexts[i].Context.Cluster, after.Contexts[i].Context.Cluster)
		assert.Equal(t, before.Contexts[i].Context.User, after.Contexts[i].Context.User)
		assert.Equal(t, before.Contexts[i].Context.Namespace, after.Contexts[i].Context.Namespace)
	}
}

func TestStore_SavePreservesOpaqueContent(t *testing.T) {
	path := writeKubeconfig(t, sampleKubeconfig)
	store := NewStoreWithPath(path)

	doc := store.Load()
	doc.CurrentContext = "prod"
	require.NoError(t, store.Save(doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Compare meaning, not bytes: decode both documents generically.
	var original, saved map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(sampleKubeconfig), &original))
	require.NoError(t, yaml.Unmarshal(data, &saved))

	assert.Equal(t, "prod", saved["current-context"])
	assert.Equal(t, original["clusters"], saved["clusters"])
	assert.Equal(t, original["users"], saved["users"])
	assert.Equal(t, original["contexts"], saved["contexts"])
	assert.Equal(t, original["preferences"], saved["preferences"])
	assert.Equal(t, original["apiVersion"], saved["apiVersion"])
	assert.Equal(t, original["kind"], saved["kind"])
}

func TestStore_SaveKeepsUnknownScalarsVerbatim(t *testing.T) {
	input := `apiVersion: v1
kind: Config
current-context: dev
x-rotated: 2023-06-30
contexts:
  - name: dev
    x-reviewed: 2024-02-15
    context:
      cluster: kind-dev
      user: dev-user
      extensions:
        - name: e
          extension:
            since: 2024-01-01
            ratio: 0x1F
`
	path := writeKubeconfig(t, input)
	store := NewStoreWithPath(path)

	doc := store.Load()
	doc.Contexts[0].Context.Namespace = "payments"
	require.NoError(t, store.Save(doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	saved := string(data)

	assert.Contains(t, saved, "since: 2024-01-01\n")
	assert.Contains(t, saved, "ratio: 0x1F\n")
	assert.Contains(t, saved, "x-reviewed: 2024-02-15\n")
	assert.Contains(t, saved, "x-rotated: 2023-06-30\n")
	assert.NotContains(t, saved, "T00:00:00Z")
	assert.Contains(t, saved, "namespace: payments")
}

func TestStore_SaveOmitsEmptyNamespace(t *testing.T) {
	path := writeKubeconfig(t, sampleKubeconfig)
	store := NewStoreWithPath(path)

	doc := store.Load()
	doc.Contexts[0].Context.Namespace = ""
	require.NoError(t, store.Save(doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "namespace:")
}

func TestStore_SaveFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config")
	store := NewStoreWithPath(path)

	require.NoError(t, store.Save(&Document{CurrentContext: "x"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_SaveFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0600))

	store := NewStoreWithPath(filepath.Join(blocker, "config"))
	err := store.Save(&Document{})
	require.Error(t, err)

	var we *WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, filepath.Join(blocker, "config"), we.Path)
}

func TestStore_SaveNilDocument(t *testing.T) {
	store := NewStoreWithPath(filepath.Join(t.TempDir(), "config"))

	var we *WriteError
	assert.True(t, errors.As(store.Save(nil), &we))
}
