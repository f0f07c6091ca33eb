package context

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kctx/internal/kubeconfig"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: ctx-a
clusters:
  - name: cluster-a
    cluster:
      server: https://a.example.com
users:
  - name: user-a
    user:
      token: secret
contexts:
  - name: ctx-a
    context:
      cluster: cluster-a
      user: user-a
      namespace: team-a
  - name: ctx-b
    context:
      cluster: cluster-b
      user: user-b
`

func setupRepository(t *testing.T, content string) (*Repository, *kubeconfig.Store) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store := kubeconfig.NewStoreWithPath(path)
	return NewRepository(store), store
}

// fakeStore records saves and can be told to fail them.
type fakeStore struct {
	doc     *kubeconfig.Document
	saves   int
	saveErr error
}

func (f *fakeStore) Load() *kubeconfig.Document {
	data, err := kubeconfig.Encode(f.doc)
	if err != nil {
		panic(err)
	}
	doc, err := kubeconfig.Parse(data)
	if err != nil {
		panic(err)
	}
	return doc
}

func (f *fakeStore) Save(doc *kubeconfig.Document) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.doc = doc
	return nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{doc: &kubeconfig.Document{
		CurrentContext: "ctx-a",
		Contexts: []kubeconfig.NamedContext{
			{Name: "ctx-a", Context: kubeconfig.ContextInfo{Cluster: "cluster-a", User: "user-a"}},
			{Name: "ctx-b", Context: kubeconfig.ContextInfo{Cluster: "cluster-b", User: "user-b"}},
		},
	}}
}

func TestRepository_GetContexts(t *testing.T) {
	repo, _ := setupRepository(t, testKubeconfig)

	contexts := repo.GetContexts()
	require.Len(t, contexts, 2)

	assert.Equal(t, Context{Name: "ctx-a", Cluster: "cluster-a", User: "user-a", Namespace: "team-a", Current: true}, contexts[0])
	assert.Equal(t, Context{Name: "ctx-b", Cluster: "cluster-b", User: "user-b"}, contexts[1])
	assert.Equal(t, "default", contexts[1].DisplayNamespace())
	assert.False(t, contexts[1].HasNamespace())
	assert.Equal(t, []string{"ctx-a", "ctx-b"}, repo.GetContextNames())
}

func TestRepository_EmptyKubeconfig(t *testing.T) {
	repo := NewRepository(kubeconfig.NewStoreWithPath(filepath.Join(t.TempDir(), "missing")))

	assert.Empty(t, repo.GetContexts())
	assert.Empty(t, repo.GetCurrentContextName())
	assert.Nil(t, repo.GetCurrentContext())
	assert.True(t, IsNotFound(repo.SwitchContext("anything")))
}

func TestRepository_CurrentContext(t *testing.T) {
	t.Run("active context", func(t *testing.T) {
		repo, _ := setupRepository(t, testKubeconfig)

		assert.Equal(t, "ctx-a", repo.GetCurrentContextName())
		current := repo.GetCurrentContext()
		require.NotNil(t, current)
		assert.Equal(t, "ctx-a", current.Name)
	})

	t.Run("dangling pointer is reported but not resolved", func(t *testing.T) {
		content := strings.Replace(testKubeconfig, "current-context: ctx-a", "current-context: gone", 1)
		repo, _ := setupRepository(t, content)

		assert.Equal(t, "gone", repo.GetCurrentContextName())
		assert.Nil(t, repo.GetCurrentContext())
		for _, c := range repo.GetContexts() {
			assert.False(t, c.Current, c.Name)
		}
	})
}

func TestRepository_GetContext(t *testing.T) {
	repo, _ := setupRepository(t, testKubeconfig)

	ctx, err := repo.GetContext("ctx-b")
	require.NoError(t, err)
	assert.Equal(t, "cluster-b", ctx.Cluster)

	_, err = repo.GetContext("nope")
	var nf *ContextNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "nope", nf.Name)
}

func TestRepository_SwitchContext(t *testing.T) {
	t.Run("switches and persists", func(t *testing.T) {
		repo, store := setupRepository(t, testKubeconfig)

		require.NoError(t, repo.SwitchContext("ctx-b"))
		assert.Equal(t, "ctx-b", store.Load().CurrentContext)
		assert.Equal(t, "ctx-b", repo.GetCurrentContext().Name)
	})

	t.Run("switching to the active context changes nothing", func(t *testing.T) {
		repo, _ := setupRepository(t, testKubeconfig)
		before := repo.GetContexts()

		require.NoError(t, repo.SwitchContext("ctx-a"))

		assert.Equal(t, "ctx-a", repo.GetCurrentContextName())
		assert.Equal(t, before, repo.GetContexts())
	})

	t.Run("unknown name leaves the file untouched", func(t *testing.T) {
		repo, store := setupRepository(t, testKubeconfig)
		before, err := os.ReadFile(store.Path())
		require.NoError(t, err)

		err = repo.SwitchContext("does-not-exist")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))

		after, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, "ctx-a", repo.GetCurrentContextName())
	})

	t.Run("save failure is reported", func(t *testing.T) {
		store := newFakeStore()
		store.saveErr = &kubeconfig.WriteError{Path: "/x", Err: errors.New("read-only file system")}
		repo := NewRepository(store)

		err := repo.SwitchContext("ctx-b")
		require.Error(t, err)

		var we *kubeconfig.WriteError
		assert.True(t, errors.As(err, &we))
		assert.False(t, IsNotFound(err))
		assert.Equal(t, "ctx-a", repo.GetCurrentContextName())
	})
}

func TestRepository_SwitchContextWithNamespace(t *testing.T) {
	t.Run("single write for both changes", func(t *testing.T) {
		store := newFakeStore()
		repo := NewRepository(store)

		require.NoError(t, repo.SwitchContextWithNamespace("ctx-b", "monitoring"))

		assert.Equal(t, 1, store.saves)
		ctx, err := repo.GetContext("ctx-b")
		require.NoError(t, err)
		assert.True(t, ctx.Current)
		assert.Equal(t, "monitoring", ctx.Namespace)
	})

	t.Run("empty namespace keeps the existing one", func(t *testing.T) {
		repo, _ := setupRepository(t, testKubeconfig)
		require.NoError(t, repo.SwitchContext("ctx-b"))

		require.NoError(t, repo.SwitchContextWithNamespace("ctx-a", ""))

		ctx, err := repo.GetContext("ctx-a")
		require.NoError(t, err)
		assert.True(t, ctx.Current)
		assert.Equal(t, "team-a", ctx.Namespace)
	})

	t.Run("unknown name does not write", func(t *testing.T) {
		store := newFakeStore()
		repo := NewRepository(store)

		assert.True(t, IsNotFound(repo.SwitchContextWithNamespace("nope", "ns")))
		assert.Equal(t, 0, store.saves)
	})
}

func TestRepository_SetNamespace(t *testing.T) {
	t.Run("assigns a namespace", func(t *testing.T) {
		repo, _ := setupRepository(t, testKubeconfig)

		require.NoError(t, repo.SetNamespace("ctx-b", "payments"))

		ctx, err := repo.GetContext("ctx-b")
		require.NoError(t, err)
		assert.Equal(t, "payments", ctx.Namespace)
		assert.Equal(t, "ctx-a", repo.GetCurrentContextName())
	})

	t.Run("empty namespace removes the key", func(t *testing.T) {
		repo, store := setupRepository(t, testKubeconfig)

		require.NoError(t, repo.SetNamespace("ctx-a", ""))

		ctx, err := repo.GetContext("ctx-a")
		require.NoError(t, err)
		assert.Empty(t, ctx.Namespace)

		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.NotContains(t, string(data), "namespace:")
	})

	t.Run("unknown context", func(t *testing.T) {
		repo, _ := setupRepository(t, testKubeconfig)
		assert.True(t, IsNotFound(repo.SetNamespace("ghost", "x")))
	})
}

func TestRepository_DuplicateNames(t *testing.T) {
	store := &fakeStore{doc: &kubeconfig.Document{
		Contexts: []kubeconfig.NamedContext{
			{Name: "dup", Context: kubeconfig.ContextInfo{Cluster: "first"}},
			{Name: "dup", Context: kubeconfig.ContextInfo{Cluster: "second"}},
		},
	}}
	repo := NewRepository(store)

	contexts := repo.GetContexts()
	require.Len(t, contexts, 2)
	assert.Equal(t, "first", contexts[0].Cluster)
	assert.Equal(t, "second", contexts[1].Cluster)

	ctx, err := repo.GetContext("dup")
	require.NoError(t, err)
	assert.Equal(t, "second", ctx.Cluster)

	require.NoError(t, repo.SetNamespace("dup", "ns"))
	contexts = repo.GetContexts()
	assert.Empty(t, contexts[0].Namespace)
	assert.Equal(t, "ns", contexts[1].Namespace)
}

func TestFromDocument_Nil(t *testing.T) {
	assert.Empty(t, FromDocument(nil))
}
