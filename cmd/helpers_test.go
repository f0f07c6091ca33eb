package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKubeconfig = `apiVersion: v1
kind: Config
current-context: dev
clusters:
- name: kind-dev
  cluster:
    server: https://127.0.0.1:6443
- name: prod-cluster
  cluster:
    server: https://prod.example.com
contexts:
- name: dev
  context:
    cluster: kind-dev
    user: dev-user
- name: prod
  context:
    cluster: prod-cluster
    user: admin
    namespace: payments
users:
- name: dev-user
  user:
    token: dev-token
- name: admin
  user:
    token: admin-token
`

// testEnv is an isolated kubeconfig and kctx config directory.
type testEnv struct {
	kubeconfig string
	configDir  string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		kubeconfig: filepath.Join(dir, "kube", "config"),
		configDir:  filepath.Join(dir, "kctx"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(env.kubeconfig), 0755))
	require.NoError(t, os.WriteFile(env.kubeconfig, []byte(testKubeconfig), 0600))
	return env
}

func (e testEnv) readKubeconfig(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.kubeconfig)
	require.NoError(t, err)
	return string(data)
}

func (e testEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(e.configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(e.configDir, "config.yaml"), []byte(content), 0644))
}

// run executes a fresh command tree against the environment and returns
// stdout.
func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := e.exec(t, strings.NewReader(""), args...)
	return out, err
}

// exec is run with an explicit stdin that also returns stderr.
func (e testEnv) exec(t *testing.T, in io.Reader, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(in)
	root.SetArgs(append([]string{"--kubeconfig", e.kubeconfig, "--config-path", e.configDir}, args...))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
