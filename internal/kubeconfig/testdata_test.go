package kubeconfig

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleKubeconfig = `apiVersion: v1
kind: Config
preferences: {}
current-context: dev
clusters:
  - name: dev-cluster
    cluster:
      server: https://dev.example.com:6443
      certificate-authority-data: Zm9v
  - name: prod-cluster
    cluster:
      server: https://prod.example.com:6443
      insecure-skip-tls-verify: true
users:
  - name: dev-admin
    user:
      token: dev-token
  - name: prod-admin
    user:
      exec:
        apiVersion: client.authentication.k8s.io/v1beta1
        command: aws
        args: ["eks", "get-token"]
contexts:
  - name: dev
    context:
      cluster: dev-cluster
      user: dev-admin
      namespace: team-a
  - name: prod
    context:
      cluster: prod-cluster
      user: prod-admin
      x-owner: platform
`

// writeKubeconfig writes content to a kubeconfig file in a fresh temp dir
// and returns its path.
func writeKubeconfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	return path
}
