package kubeconfig

import (
	"errors"
	"os"

	"k8s.io/client-go/tools/clientcmd"
)

// Info summarises the state of the kubeconfig file for diagnostics.
type Info struct {
	Path           string `json:"path"`
	Available      bool   `json:"available"`
	Reason         string `json:"reason,omitempty"`
	ContextCount   int    `json:"contextCount"`
	ClusterCount   int    `json:"clusterCount"`
	UserCount      int    `json:"userCount"`
	CurrentContext string `json:"currentContext,omitempty"`
	// ClientGoCompatible reports whether client-go's loader accepts the file.
	ClientGoCompatible bool   `json:"clientGoCompatible"`
	ClientGoError      string `json:"clientGoError,omitempty"`
}

// Info inspects the kubeconfig without modifying it.
func (s *Store) Info() Info {
	info := Info{Path: s.Path()}

	doc, err := s.LoadStrict()
	if err != nil {
		var cu *ConfigUnavailableError
		if errors.As(err, &cu) {
			info.Reason = cu.Reason
		}
		if info.Reason != "unparsable" {
			return info
		}
	} else {
		info.Available = true
		info.ContextCount = len(doc.Contexts)
		info.ClusterCount = len(doc.Clusters)
		info.UserCount = len(doc.Users)
		info.CurrentContext = doc.CurrentContext
	}

	data, err := os.ReadFile(info.Path)
	if err != nil {
		info.ClientGoError = err.Error()
		return info
	}
	if _, err := clientcmd.Load(data); err != nil {
		info.ClientGoError = err.Error()
		return info
	}
	info.ClientGoCompatible = true
	return info
}
