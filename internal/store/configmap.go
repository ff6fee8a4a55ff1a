package store

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
)

// GerritConfigKey is the ConfigMap data key that may hold a complete
// gerrit.config document.
const GerritConfigKey = "gerrit.config"

// ConfigMapGetter fetches a ConfigMap. It is satisfied by *k8s.Client.
type ConfigMapGetter interface {
	GetConfigMap(ctx context.Context, namespace, name string) (*corev1.ConfigMap, error)
}

// LoadConfigMap reads plugin keys from a ConfigMap. Every data entry is a
// plugin key, except GerritConfigKey whose plugin section is parsed and
// placed beneath the flat entries.
func LoadConfigMap(ctx context.Context, getter ConfigMapGetter, namespace, name, plugin string) (Source, error) {
	cm, err := getter.GetConfigMap(ctx, namespace, name)
	if err != nil {
		return nil, err
	}

	flat := make(Map, len(cm.Data))
	var embedded Source
	for k, v := range cm.Data {
		if k == GerritConfigKey {
			embedded, err = ParseGitConfig(strings.NewReader(v), plugin)
			if err != nil {
				return nil, fmt.Errorf("configmap %s/%s: %w", cm.Namespace, cm.Name, err)
			}
			continue
		}
		flat[k] = v
	}
	return Layer(embedded, flat), nil
}
