package store

import (
	"context"
	"testing"

	"github.com/nauticalab/coder-workspace/internal/k8s"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestLoadConfigMap(t *testing.T) {
	clientset := fake.NewSimpleClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "coder-workspace", Namespace: "gerrit"},
		Data: map[string]string{
			"serverUrl": "https://coder.example.com",
			GerritConfigKey: "[plugin \"coder-workspace\"]\n" +
				"\tserverUrl = https://embedded.example.com\n" +
				"\tappSlug = vscode\n",
		},
	})
	client := k8s.NewClientWithInterface(clientset)

	src, err := LoadConfigMap(context.Background(), client, "gerrit", "coder-workspace", DefaultPluginName)
	require.NoError(t, err)

	v, ok := src.Lookup("serverUrl")
	assert.True(t, ok)
	assert.Equal(t, "https://coder.example.com", v, "flat entries override the embedded gerrit.config")

	v, ok = src.Lookup("appSlug")
	assert.True(t, ok)
	assert.Equal(t, "vscode", v)

	_, ok = src.Lookup(GerritConfigKey)
	assert.False(t, ok)
}

func TestLoadConfigMap_NotFound(t *testing.T) {
	client := k8s.NewClientWithInterface(fake.NewSimpleClientset())

	_, err := LoadConfigMap(context.Background(), client, "gerrit", "missing", DefaultPluginName)
	assert.Error(t, err)
}
