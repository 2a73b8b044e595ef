package cn_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/cn/cn"
)

const textShadowExtension = `
groups:
  - id: text-shadow
    rules:
      - prefix: text-shadow
        values: ["", none]
        validators: [tshirt, arbitrary]
  - id: text-shadow-color
    rules:
      - prefix: text-shadow
        validators: [any]
conflicts:
  text-shadow: [text-shadow-color]
`

func TestLoadExtension(t *testing.T) {
	ext, err := cn.LoadExtension(strings.NewReader(textShadowExtension))
	require.NoError(t, err)
	require.Len(t, ext.Groups, 2)
	assert.Equal(t, "text-shadow", ext.Groups[0].ID)
	assert.Equal(t, []string{"text-shadow-color"}, ext.Conflicts["text-shadow"])

	m := cn.New(ext.Apply(cn.DefaultConfig()))

	assert.Equal(t, "text-red-500 text-shadow-lg", m.Merge("text-shadow-sm text-red-500 text-shadow-lg"))
	assert.Equal(t, "text-shadow", m.Merge("text-shadow-blue-500 text-shadow"))
	assert.Equal(t, "p-4", m.Merge("p-2 p-4"), "built-in groups still apply")
}

func TestLoadExtensionPrefix(t *testing.T) {
	ext, err := cn.LoadExtension(strings.NewReader("prefix: tw-\n"))
	require.NoError(t, err)

	cfg := ext.Apply(cn.DefaultConfig())
	assert.Equal(t, "tw-", cfg.Prefix)
	assert.Equal(t, "tw-p-4", cn.New(cfg).Merge("tw-p-2 tw-p-4"))
}

func TestLoadExtensionEmpty(t *testing.T) {
	ext, err := cn.LoadExtension(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ext.Groups)
}

func TestLoadExtensionErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unknown validator", "groups:\n  - id: x\n    rules:\n      - prefix: x\n        validators: [nope]\n", cn.ErrUnknownValidator},
		{"nested unknown validator", "groups:\n  - id: x\n    rules:\n      - prefix: x\n        rules:\n          - prefix: y\n            validators: [nope]\n", cn.ErrUnknownValidator},
		{"missing id", "groups:\n  - rules:\n      - prefix: x\n", cn.ErrEmptyGroupID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cn.LoadExtension(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadExtensionRejectsUnknownFields(t *testing.T) {
	_, err := cn.LoadExtension(strings.NewReader("grups: []\n"))
	assert.Error(t, err)
}

func TestLoadExtensionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(textShadowExtension), 0o644))

	ext, err := cn.LoadExtensionFile(path)
	require.NoError(t, err)
	assert.Len(t, ext.Groups, 2)

	_, err = cn.LoadExtensionFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigExtendDoesNotMutate(t *testing.T) {
	base := cn.DefaultConfig()
	n := len(base.Groups)

	ext := base.Extend(cn.Extension{
		Groups:    []cn.Group{{ID: "x", Rules: []cn.Rule{{Prefix: "x", Values: []string{""}}}}},
		Conflicts: map[string][]string{"p": {"x"}},
	})

	assert.Len(t, base.Groups, n)
	assert.Len(t, ext.Groups, n+1)
	assert.NotContains(t, base.Conflicts["p"], "x")
	assert.Contains(t, ext.Conflicts["p"], "x")
	assert.NoError(t, ext.Validate())
	assert.ErrorIs(t, cn.Config{Groups: []cn.Group{{}}}.Validate(), cn.ErrEmptyGroupID)
}
