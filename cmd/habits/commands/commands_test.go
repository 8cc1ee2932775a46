package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandJSON(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--json"})

	require.NoError(t, root.Execute())
	var info map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "goVersion")
}

func TestServeRejectsMissingConfig(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"serve", "--conf", t.TempDir() + "/missing.yaml"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
