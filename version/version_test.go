package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfoUsesLdflags(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "1.2.3"

	info := GetVersionInfo()
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestInfoFormats(t *testing.T) {
	info := Info{Version: "1.0.0", Branch: "main", Revision: "abc1234", BuiltAt: "now", GoVersion: "go1.24"}
	assert.True(t, strings.HasPrefix(info.String(), "Version: 1.0.0\n"))

	out, err := info.JSON()
	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "abc1234", decoded["revision"])
	assert.Equal(t, "go1.24", decoded["goVersion"])
}
