package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/ncobase/habits/ctxutil"
	"github.com/ncobase/habits/logging/logger/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryCarriesTraceAndVersion(t *testing.T) {
	l := NewLogger()
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetVersion("1.2.3")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	l.WithContext(ctx, logrus.Fields{"habit_id": "h_1"}).Info("created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "trace-1", line[ctxutil.TraceIDKey])
	assert.Equal(t, "1.2.3", line[VersionKey])
	assert.Equal(t, "h_1", line["habit_id"])
	assert.Equal(t, "created", line["msg"])
}

func TestInitFileOutput(t *testing.T) {
	l := NewLogger()
	path := filepath.Join(t.TempDir(), "logs", "habits.log")

	cleanup, err := l.Init(&config.Config{Level: int(logrus.DebugLevel), Format: "text", Output: "file", OutputFile: path})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.FileExists(t, path)
}

func TestInitFileOutputRequiresPath(t *testing.T) {
	_, err := NewLogger().Init(&config.Config{Output: "file"})
	assert.Error(t, err)
}
