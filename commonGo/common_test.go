package commonGo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var log = logger.GetOrCreate("commonGo")

func TestAttachFileLogger(t *testing.T) {
	t.Parallel()

	t.Run("no file logging requested", func(t *testing.T) {
		t.Parallel()

		handler, err := AttachFileLogger(log, "logs", "sensor", false, t.TempDir())

		assert.Nil(t, err)
		assert.True(t, check.IfNil(handler))
	})
	t.Run("file logging requested", func(t *testing.T) {
		t.Parallel()

		workingDir := t.TempDir()
		handler, err := AttachFileLogger(log, "logs", "sensor", true, workingDir)
		require.Nil(t, err)
		require.False(t, check.IfNil(handler))

		entries, err := os.ReadDir(filepath.Join(workingDir, "logs"))
		require.Nil(t, err)
		assert.NotEmpty(t, entries)

		assert.Nil(t, handler.Close())
	})
}
