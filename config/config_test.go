package config_test

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp301415/ringo-algebra/config"
)

func TestConfig(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		c := config.DefaultConfig()
		assert.NoError(t, c.Validate())
		assert.Equal(t, log.InfoLevel, c.Level())
	})

	t.Run("Parse", func(t *testing.T) {
		c, err := config.Parse([]byte("backend: rat\nlog_level: debug\nseed: 7\n"))
		require.NoError(t, err)
		assert.Equal(t, "rat", c.Backend)
		assert.Equal(t, log.DebugLevel, c.Level())
		assert.Equal(t, uint64(7), c.Seed)
		assert.Equal(t, config.DefaultConfig().MaxSearchAttempts, c.MaxSearchAttempts)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, doc := range []string{
			"backend: quaternion\n",
			"log_level: loud\n",
			"max_search_attempts: 0\n",
			"backend: [\n",
		} {
			_, err := config.Parse([]byte(doc))
			assert.Error(t, err, doc)
		}
	})

	t.Run("Load", func(t *testing.T) {
		c := config.DefaultConfig()
		c.Backend = "fr"
		c.Seed = 99
		data, err := c.Marshal()
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "ringo.yaml")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		loaded, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, c, loaded)

		_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
