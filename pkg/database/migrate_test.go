package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"000002_saved_jobs.up.sql": {Data: []byte("SELECT 2")},
		"000001_init.up.sql":       {Data: []byte("SELECT 1")},
		"000001_init.down.sql":     {Data: []byte("SELECT 0")},
		"000003_indexes.up.sql":    {Data: []byte("SELECT 3")},
		"embed.go":                 {Data: []byte("package migrations")},
	}

	pending, err := PendingMigrations(fsys, map[string]bool{"000002_saved_jobs": true})
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init.up.sql", "000003_indexes.up.sql"}, pending)

	pending, err = PendingMigrations(fsys, nil)
	require.NoError(t, err)
	assert.Len(t, pending, 3)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, int32(25), orDefault(int32(0), 25))
	assert.Equal(t, int32(7), orDefault(int32(7), 25))
}
