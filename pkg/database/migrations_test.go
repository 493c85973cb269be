package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreOrderedAndReversible(t *testing.T) {
	migrations := getMigrations()
	require.NotEmpty(t, migrations)

	for i, m := range migrations {
		assert.Equal(t, i+1, m.Version, "versions must be contiguous from 1")
		assert.NotEmpty(t, m.Description)
		assert.NotNil(t, m.Up, "migration %d has no Up", m.Version)
		assert.NotNil(t, m.Down, "migration %d has no Down", m.Version)
	}
}
