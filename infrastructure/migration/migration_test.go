package migration

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptsAreOrderedAndReversible(t *testing.T) {
	src, err := newSource()
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	count := 0
	for {
		count++

		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "versão %d sem script up", version)
		up.Close()

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "versão %d sem script down", version)
		down.Close()

		version, err = src.Next(version)
		if err != nil {
			require.ErrorIs(t, err, os.ErrNotExist)
			break
		}
	}

	assert.Equal(t, 6, count)
}

func TestNotifyTriggerCoversLiveCollections(t *testing.T) {
	src, err := newSource()
	require.NoError(t, err)
	defer src.Close()

	reader, _, err := src.ReadUp(6)
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)

	script := string(content)
	assert.Contains(t, script, "pg_notify('collection_changed', TG_TABLE_NAME)")
	for _, table := range []string{"sales_history", "users", "buses", "drivers", "parcels"} {
		assert.True(t, strings.Contains(script, "ON "+table+"\n"), "tabela %s sem trigger", table)
	}
}
