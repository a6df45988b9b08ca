//go:build integration_tests
// +build integration_tests

package db

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/washboard/internal/session"
	"github.com/wellywell/washboard/internal/testutils"
)

var DBDSN string

// compile-time check that Database can back sessions
var _ session.Store = (*Database)(nil)

func TestMain(m *testing.M) {
	code, err := runMain(m)

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {

	databaseDSN, cleanUp, err := testutils.RunTestDatabase()
	defer cleanUp()

	if err != nil {
		return 1, err
	}
	DBDSN = databaseDSN

	exitCode := m.Run()

	return exitCode, nil

}

func TestSessionEntries(t *testing.T) {

	database, err := NewDatabase(DBDSN, time.Hour)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()

	t.Run("missing entry", func(t *testing.T) {
		_, ok, err := database.Get(ctx, "s1", "adminUser")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("insert then overwrite", func(t *testing.T) {
		require.NoError(t, database.Set(ctx, "s1", "adminToken", "t1"))
		require.NoError(t, database.Set(ctx, "s1", "adminToken", "t2"))

		v, ok, err := database.Get(ctx, "s1", "adminToken")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "t2", v)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, database.Set(ctx, "s1", "adminUser", `{"username":"admin"}`))
		require.NoError(t, database.Delete(ctx, "s1", "adminUser", "adminToken"))

		_, ok, err := database.Get(ctx, "s1", "adminUser")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestExpiredEntries(t *testing.T) {

	database, err := NewDatabase(DBDSN, time.Second)
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	require.NoError(t, database.Set(ctx, "s2", "adminToken", "t"))

	time.Sleep(1500 * time.Millisecond)

	_, ok, err := database.Get(ctx, "s2", "adminToken")
	assert.NoError(t, err)
	assert.False(t, ok)

	removed, err := database.Cleanup(ctx)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))
}
