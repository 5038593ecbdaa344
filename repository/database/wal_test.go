package database

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardcommit/domain"
)

func newTestWal(t *testing.T, maxFileSize int64) (*WriteAheadLog, *WriteAheadLogConfig) {
	t.Helper()

	config := &WriteAheadLogConfig{
		Dir:         t.TempDir(),
		MaxFileSize: maxFileSize,
		Prefix:      "test",
	}

	wal, err := NewFileDatabase(config)
	require.NoError(t, err)

	return wal, config
}

func entryFor(txID string, state domain.Status) *domain.Entry {
	data := []byte("mere")
	return &domain.Entry{
		TxID:  txID,
		Key:   "ana",
		State: state,
		Len:   len(data),
		Data:  data,
	}
}

func TestRecoverEmptyDir(t *testing.T) {
	wal, _ := newTestWal(t, 100)

	entries, err := wal.Recover()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPutThenRecover(t *testing.T) {
	wal, config := newTestWal(t, 100)

	require.NoError(t, wal.Put("ana", entryFor("tx-1", domain.Staged)))

	reopened, err := NewFileDatabase(config)
	require.NoError(t, err)

	entries, err := reopened.Recover()
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "tx-1", entries[0].TxID)
	assert.Equal(t, "ana", entries[0].Key)
	assert.Equal(t, domain.Staged, entries[0].State)
	assert.Equal(t, []byte("mere"), entries[0].Data)
}

func TestRecoverPreservesAppendOrder(t *testing.T) {
	wal, config := newTestWal(t, 100)

	states := []domain.Status{domain.Staged, domain.Ready, domain.Commit}
	for _, state := range states {
		require.NoError(t, wal.Put("ana", entryFor("tx-1", state)))
	}

	reopened, err := NewFileDatabase(config)
	require.NoError(t, err)

	entries, err := reopened.Recover()
	require.NoError(t, err)

	require.Len(t, entries, len(states))
	for i, state := range states {
		assert.Equal(t, state, entries[i].State)
	}
}

func TestSegmentRollover(t *testing.T) {
	// 1 KiB segments force a rollover well within 40 entries.
	wal, config := newTestWal(t, 1)

	for i := 0; i < 40; i++ {
		require.NoError(t, wal.Put("ana", entryFor(fmt.Sprintf("tx-%d", i), domain.Staged)))
	}

	segments := 0
	dir, err := os.ReadDir(config.Dir)
	require.NoError(t, err)
	for _, file := range dir {
		if strings.HasSuffix(file.Name(), "_wal") {
			segments++
		}
	}
	assert.Greater(t, segments, 1, "expected the log to be split across segments")

	reopened, err := NewFileDatabase(config)
	require.NoError(t, err)

	entries, err := reopened.Recover()
	require.NoError(t, err)

	require.Len(t, entries, 40)
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("tx-%d", i), entry.TxID)
	}
}

func TestMemoryDatabase(t *testing.T) {
	db := NewMemoryDatabase()

	_, err := db.Get("ana")
	assert.IsType(t, &domain.NotFoundError{}, err)

	entry := entryFor("tx-1", domain.Commit)
	require.NoError(t, db.Put("ana", entry))

	got, err := db.Get("ana")
	require.NoError(t, err)
	assert.Equal(t, entry, got)

	assert.Equal(t, []string{"ana"}, db.GetAllKeys())

	require.NoError(t, db.Delete("ana"))
	_, err = db.Get("ana")
	assert.Error(t, err)
}
