package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardcommit/domain"
	"shardcommit/repository/database"
)

// stubStatusService answers every peer-status query with a fixed decision.
type stubStatusService struct {
	status domain.Status
}

func (s *stubStatusService) Put(ctx context.Context, key string, value []byte) error {
	panic("not used")
}

func (s *stubStatusService) Get(ctx context.Context, key string) ([]byte, error) {
	panic("not used")
}

func (s *stubStatusService) Gather(ctx context.Context, key string) (map[string][]byte, error) {
	panic("not used")
}

func (s *stubStatusService) GetStatus(ctx context.Context, txID string) (domain.Status, error) {
	return s.status, nil
}

func newTestParticipant(t *testing.T, peers Coordinator) (*TPCParticipant, *database.WriteAheadLogConfig) {
	t.Helper()

	walConfig := &database.WriteAheadLogConfig{
		Dir:         t.TempDir(),
		MaxFileSize: 100,
		Prefix:      "test",
	}

	wal, err := database.NewFileDatabase(walConfig)
	require.NoError(t, err)

	return NewTPCParticipant(wal, database.NewMemoryDatabase(), database.NewMemoryDatabase(), peers), walConfig
}

func TestStageThenCommit(t *testing.T) {
	participant, _ := newTestParticipant(t, nil)

	require.NoError(t, participant.HandleStage("tx-1", "ana", []byte("mere")))

	status, err := participant.GetStatus("tx-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Staged, status)

	vote, err := participant.HandleCanCommit("tx-1")
	require.NoError(t, err)
	assert.True(t, vote)

	require.NoError(t, participant.HandleCommit("tx-1"))

	value, err := participant.Get("ana")
	require.NoError(t, err)
	assert.Equal(t, []byte("mere"), value)

	status, err = participant.GetStatus("tx-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Commit, status)
}

func TestCanCommitVotesNoOnUnknownTransaction(t *testing.T) {
	participant, _ := newTestParticipant(t, nil)

	vote, err := participant.HandleCanCommit("nope")
	require.NoError(t, err)
	assert.False(t, vote)
}

func TestCanCommitVotesNoAfterAbort(t *testing.T) {
	participant, _ := newTestParticipant(t, nil)

	require.NoError(t, participant.HandleStage("tx-1", "ana", []byte("mere")))
	require.NoError(t, participant.HandleAbort("tx-1"))

	vote, err := participant.HandleCanCommit("tx-1")
	require.NoError(t, err)
	assert.False(t, vote)

	_, err = participant.Get("ana")
	assert.Error(t, err, "aborted writes never reach the data cache")
}

func TestAbortUnknownTransactionIsANoOp(t *testing.T) {
	participant, _ := newTestParticipant(t, nil)

	require.NoError(t, participant.HandleAbort("nope"))
}

func TestRecoverReappliesCommittedEntries(t *testing.T) {
	participant, walConfig := newTestParticipant(t, nil)

	require.NoError(t, participant.HandleStage("tx-1", "ana", []byte("mere")))
	vote, err := participant.HandleCanCommit("tx-1")
	require.NoError(t, err)
	require.True(t, vote)
	require.NoError(t, participant.HandleCommit("tx-1"))

	// A new participant over the same wal simulates a restart.
	wal, err := database.NewFileDatabase(walConfig)
	require.NoError(t, err)

	restarted := NewTPCParticipant(wal, database.NewMemoryDatabase(), database.NewMemoryDatabase(), nil)
	require.NoError(t, restarted.Recover())

	value, err := restarted.Get("ana")
	require.NoError(t, err)
	assert.Equal(t, []byte("mere"), value)
}

func TestRecoverResolvesInDoubtEntryFromPeers(t *testing.T) {
	participant, walConfig := newTestParticipant(t, nil)

	// Voted yes, then the node died before learning the outcome.
	require.NoError(t, participant.HandleStage("tx-1", "ana", []byte("mere")))
	vote, err := participant.HandleCanCommit("tx-1")
	require.NoError(t, err)
	require.True(t, vote)

	wal, err := database.NewFileDatabase(walConfig)
	require.NoError(t, err)

	restarted := NewTPCParticipant(wal, database.NewMemoryDatabase(), database.NewMemoryDatabase(),
		&stubStatusService{status: domain.Commit})
	require.NoError(t, restarted.Recover())

	value, err := restarted.Get("ana")
	require.NoError(t, err)
	assert.Equal(t, []byte("mere"), value)
}

func TestRecoverDropsUnvotedEntries(t *testing.T) {
	participant, walConfig := newTestParticipant(t, nil)

	require.NoError(t, participant.HandleStage("tx-1", "ana", []byte("mere")))

	wal, err := database.NewFileDatabase(walConfig)
	require.NoError(t, err)

	restarted := NewTPCParticipant(wal, database.NewMemoryDatabase(), database.NewMemoryDatabase(), nil)
	require.NoError(t, restarted.Recover())

	status, err := restarted.GetStatus("tx-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Abort, status)

	_, err = restarted.Get("ana")
	assert.Error(t, err)
}
