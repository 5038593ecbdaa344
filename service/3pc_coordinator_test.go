package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardcommit/admission"
	"shardcommit/domain"
	pb "shardcommit/grpc/proto-files/cohort"
	"shardcommit/repository/messaging"
)

// scriptedCohort is an in-process cohort handle with scripted replies and
// per-phase invocation counters.
type scriptedCohort struct {
	name string

	vote    bool
	stageOK bool

	callErr error         // fail every call when set
	reply   proto.Message // override the typed reply when set

	mu             sync.Mutex
	stageCalls     int
	canCommitCalls int
	commitCalls    int
	abortCalls     int
}

func newYesCohort(name string) *scriptedCohort {
	return &scriptedCohort{name: name, vote: true, stageOK: true}
}

func (c *scriptedCohort) Name() string {
	return c.name
}

func (c *scriptedCohort) Send(ctx context.Context, req proto.Message) (proto.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch req.(type) {
	case *pb.StageRequest:
		c.stageCalls++
		if c.callErr != nil {
			return nil, c.callErr
		}
		if c.reply != nil {
			return c.reply, nil
		}
		return &pb.StageReply{Ok: c.stageOK, Version: domain.ProtocolVersion}, nil

	case *pb.CanCommitRequest:
		c.canCommitCalls++
		if c.callErr != nil {
			return nil, c.callErr
		}
		if c.reply != nil {
			return c.reply, nil
		}
		return &pb.CanCommitReply{CanCommit: c.vote, Version: domain.ProtocolVersion}, nil

	case *pb.CommitRequest:
		c.commitCalls++
		if c.callErr != nil {
			return nil, c.callErr
		}
		if c.reply != nil {
			return c.reply, nil
		}
		return &pb.CommitReply{Version: domain.ProtocolVersion}, nil

	case *pb.AbortRequest:
		c.abortCalls++
		if c.callErr != nil {
			return nil, c.callErr
		}
		if c.reply != nil {
			return c.reply, nil
		}
		return &pb.AbortReply{Version: domain.ProtocolVersion}, nil
	}

	return nil, errors.Errorf("unexpected request %T", req)
}

func (c *scriptedCohort) calls() (stage, canCommit, commit, abort int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stageCalls, c.canCommitCalls, c.commitCalls, c.abortCalls
}

// countingRef hands out a fixed cohort handle and counts resolutions.
type countingRef struct {
	handle messaging.CohortHandle

	mu       sync.Mutex
	resolves int
}

func (r *countingRef) Resolve(ctx context.Context) (messaging.CohortHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolves++
	return r.handle, nil
}

type failingRef struct {
	err error
}

func (r failingRef) Resolve(ctx context.Context) (messaging.CohortHandle, error) {
	return nil, r.err
}

func refsFor(cohorts ...*scriptedCohort) []messaging.CohortRef {
	refs := make([]messaging.CohortRef, 0, len(cohorts))
	for _, c := range cohorts {
		refs = append(refs, &countingRef{handle: c})
	}
	return refs
}

func newCoordinator(refs []messaging.CohortRef, tracker *admission.LatencyTracker) *TPCCoordinator {
	return NewTPCCoordinator("txn-1", refs, time.Second, tracker)
}

func TestCanCommitWithOneCohort(t *testing.T) {
	yes := newYesCohort("c1")

	ok, err := newCoordinator(refsFor(yes), nil).CanCommit(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	no := &scriptedCohort{name: "c1", vote: false}

	ok, err = newCoordinator(refsFor(no), nil).CanCommit(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanCommitWithMultipleCohorts(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := newYesCohort("c2")

	ok, err := newCoordinator(refsFor(c1, c2), nil).CanCommit(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	_, canCommit, _, _ := c1.calls()
	assert.Equal(t, 1, canCommit)
	_, canCommit, _, _ = c2.calls()
	assert.Equal(t, 1, canCommit)
}

func TestCanCommitStopsAtFirstNoVote(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := &scriptedCohort{name: "c2", vote: false}
	c3 := newYesCohort("c3")

	ok, err := newCoordinator(refsFor(c1, c2, c3), nil).CanCommit(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	_, canCommit, _, _ := c1.calls()
	assert.Equal(t, 1, canCommit)
	_, canCommit, _, _ = c2.calls()
	assert.Equal(t, 1, canCommit)
	_, canCommit, _, _ = c3.calls()
	assert.Equal(t, 0, canCommit, "cohorts after the deciding vote must not be contacted")
}

func TestCanCommitWithCallFailure(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := &scriptedCohort{name: "c2", callErr: errors.New("connection refused")}
	c3 := newYesCohort("c3")

	_, err := newCoordinator(refsFor(c1, c2, c3), nil).CanCommit(context.Background())
	require.Error(t, err)

	var callErr *domain.CohortCallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, domain.FailureTransport, callErr.Kind)
	assert.Equal(t, "c2", callErr.Cohort)

	_, canCommit, _, _ := c3.calls()
	assert.Equal(t, 0, canCommit)
}

func TestCanCommitClassifiesTimeout(t *testing.T) {
	c1 := &scriptedCohort{name: "c1", callErr: context.DeadlineExceeded}

	_, err := newCoordinator(refsFor(c1), nil).CanCommit(context.Background())
	require.Error(t, err)

	var callErr *domain.CohortCallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, domain.FailureTimeout, callErr.Kind)
}

func TestCanCommitWithInvalidResponseType(t *testing.T) {
	c1 := &scriptedCohort{name: "c1", reply: &pb.CommitReply{}}

	_, err := newCoordinator(refsFor(c1), nil).CanCommit(context.Background())
	require.Error(t, err)

	var callErr *domain.CohortCallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, domain.FailureTypeMismatch, callErr.Kind)
}

func TestCanCommitWithFailedCohortRef(t *testing.T) {
	c1 := newYesCohort("c1")
	refs := []messaging.CohortRef{
		&countingRef{handle: c1},
		failingRef{err: errors.New("no such path")},
	}

	_, err := newCoordinator(refs, nil).CanCommit(context.Background())
	require.Error(t, err)

	var resErr *domain.ResolutionError
	require.True(t, errors.As(err, &resErr))

	_, canCommit, _, _ := c1.calls()
	assert.Equal(t, 0, canCommit, "no cohort may be contacted after a resolution failure")
}

func TestPreCommitIsANoOp(t *testing.T) {
	c1 := &scriptedCohort{name: "c1", callErr: errors.New("unreachable")}

	coordinator := newCoordinator(refsFor(c1), nil)
	require.NoError(t, coordinator.PreCommit(context.Background()))

	stage, canCommit, commit, abort := c1.calls()
	assert.Zero(t, stage+canCommit+commit+abort)
}

func TestCommit(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := newYesCohort("c2")
	tracker := admission.NewLatencyTracker(16)

	err := newCoordinator(refsFor(c1, c2), tracker).Commit(context.Background())
	require.NoError(t, err)

	_, _, commit, _ := c1.calls()
	assert.Equal(t, 1, commit)
	_, _, commit, _ = c2.calls()
	assert.Equal(t, 1, commit)

	assert.Equal(t, 1, tracker.Len(), "a successful commit records exactly one latency sample")
}

func TestCommitFanOutCompletesOnFailure(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := &scriptedCohort{name: "c2", callErr: errors.New("boom")}
	tracker := admission.NewLatencyTracker(16)

	err := newCoordinator(refsFor(c1, c2), tracker).Commit(context.Background())
	require.Error(t, err)

	_, _, commit, _ := c1.calls()
	assert.Equal(t, 1, commit, "every cohort is invoked even when another one fails")
	_, _, commit, _ = c2.calls()
	assert.Equal(t, 1, commit)

	assert.Zero(t, tracker.Len(), "a failed commit records no latency sample")
}

func TestCommitWithInvalidResponseType(t *testing.T) {
	c1 := &scriptedCohort{name: "c1", reply: &pb.AbortReply{}}

	err := newCoordinator(refsFor(c1), nil).Commit(context.Background())
	require.Error(t, err)

	var callErr *domain.CohortCallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, domain.FailureTypeMismatch, callErr.Kind)

	_, _, commit, _ := c1.calls()
	assert.Equal(t, 1, commit)
}

func TestCommitWithFailedCohortRef(t *testing.T) {
	c1 := newYesCohort("c1")
	refs := []messaging.CohortRef{
		&countingRef{handle: c1},
		failingRef{err: errors.New("no such path")},
	}

	err := newCoordinator(refs, nil).Commit(context.Background())
	require.Error(t, err)

	var resErr *domain.ResolutionError
	require.True(t, errors.As(err, &resErr))

	_, _, commit, _ := c1.calls()
	assert.Equal(t, 0, commit)
}

func TestAbort(t *testing.T) {
	c1 := newYesCohort("c1")

	require.NoError(t, newCoordinator(refsFor(c1), nil).Abort(context.Background()))

	_, _, _, abort := c1.calls()
	assert.Equal(t, 1, abort)
}

func TestAbortSwallowsFailures(t *testing.T) {
	c1 := &scriptedCohort{name: "c1", callErr: errors.New("mock")}
	c2 := &scriptedCohort{name: "c2", callErr: context.DeadlineExceeded}

	require.NoError(t, newCoordinator(refsFor(c1, c2), nil).Abort(context.Background()))

	_, _, _, abort := c1.calls()
	assert.Equal(t, 1, abort)
	_, _, _, abort = c2.calls()
	assert.Equal(t, 1, abort)
}

func TestAbortWithFailedCohortRef(t *testing.T) {
	c1 := newYesCohort("c1")
	refs := []messaging.CohortRef{
		&countingRef{handle: c1},
		failingRef{err: errors.New("no such path")},
	}

	require.NoError(t, newCoordinator(refs, nil).Abort(context.Background()))

	_, _, _, abort := c1.calls()
	assert.Equal(t, 0, abort)
}

func TestStageReachesEveryCohort(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := newYesCohort("c2")

	err := newCoordinator(refsFor(c1, c2), nil).Stage(context.Background(), "ana", []byte("mere"))
	require.NoError(t, err)

	stage, _, _, _ := c1.calls()
	assert.Equal(t, 1, stage)
	stage, _, _, _ = c2.calls()
	assert.Equal(t, 1, stage)
}

func TestStageRejection(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := &scriptedCohort{name: "c2", vote: true, stageOK: false}

	err := newCoordinator(refsFor(c1, c2), nil).Stage(context.Background(), "ana", []byte("mere"))
	assert.Equal(t, domain.ErrCohortRejected, errors.Cause(err))
}

func TestAllThreePhasesSuccessful(t *testing.T) {
	c1 := newYesCohort("c1")
	c2 := newYesCohort("c2")
	tracker := admission.NewLatencyTracker(16)

	coordinator := newCoordinator(refsFor(c1, c2), tracker)

	ok, err := coordinator.CanCommit(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, coordinator.PreCommit(context.Background()))
	require.NoError(t, coordinator.Commit(context.Background()))

	_, canCommit, commit, _ := c1.calls()
	assert.Equal(t, 1, canCommit)
	assert.Equal(t, 1, commit)
	_, canCommit, commit, _ = c2.calls()
	assert.Equal(t, 1, canCommit)
	assert.Equal(t, 1, commit)

	assert.Equal(t, 1, tracker.Len())
}

func TestEmptyCohortSet(t *testing.T) {
	tracker := admission.NewLatencyTracker(16)

	coordinator := newCoordinator(nil, tracker)

	ok, err := coordinator.CanCommit(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, coordinator.PreCommit(context.Background()))
	require.NoError(t, coordinator.Commit(context.Background()))
	require.NoError(t, coordinator.Abort(context.Background()))

	assert.Zero(t, tracker.Len(), "an empty transaction leaves the admission window untouched")
}

func TestCohortSetIsResolvedAtMostOnce(t *testing.T) {
	c1 := newYesCohort("c1")
	ref := &countingRef{handle: c1}

	coordinator := newCoordinator([]messaging.CohortRef{ref}, nil)

	_, err := coordinator.CanCommit(context.Background())
	require.NoError(t, err)
	require.NoError(t, coordinator.Commit(context.Background()))
	require.NoError(t, coordinator.Abort(context.Background()))

	assert.Equal(t, 1, ref.resolves, "the cohort set is resolved once and cached")
}
