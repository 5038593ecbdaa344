package service

import (
	"context"
	"sync"
	"time"

	"github.com/ngaut/log"

	"shardcommit/admission"
	"shardcommit/domain"
	pb "shardcommit/grpc/proto-files/cohort"
	"shardcommit/repository/messaging"
)

// TPCCoordinator drives the three-phase commit protocol for one transaction
// across a set of cohort references. The caller owns phase ordering: the
// coordinator never advances a phase on its own. One coordinator serves one
// transaction and is discarded once commit or abort completes.
type TPCCoordinator struct {
	txID      string
	refs      []messaging.CohortRef
	opTimeout time.Duration
	tracker   *admission.LatencyTracker

	resolveOnce sync.Once
	cohorts     []messaging.CohortHandle
	resolveErr  error
}

func NewTPCCoordinator(txID string, refs []messaging.CohortRef, opTimeout time.Duration, tracker *admission.LatencyTracker) *TPCCoordinator {
	return &TPCCoordinator{
		txID:      txID,
		refs:      refs,
		opTimeout: opTimeout,
		tracker:   tracker,
	}
}

// resolveCohorts resolves the cohort set at most once. The outcome, handle
// list or failure, is cached for the coordinator's lifetime so the ordering
// of cohorts is stable across every phase of the transaction.
func (t *TPCCoordinator) resolveCohorts(ctx context.Context) ([]messaging.CohortHandle, error) {
	t.resolveOnce.Do(func() {
		t.cohorts, t.resolveErr = resolveAll(ctx, t.refs)
	})

	return t.cohorts, t.resolveErr
}

// Stage distributes the pending write to every cohort ahead of the vote.
// The fan-out is concurrent and always reaches all cohorts; abort cleans up
// whatever was staged if the transaction does not go through.
func (t *TPCCoordinator) Stage(ctx context.Context, key string, value []byte) error {
	cohorts, err := t.resolveCohorts(ctx)
	if err != nil {
		return err
	}

	errs := make([]error, len(cohorts))
	rejected := make([]bool, len(cohorts))

	wg := sync.WaitGroup{}

	for i, cohort := range cohorts {
		wg.Add(1)

		go func(i int, cohort messaging.CohortHandle) {
			defer wg.Done()

			request := &pb.StageRequest{
				TransactionID: t.txID,
				Key:           key,
				Value:         value,
				Version:       domain.ProtocolVersion,
			}

			reply, err := invoke(ctx, cohort, request, t.opTimeout)
			if err != nil {
				errs[i] = err
				return
			}

			staged, ok := reply.(*pb.StageReply)
			if !ok {
				errs[i] = typeMismatch(cohort, reply, "StageReply")
				return
			}

			rejected[i] = !staged.GetOk()
		}(i, cohort)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	for i, r := range rejected {
		if r {
			log.Debugf("cohort %v refused to stage tx %v", cohorts[i].Name(), t.txID)
			return domain.ErrCohortRejected
		}
	}

	return nil
}

// CanCommit asks every cohort to vote, in resolved order, one cohort at a
// time. The first "no" or failed call decides the aggregate outcome and
// stops the poll; cohorts after the deciding one are never contacted.
func (t *TPCCoordinator) CanCommit(ctx context.Context) (bool, error) {
	cohorts, err := t.resolveCohorts(ctx)
	if err != nil {
		return false, err
	}

	request := &pb.CanCommitRequest{
		TransactionID: t.txID,
		Version:       domain.ProtocolVersion,
	}

	for _, cohort := range cohorts {
		reply, err := invoke(ctx, cohort, request, t.opTimeout)
		if err != nil {
			return false, err
		}

		vote, ok := reply.(*pb.CanCommitReply)
		if !ok {
			return false, typeMismatch(cohort, reply, "CanCommitReply")
		}

		if !vote.GetCanCommit() {
			log.Debugf("cohort %v voted no on tx %v", cohort.Name(), t.txID)
			return false, nil
		}
	}

	return true, nil
}

// PreCommit contacts no cohort and always succeeds: readiness is fully
// established by the canCommit vote. The phase exists to keep the protocol
// surface symmetric with classic 3PC.
func (t *TPCCoordinator) PreCommit(ctx context.Context) error {
	return nil
}

// Commit tells every cohort to commit, concurrently. Unlike canCommit the
// fan-out is never cut short: once participants are being told to commit,
// skipping the rest would risk inconsistency, so a failure is reported only
// after every call has finished. A successful commit records the fan-out's
// wall-clock latency for the admission loop.
func (t *TPCCoordinator) Commit(ctx context.Context) error {
	cohorts, err := t.resolveCohorts(ctx)
	if err != nil {
		return err
	}

	start := time.Now()

	errs := make([]error, len(cohorts))

	wg := sync.WaitGroup{}

	for i, cohort := range cohorts {
		wg.Add(1)

		go func(i int, cohort messaging.CohortHandle) {
			defer wg.Done()

			request := &pb.CommitRequest{
				TransactionID: t.txID,
				Version:       domain.ProtocolVersion,
			}

			reply, err := invoke(ctx, cohort, request, t.opTimeout)
			if err != nil {
				errs[i] = err
				return
			}

			if _, ok := reply.(*pb.CommitReply); !ok {
				errs[i] = typeMismatch(cohort, reply, "CommitReply")
			}
		}(i, cohort)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	// An empty transaction tells the admission loop nothing about cohort
	// health, so it leaves the window untouched.
	if t.tracker != nil && len(cohorts) > 0 {
		t.tracker.Record(time.Since(start))
	}

	return nil
}

// Abort tells every cohort to abort, best effort, and never fails: abort
// runs during error unwinding, and a participant that cannot abort cleanly
// must not block teardown. Individual failures are logged and discarded. A
// resolution failure means no cohort is contacted at all.
func (t *TPCCoordinator) Abort(ctx context.Context) error {
	cohorts, err := t.resolveCohorts(ctx)
	if err != nil {
		log.Debugf("skipping abort fan-out for tx %v: %v", t.txID, err)
		return nil
	}

	wg := sync.WaitGroup{}

	for _, cohort := range cohorts {
		wg.Add(1)

		go func(cohort messaging.CohortHandle) {
			defer wg.Done()

			request := &pb.AbortRequest{
				TransactionID: t.txID,
				Version:       domain.ProtocolVersion,
			}

			if _, err := invoke(ctx, cohort, request, t.opTimeout); err != nil {
				log.Warnf("ignoring abort failure on cohort %v for tx %v: %v", cohort.Name(), t.txID, err)
			}
		}(cohort)
	}

	wg.Wait()

	return nil
}
