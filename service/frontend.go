package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ngaut/log"

	"shardcommit/admission"
	"shardcommit/domain"
	pb "shardcommit/grpc/proto-files/cohort"
	"shardcommit/repository/messaging"
)

const LOCALNAME = "LOCALHOST"
const LOCALHOST = "127.0.0.1:"

// TxFrontend is the caller-side transaction state machine: it admits new
// transactions against the admission controller, builds one coordinator per
// transaction, and drives the phases in order. It implements Coordinator.
type TxFrontend struct {
	myself *messaging.PeerRef
	peers  []*messaging.PeerRef

	admission  *admission.Controller
	opTimeout  time.Duration
	maxRetries int
}

func NewTxFrontend(peerList []string, includeMyself bool, myPort string, ctrl *admission.Controller, opTimeout time.Duration) *TxFrontend {
	peers := make([]*messaging.PeerRef, 0)

	log.Infof("Creating peer refs from list...")

	for i, peer := range peerList {
		peerConfig := &messaging.CohortClientConfig{
			PeerName:   strconv.Itoa(i),
			ServerAddr: peer,
		}

		peers = append(peers, messaging.NewPeerRef(peerConfig))
	}

	var myself *messaging.PeerRef

	if includeMyself {
		myself = messaging.NewPeerRef(&messaging.CohortClientConfig{
			PeerName:   LOCALNAME,
			ServerAddr: LOCALHOST + myPort,
		})
	}

	return &TxFrontend{
		myself:     myself,
		peers:      peers,
		admission:  ctrl,
		opTimeout:  opTimeout,
		maxRetries: 3,
	}
}

// cohortRefs returns the cohort set for a new transaction, local shard
// included when this node holds data.
func (f *TxFrontend) cohortRefs() []messaging.CohortRef {
	refs := make([]messaging.CohortRef, 0, len(f.peers)+1)

	for _, peer := range f.peers {
		refs = append(refs, peer)
	}

	if f.myself != nil {
		refs = append(refs, f.myself)
	}

	return refs
}

// Put writes one key across every shard using three-phase commit. Creation
// of the transaction is paced by the admission controller; once admitted,
// the write is staged everywhere, voted on, and committed or aborted.
func (f *TxFrontend) Put(ctx context.Context, key string, value []byte) error {
	if err := f.admission.Admit(ctx); err != nil {
		return err
	}

	txID := uuid.New().String()

	coordinator := NewTPCCoordinator(txID, f.cohortRefs(), f.opTimeout, f.admission.Tracker())

	if err := coordinator.Stage(ctx, key, value); err != nil {
		_ = coordinator.Abort(ctx)
		return err
	}

	ok, err := coordinator.CanCommit(ctx)
	if err != nil {
		_ = coordinator.Abort(ctx)
		return err
	}

	if !ok {
		_ = coordinator.Abort(ctx)
		return domain.ErrCohortRejected
	}

	if err := coordinator.PreCommit(ctx); err != nil {
		_ = coordinator.Abort(ctx)
		return err
	}

	// Past this point cohorts are being told to commit; a failure is
	// surfaced as-is, aborting now would contradict the decision.
	return coordinator.Commit(ctx)
}

// Get reads a key from the local shard.
func (f *TxFrontend) Get(ctx context.Context, key string) ([]byte, error) {
	if f.myself == nil {
		return nil, &domain.NotFoundError{}
	}

	handle, err := f.myself.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	reply, err := invoke(ctx, handle, &pb.Key{Key: key}, f.opTimeout)
	if err != nil {
		return nil, err
	}

	data, ok := reply.(*pb.DataResponse)
	if !ok {
		return nil, typeMismatch(handle, reply, "DataResponse")
	}

	return data.GetValue(), nil
}

// Gather reads a key from every peer, one entry per peer; a peer that
// cannot answer contributes a nil value.
func (f *TxFrontend) Gather(ctx context.Context, key string) (map[string][]byte, error) {
	refs := f.cohortRefs()

	data := make(map[string][]byte)
	mu := sync.Mutex{}

	wg := &sync.WaitGroup{}

	for _, ref := range refs {
		wg.Add(1)

		go func(ref messaging.CohortRef) {
			defer wg.Done()

			handle, err := ref.Resolve(ctx)
			if err != nil {
				return
			}

			reply, err := invoke(ctx, handle, &pb.Key{Key: key}, f.opTimeout)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				data[handle.Name()] = nil
				return
			}

			if resp, ok := reply.(*pb.DataResponse); ok {
				data[handle.Name()] = resp.GetValue()
			} else {
				data[handle.Name()] = nil
			}
		}(ref)
	}

	wg.Wait()

	return data, nil
}

// GetStatus asks the peers what became of a transaction. Peers still in a
// pending state trigger a bounded retry: the decision may simply not have
// reached them yet.
func (f *TxFrontend) GetStatus(ctx context.Context, txID string) (domain.Status, error) {
	return f.getStatusWithRetry(ctx, txID, 0)
}

func (f *TxFrontend) getStatusWithRetry(ctx context.Context, txID string, retryCount int) (domain.Status, error) {
	request := &pb.StatusRequest{TransactionID: txID}

	var mu sync.Mutex
	shouldCommit := false
	shouldAbort := false

	wg := &sync.WaitGroup{}

	for _, peer := range f.peers {
		wg.Add(1)

		go func(peer *messaging.PeerRef) {
			defer wg.Done()

			handle, err := peer.Resolve(ctx)
			if err != nil {
				return
			}

			reply, err := invoke(ctx, handle, request, f.opTimeout)
			if err != nil {
				return
			}

			resp, ok := reply.(*pb.StatusReply)
			if !ok {
				return
			}

			mu.Lock()
			defer mu.Unlock()

			switch resp.GetStatus() {
			case pb.TxStatus_COMMITTED:
				shouldCommit = true
			case pb.TxStatus_ABORTED:
				shouldAbort = true
			}
		}(peer)
	}

	wg.Wait()

	if !shouldCommit && !shouldAbort {
		// Every peer is still pending, retry until the decision lands.
		if f.maxRetries < 0 || retryCount < f.maxRetries {
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return domain.Ready, ctx.Err()
			}

			return f.getStatusWithRetry(ctx, txID, retryCount+1)
		}
	}

	if shouldCommit {
		return domain.Commit, nil
	}

	if shouldAbort {
		return domain.Abort, nil
	}

	return domain.Ready, nil
}
