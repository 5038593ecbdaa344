package messaging

import (
	"context"
	"sync"
)

// CohortRef is a deferred, possibly-failing reference to one participant.
// It resolves at most once: the first outcome, handle or failure, is cached
// and returned for every later call.
type CohortRef interface {
	Resolve(ctx context.Context) (CohortHandle, error)
}

// PeerRef resolves a peer address into a connected CohortClient on first
// use. A failed connection is permanent for the lifetime of the ref.
type PeerRef struct {
	mu     sync.Mutex
	client *CohortClient
	done   bool
	err    error
}

func NewPeerRef(config *CohortClientConfig) *PeerRef {
	return &PeerRef{
		client: NewCohortClient(config),
	}
}

func (r *PeerRef) Resolve(ctx context.Context) (CohortHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.done {
		r.err = r.client.Connect()
		r.done = true
	}

	if r.err != nil {
		return nil, r.err
	}

	return r.client, nil
}
