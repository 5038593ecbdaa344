package service

import (
	"context"
	"sync"

	"shardcommit/domain"
	"shardcommit/repository/messaging"
)

// resolveAll resolves every cohort reference concurrently, preserving input
// order in the result. The operation is atomic from the caller's point of
// view: if any reference fails, the whole resolution fails with that cause
// and the partial handle list is discarded, so no cohort is ever contacted.
func resolveAll(ctx context.Context, refs []messaging.CohortRef) ([]messaging.CohortHandle, error) {
	handles := make([]messaging.CohortHandle, len(refs))
	errs := make([]error, len(refs))

	wg := sync.WaitGroup{}

	for i, ref := range refs {
		wg.Add(1)

		go func(i int, ref messaging.CohortRef) {
			defer wg.Done()

			handles[i], errs[i] = ref.Resolve(ctx)
		}(i, ref)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, &domain.ResolutionError{Cause: err}
		}
	}

	return handles, nil
}
