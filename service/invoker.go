package service

import (
	"context"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shardcommit/domain"
	"shardcommit/repository/messaging"
)

// invoke sends one request to one cohort, bounded by timeout, and classifies
// any failure. There are no retries at this layer; retry policy belongs to
// the caller.
func invoke(ctx context.Context, cohort messaging.CohortHandle, req proto.Message, timeout time.Duration) (proto.Message, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := cohort.Send(callCtx, req)
	if err != nil {
		kind := domain.FailureTransport
		if isTimeout(callCtx, err) {
			kind = domain.FailureTimeout
		}

		return nil, &domain.CohortCallError{
			Kind:   kind,
			Cohort: cohort.Name(),
			Cause:  err,
		}
	}

	return reply, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Cause(err) == context.DeadlineExceeded {
		return true
	}
	if status.Code(err) == codes.DeadlineExceeded {
		return true
	}
	return ctx.Err() == context.DeadlineExceeded
}

// typeMismatch reports a reply that is not of the variant expected for the
// request. A mismatched reply signals protocol desynchronization and is
// treated exactly like a failed call, never swallowed.
func typeMismatch(cohort messaging.CohortHandle, reply proto.Message, want string) *domain.CohortCallError {
	return &domain.CohortCallError{
		Kind:   domain.FailureTypeMismatch,
		Cohort: cohort.Name(),
		Cause:  errors.Errorf("expected %v, got %T", want, reply),
	}
}
