package controller

import (
	"context"

	"github.com/ngaut/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shardcommit/domain"
	pb "shardcommit/grpc/proto-files/cohort"
	"shardcommit/service"
)

// CohortServer exposes one participant as a gRPC cohort.
type CohortServer struct {
	pb.UnimplementedCohortServer

	participant service.Participant
}

func NewCohortServer(participant service.Participant) *CohortServer {
	return &CohortServer{
		UnimplementedCohortServer: pb.UnimplementedCohortServer{},
		participant:               participant,
	}
}

func (c *CohortServer) Stage(ctx context.Context, request *pb.StageRequest) (*pb.StageReply, error) {
	err := c.participant.HandleStage(request.GetTransactionID(), request.GetKey(), request.GetValue())
	if err != nil {
		log.Warnf("Refusing to stage tx %v: %v", request.GetTransactionID(), err)
	}

	return &pb.StageReply{
		Ok:      err == nil,
		Version: domain.ProtocolVersion,
	}, nil
}

func (c *CohortServer) CanCommit(ctx context.Context, request *pb.CanCommitRequest) (*pb.CanCommitReply, error) {
	vote, err := c.participant.HandleCanCommit(request.GetTransactionID())
	if err != nil {
		log.Warnf("Voting no on tx %v: %v", request.GetTransactionID(), err)
		vote = false
	}

	return &pb.CanCommitReply{
		CanCommit: vote,
		Version:   domain.ProtocolVersion,
	}, nil
}

func (c *CohortServer) Commit(ctx context.Context, request *pb.CommitRequest) (*pb.CommitReply, error) {
	if err := c.participant.HandleCommit(request.GetTransactionID()); err != nil {
		return nil, status.Errorf(codes.Internal, "commit of %v failed: %v", request.GetTransactionID(), err)
	}

	return &pb.CommitReply{
		Version: domain.ProtocolVersion,
	}, nil
}

func (c *CohortServer) Abort(ctx context.Context, request *pb.AbortRequest) (*pb.AbortReply, error) {
	if err := c.participant.HandleAbort(request.GetTransactionID()); err != nil {
		return nil, status.Errorf(codes.Internal, "abort of %v failed: %v", request.GetTransactionID(), err)
	}

	return &pb.AbortReply{
		Version: domain.ProtocolVersion,
	}, nil
}

func (c *CohortServer) Get(ctx context.Context, key *pb.Key) (*pb.DataResponse, error) {
	value, err := c.participant.Get(key.GetKey())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}

	return &pb.DataResponse{
		Value: value,
	}, nil
}

func (c *CohortServer) GetStatus(ctx context.Context, request *pb.StatusRequest) (*pb.StatusReply, error) {
	st, err := c.participant.GetStatus(request.GetTransactionID())
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}

	var txStatus pb.TxStatus

	switch st {
	case domain.Staged:
		txStatus = pb.TxStatus_STAGED
	case domain.Ready:
		txStatus = pb.TxStatus_READY
	case domain.Commit:
		txStatus = pb.TxStatus_COMMITTED
	case domain.Abort:
		txStatus = pb.TxStatus_ABORTED
	}

	return &pb.StatusReply{
		Status:  txStatus,
		Version: domain.ProtocolVersion,
	}, nil
}
