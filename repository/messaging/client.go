package messaging

import (
	"context"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/ngaut/log"
	"github.com/pkg/errors"
	"google.golang.org/grpc"

	pb "shardcommit/grpc/proto-files/cohort"
)

// CohortHandle is an addressable remote participant in a transaction. Send
// delivers one typed request and returns the typed reply; callers are
// responsible for checking the reply variant matches the request.
type CohortHandle interface {
	Name() string
	Send(ctx context.Context, req proto.Message) (proto.Message, error)
}

type CohortClientConfig struct {
	PeerName   string
	ServerAddr string
}

// CohortClient is the gRPC-backed CohortHandle for one shard participant.
type CohortClient struct {
	PeerName   string
	rpcClient  pb.CohortClient
	serverAddr string
}

func NewCohortClient(config *CohortClientConfig) *CohortClient {
	return &CohortClient{
		PeerName:   config.PeerName,
		serverAddr: config.ServerAddr,
		rpcClient:  nil,
	}
}

func (c *CohortClient) Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rpcConn, err := grpc.DialContext(ctx, c.serverAddr, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return errors.Wrapf(err, "could not connect to %v", c.serverAddr)
	}

	log.Infof("Connected to: %v", c.serverAddr)

	c.rpcClient = pb.NewCohortClient(rpcConn)

	return nil
}

func (c *CohortClient) Name() string {
	return c.PeerName
}

func (c *CohortClient) Send(ctx context.Context, req proto.Message) (proto.Message, error) {
	switch r := req.(type) {
	case *pb.StageRequest:
		return c.rpcClient.Stage(ctx, r)
	case *pb.CanCommitRequest:
		return c.rpcClient.CanCommit(ctx, r)
	case *pb.CommitRequest:
		return c.rpcClient.Commit(ctx, r)
	case *pb.AbortRequest:
		return c.rpcClient.Abort(ctx, r)
	case *pb.Key:
		return c.rpcClient.Get(ctx, r)
	case *pb.StatusRequest:
		return c.rpcClient.GetStatus(ctx, r)
	default:
		return nil, errors.Errorf("unsupported request type %T", req)
	}
}
