package service

import "shardcommit/domain"

type Participant interface {
	HandleStage(txID string, key string, value []byte) error
	HandleCanCommit(txID string) (bool, error)
	HandleCommit(txID string) error
	HandleAbort(txID string) error

	Get(key string) ([]byte, error)
	GetStatus(txID string) (domain.Status, error)
	Recover() error
}
