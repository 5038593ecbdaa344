package database

import "shardcommit/domain"

type Database interface {
	Put(key string, entry *domain.Entry) error
	Get(key string) (*domain.Entry, error)
	Delete(key string) error
	GetAllKeys() []string

	Recover() ([]*domain.Entry, error)
}
