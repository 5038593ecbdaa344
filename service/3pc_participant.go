package service

import (
	"context"
	"sync"

	"github.com/ngaut/log"
	"github.com/pkg/errors"

	"shardcommit/domain"
	"shardcommit/repository/database"
)

// TPCParticipant is the cohort-side half of the protocol: it stages pending
// writes, votes, and applies or drops them as instructed by a coordinator.
type TPCParticipant struct {
	wal       database.Database
	dataCache database.Database
	txCache   database.Database

	lock    *sync.Mutex
	lockMap map[string]*sync.Mutex

	coordinatorService Coordinator
}

func NewTPCParticipant(wal database.Database, dataCache database.Database, txCache database.Database, coordinatorService Coordinator) *TPCParticipant {
	return &TPCParticipant{
		wal:                wal,
		dataCache:          dataCache,
		txCache:            txCache,
		lock:               &sync.Mutex{},
		lockMap:            make(map[string]*sync.Mutex),
		coordinatorService: coordinatorService,
	}
}

func (t *TPCParticipant) keyLock(key string) *sync.Mutex {
	t.lock.Lock()
	defer t.lock.Unlock()

	lock, ok := t.lockMap[key]
	if !ok {
		lock = &sync.Mutex{}
		t.lockMap[key] = lock
	}

	return lock
}

// HandleStage records the pending write for txID under its key lock. The
// entry goes to the WAL before any cache is touched.
func (t *TPCParticipant) HandleStage(txID string, key string, value []byte) error {
	lock := t.keyLock(key)

	lock.Lock()
	defer lock.Unlock()

	entry := &domain.Entry{
		TxID:  txID,
		Key:   key,
		State: domain.Staged,
		Len:   len(value),
		Data:  value,
	}

	err := t.wal.Put(key, entry)
	if err != nil {
		log.Errorf("Could not write transaction to wal: %v", err)
		return err
	}

	_ = t.txCache.Put(txID, entry)

	log.Debugf("Staged: %v", entry)

	return nil
}

// HandleCanCommit votes yes iff the transaction has a staged entry on this
// participant. A yes vote moves the entry to Ready in the WAL first, so a
// restart knows the vote was cast.
func (t *TPCParticipant) HandleCanCommit(txID string) (bool, error) {
	entry, err := t.txCache.Get(txID)
	if err != nil {
		if _, ok := errors.Cause(err).(*domain.NotFoundError); ok {
			log.Debugf("Voting no on unknown transaction %v", txID)
			return false, nil
		}
		return false, err
	}

	lock := t.keyLock(entry.Key)

	lock.Lock()
	defer lock.Unlock()

	if entry.State != domain.Staged {
		log.Debugf("Voting no on transaction %v in state %v", txID, entry.State)
		return false, nil
	}

	entry.State = domain.Ready

	if err := t.wal.Put(entry.Key, entry); err != nil {
		return false, err
	}

	_ = t.txCache.Put(txID, entry)

	log.Debugf("Voted yes: %v", entry)

	return true, nil
}

// HandleCommit applies the staged value to the data cache.
func (t *TPCParticipant) HandleCommit(txID string) error {
	entry, err := t.txCache.Get(txID)
	if err != nil {
		return err
	}

	lock := t.keyLock(entry.Key)

	lock.Lock()
	defer lock.Unlock()

	entry.State = domain.Commit

	err = t.wal.Put(entry.Key, entry)
	if err != nil {
		return err
	}

	_ = t.txCache.Put(txID, entry)
	_ = t.dataCache.Put(entry.Key, entry)

	log.Infof("Committed: %v", entry)

	return nil
}

// HandleAbort drops the staged write. Aborting a transaction this
// participant never saw is a no-op: the coordinator aborts blindly during
// error unwinding.
func (t *TPCParticipant) HandleAbort(txID string) error {
	entry, err := t.txCache.Get(txID)
	if err != nil {
		if _, ok := errors.Cause(err).(*domain.NotFoundError); ok {
			return nil
		}
		return err
	}

	lock := t.keyLock(entry.Key)

	lock.Lock()
	defer lock.Unlock()

	entry.State = domain.Abort

	err = t.wal.Put(entry.Key, entry)
	if err != nil {
		return err
	}

	_ = t.txCache.Put(txID, entry)

	log.Infof("Aborted: %v", entry)

	return nil
}

func (t *TPCParticipant) Get(key string) ([]byte, error) {
	lock := t.keyLock(key)

	lock.Lock()
	defer lock.Unlock()

	entry, err := t.dataCache.Get(key)
	if err != nil {
		return nil, err
	}

	return entry.Data, nil
}

func (t *TPCParticipant) GetStatus(txID string) (domain.Status, error) {
	tx, err := t.txCache.Get(txID)
	if err != nil {
		return domain.Staged, err
	}

	return tx.State, nil
}

// Recover replays the WAL and rebuilds the caches. Committed entries are
// re-applied. Entries whose vote was cast but whose outcome is unknown are
// resolved by asking the peers; if no peer knows the outcome either, the
// entry stays in doubt and is left for the next coordinator decision.
func (t *TPCParticipant) Recover() error {
	entryList, err := t.wal.Recover()
	if err != nil {
		return err
	}

	log.Infof("Replaying %v wal entries", len(entryList))

	for _, entry := range entryList {
		err := t.txCache.Put(entry.TxID, entry)
		if err != nil {
			return err
		}
	}

	for _, txID := range t.txCache.GetAllKeys() {
		tx, err := t.txCache.Get(txID)
		if err != nil {
			return err
		}

		log.Infof("Recovering: %v", tx)

		switch tx.State {
		case domain.Staged:
			// The vote was never cast, nothing was promised.
			log.Infof("Dropping unvoted transaction: %v", tx.TxID)
			tx.State = domain.Abort
			_ = t.txCache.Put(tx.TxID, tx)

		case domain.Ready:
			// Voted yes but the outcome is unknown, ask the peers.
			status, err := t.getPeerStatus(tx.TxID)
			if err != nil {
				log.Warnf("Could not learn outcome of %v, leaving in doubt: %v", tx.TxID, err)
				continue
			}

			switch status {
			case domain.Commit:
				log.Infof("Committing in-doubt transaction: %v", tx.TxID)
				if err := t.applyRecovered(tx); err != nil {
					return err
				}
			case domain.Abort:
				log.Infof("Aborting in-doubt transaction: %v", tx.TxID)
				tx.State = domain.Abort
				_ = t.txCache.Put(tx.TxID, tx)
			default:
				log.Warnf("Peers undecided on %v, leaving in doubt", tx.TxID)
			}

		case domain.Commit:
			if err := t.applyRecovered(tx); err != nil {
				return err
			}

		case domain.Abort:
			continue
		}
	}

	return nil
}

func (t *TPCParticipant) applyRecovered(tx *domain.Entry) error {
	t.keyLock(tx.Key)

	tx.State = domain.Commit

	if err := t.dataCache.Put(tx.Key, tx); err != nil {
		return err
	}

	return t.txCache.Put(tx.TxID, tx)
}

func (t *TPCParticipant) getPeerStatus(txID string) (domain.Status, error) {
	if t.coordinatorService == nil {
		return domain.Ready, errors.New("no peer status service configured")
	}

	return t.coordinatorService.GetStatus(context.Background(), txID)
}
