// Package session owns the configuration transactions opened on behalf of
// one management session. A session opens at most one active transaction at
// a time against the configuration registry; the provider tracks every
// transaction it ever opened so session teardown can abort the stragglers.
package session

import (
	"sync"

	"github.com/ngaut/log"
	"github.com/pkg/errors"
)

// TxHandle names one open configuration transaction in the registry.
type TxHandle string

// CommitStatus reports what a committed configuration transaction did to
// the running configuration.
type CommitStatus struct {
	NewInstances       []string
	ReusedInstances    []string
	RecreatedInstances []string
}

// Registry is the configuration registry the provider drives. It lives
// outside this package; the provider only consumes the interface.
type Registry interface {
	Begin() TxHandle
	Open() []TxHandle

	Commit(tx TxHandle) (CommitStatus, error)
	Abort(tx TxHandle) error
	Validate(tx TxHandle) error

	Instances(tx TxHandle) ([]string, error)
	DestroyInstance(tx TxHandle, name string) error
	RemoveAllServiceReferences(tx TxHandle) error
}

// ValidationError keeps the transaction open: the session may fix the
// configuration and retry the commit.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// VersionConflictError means another session committed first; the
// transaction is aborted automatically.
type VersionConflictError struct {
	Reason string
}

func (e *VersionConflictError) Error() string {
	return "conflicting version: " + e.Reason
}

var ErrNoTransaction = errors.New("no transaction found for session")

// Provider is the single-actor transaction lifecycle manager for one
// session.
type Provider struct {
	mu sync.Mutex

	registry  Registry
	sessionID string

	current   TxHandle
	hasTx     bool
	allOpened []TxHandle
}

func NewProvider(registry Registry, sessionID string) *Provider {
	return &Provider{
		registry:  registry,
		sessionID: sessionID,
	}
}

// transaction returns the session's open transaction if it is still open in
// the registry. A transaction closed behind the session's back is healed by
// clearing the stale handle.
func (p *Provider) transaction() (TxHandle, bool) {
	if !p.hasTx {
		return "", false
	}

	if !p.isStillOpen(p.current) {
		log.Warnf("Fixing illegal state: transaction %v was closed in %v", p.current, p.sessionID)
		p.hasTx = false
		return "", false
	}

	return p.current, true
}

func (p *Provider) isStillOpen(tx TxHandle) bool {
	for _, open := range p.registry.Open() {
		if open == tx {
			return true
		}
	}
	return false
}

// GetOrCreateTransaction returns the session's open transaction, beginning
// a new one if there is none.
func (p *Provider) GetOrCreateTransaction() TxHandle {
	p.mu.Lock()
	defer p.mu.Unlock()

	if tx, ok := p.transaction(); ok {
		return tx
	}

	p.current = p.registry.Begin()
	p.hasTx = true
	p.allOpened = append(p.allOpened, p.current)

	return p.current
}

// GetTestTransaction begins a throwaway transaction that is not the
// session's current one; used to test-drive a candidate configuration.
func (p *Provider) GetTestTransaction() TxHandle {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx := p.registry.Begin()
	p.allOpened = append(p.allOpened, tx)

	return tx
}

// CommitTransaction commits the session's open transaction. A validation
// failure leaves the transaction open so the session can fix it and retry;
// a version conflict aborts the transaction before the error is returned.
func (p *Provider) CommitTransaction() (CommitStatus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, ok := p.transaction()
	if !ok {
		return CommitStatus{}, errors.Wrap(ErrNoTransaction, p.sessionID)
	}

	status, err := p.registry.Commit(tx)
	if err != nil {
		switch errors.Cause(err).(type) {
		case *ValidationError:
			// No clean up: the session can reconfigure and recover
			// this transaction.
			log.Warnf("Transaction %v failed on %v", tx, err)
			return CommitStatus{}, err
		case *VersionConflictError:
			log.Errorf("Conflict while committing %v, aborting transaction: %v", tx, err)
			p.abortLocked(tx)
			return CommitStatus{}, err
		default:
			return CommitStatus{}, err
		}
	}

	p.forget(tx)
	p.hasTx = false

	return status, nil
}

// AbortTransaction aborts the session's open transaction.
func (p *Provider) AbortTransaction() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	log.Debugf("Aborting current transaction of %v", p.sessionID)

	tx, ok := p.transaction()
	if !ok {
		return errors.Wrap(ErrNoTransaction, p.sessionID)
	}

	p.abortLocked(tx)

	return nil
}

// AbortTestTransaction aborts a transaction obtained from
// GetTestTransaction.
func (p *Provider) AbortTestTransaction(tx TxHandle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	log.Debugf("Aborting transaction %v", tx)

	p.forget(tx)

	return p.registry.Abort(tx)
}

func (p *Provider) abortLocked(tx TxHandle) {
	if err := p.registry.Abort(tx); err != nil {
		log.Warnf("Ignoring abort failure of %v: %v", tx, err)
	}
	p.forget(tx)
	p.hasTx = false
}

func (p *Provider) forget(tx TxHandle) {
	for i, open := range p.allOpened {
		if open == tx {
			p.allOpened = append(p.allOpened[:i], p.allOpened[i+1:]...)
			return
		}
	}
}

// ValidateTransaction validates the session's open transaction without
// committing it.
func (p *Provider) ValidateTransaction() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, ok := p.transaction()
	if !ok {
		return errors.Wrap(ErrNoTransaction, p.sessionID)
	}

	return p.registry.Validate(tx)
}

func (p *Provider) ValidateTestTransaction(tx TxHandle) error {
	return p.registry.Validate(tx)
}

// WipeTransaction removes every configured instance and all service
// references from the session's open transaction while keeping the
// transaction itself open.
func (p *Provider) WipeTransaction() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, ok := p.transaction()
	if !ok {
		return errors.Wrap(ErrNoTransaction, p.sessionID)
	}

	return p.wipe(tx)
}

func (p *Provider) WipeTestTransaction(tx TxHandle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.wipe(tx)
}

func (p *Provider) wipe(tx TxHandle) error {
	instances, err := p.registry.Instances(tx)
	if err != nil {
		return err
	}

	for _, instance := range instances {
		if err := p.registry.DestroyInstance(tx, instance); err != nil {
			return errors.Wrapf(err, "unable to clean configuration in transaction %v", tx)
		}
	}

	log.Debugf("Transaction %v wiped clean of %v instances", tx, len(instances))

	if err := p.registry.RemoveAllServiceReferences(tx); err != nil {
		return err
	}

	log.Debugf("Transaction %v wiped clean of all service references", tx)

	return nil
}

// Close aborts every transaction this session ever opened that is still
// open, best effort. Individual failures are logged and discarded; Close
// never fails.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, tx := range p.allOpened {
		if !p.isStillOpen(tx) {
			continue
		}

		if err := p.registry.Abort(tx); err != nil {
			log.Debugf("Ignoring exception while closing transaction %v: %v", tx, err)
		}
	}

	p.allOpened = nil
	p.hasTx = false
}
