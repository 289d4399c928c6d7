// store.go
//
// Single-writer wrapper around the pure transitions. All mutation flows
// through Dispatch under one mutex; reads get value copies and applied
// changes are handed to the persistence hook off the hot path.

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Persister receives the durable part of the state after every applied
// command.
type Persister interface {
	SaveSnapshot(state State) error
}

// Store serializes command application over the business state.
type Store struct {
	mu    sync.Mutex
	state State

	persister Persister
	log       *logrus.Logger

	// Overridable for deterministic tests.
	Now   func() time.Time
	NewID func() string
}

// New builds a store over an initial state. persister may be nil when
// durability is not wanted, log must not be nil.
func New(initial State, persister Persister, log *logrus.Logger) *Store {
	return &Store{
		state:     initial,
		persister: persister,
		log:       log,
		Now:       time.Now,
		NewID:     uuid.NewString,
	}
}

// State returns the current state value. Slices are shared with past
// versions but never mutated, so the copy is safe to read concurrently.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies one command atomically. Rejected commands leave the state
// untouched; applied ones are persisted asynchronously so callers never wait
// on the database.
func (s *Store) Dispatch(cmd Command) Result {
	s.mu.Lock()
	e := stamp{now: s.Now(), newID: s.NewID}
	next, result := Apply(s.state, cmd, e)
	if result.Applied {
		s.state = next
	}
	s.mu.Unlock()

	if result.Applied {
		s.log.WithField("command", cmd.Kind()).Info("command applied")
		if s.persister != nil {
			go s.persist(next)
		}
	} else {
		s.log.WithFields(logrus.Fields{
			"command": cmd.Kind(),
			"reason":  result.Reason,
		}).Warn("command rejected")
	}
	return result
}

func (s *Store) persist(st State) {
	if err := s.persister.SaveSnapshot(st.Persistable()); err != nil {
		s.log.WithError(err).Error("snapshot save failed")
	}
}
