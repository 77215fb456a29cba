package mutation

import (
	"errors"
	"sync"
)

// ErrInFlight is returned when a mutation slot is already running.
var ErrInFlight = errors.New("mutation already in flight")

// Slot names one mutation operation with its own in-flight flag.
type Slot string

const (
	SlotUpdating        Slot = "updating"
	SlotDeleting        Slot = "deleting"
	SlotAddingVariant   Slot = "addingVariant"
	SlotUpdatingVariant Slot = "updatingVariant"
	SlotDeletingVariant Slot = "deletingVariant"
	SlotUpdatingUser    Slot = "updatingUser"
	SlotDeletingUser    Slot = "deletingUser"
	SlotDeletingInvite  Slot = "deletingInvite"
	SlotResendingInvite Slot = "resendingInvite"
)

type slots struct {
	mu   sync.Mutex
	busy map[Slot]bool
}

func (s *slots) acquire(slot Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[slot] {
		return false
	}
	if s.busy == nil {
		s.busy = make(map[Slot]bool)
	}
	s.busy[slot] = true
	return true
}

func (s *slots) release(slot Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, slot)
}

func (s *slots) inFlight(slot Slot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy[slot]
}
