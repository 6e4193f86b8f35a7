// README: Ledger owns rides for a run; records hold Refs into it instead of pointers.
package ride

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownRide = errors.New("unknown ride reference")
	ErrReleased    = errors.New("ride ledger released")
)

// Ref is a stable index into a Ledger.
type Ref int

// Resolver turns a Ref back into the ride it points at.
type Resolver interface {
	Ride(ref Ref) (*Ride, error)
}

type Ledger struct {
	rides    []*Ride
	released bool
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends r and returns its Ref. After Release, r is dropped and the
// returned Ref never resolves.
func (l *Ledger) Add(r *Ride) Ref {
	if l.released {
		return Ref(-1)
	}
	l.rides = append(l.rides, r)
	return Ref(len(l.rides) - 1)
}

func (l *Ledger) Ride(ref Ref) (*Ride, error) {
	if l.released {
		return nil, ErrReleased
	}
	if ref < 0 || int(ref) >= len(l.rides) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRide, ref)
	}
	return l.rides[ref], nil
}

func (l *Ledger) Len() int {
	return len(l.rides)
}

// All returns the rides in creation order.
func (l *Ledger) All() []*Ride {
	out := make([]*Ride, len(l.rides))
	copy(out, l.rides)
	return out
}

// Release drops every ride. Calling it again is a no-op.
func (l *Ledger) Release() {
	if l.released {
		return
	}
	l.rides = nil
	l.released = true
}

func (l *Ledger) Released() bool {
	return l.released
}
