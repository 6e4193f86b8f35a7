// README: Rider record; keeps requested rides in insertion order.
package rider

import (
	"rideshare/internal/modules/ride"
	"rideshare/internal/types"
)

type Rider struct {
	ID    types.ID
	Name  string
	rides []ride.Ref
}

func New(id types.ID, name string) *Rider {
	return &Rider{ID: id.OrNew(), Name: name}
}

func (r *Rider) RequestRide(ref ride.Ref) {
	r.rides = append(r.rides, ref)
}

func (r *Rider) Rides() []ride.Ref {
	out := make([]ride.Ref, len(r.rides))
	copy(out, r.rides)
	return out
}
