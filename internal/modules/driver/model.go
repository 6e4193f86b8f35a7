// README: Driver record; keeps the rides assigned to it in insertion order.
package driver

import (
	"rideshare/internal/modules/ride"
	"rideshare/internal/types"
)

type Driver struct {
	ID     types.ID
	Name   string
	Rating float64 // 0-5 scale, not validated
	rides  []ride.Ref
}

func New(id types.ID, name string, rating float64) *Driver {
	return &Driver{ID: id.OrNew(), Name: name, Rating: rating}
}

// AddRide appends ref. Duplicates are kept.
func (d *Driver) AddRide(ref ride.Ref) {
	d.rides = append(d.rides, ref)
}

func (d *Driver) Rides() []ride.Ref {
	out := make([]ride.Ref, len(d.rides))
	copy(out, d.rides)
	return out
}
