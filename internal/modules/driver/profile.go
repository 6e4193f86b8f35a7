// README: Driver profile report.
package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"rideshare/internal/modules/ride"
)

// WriteProfile writes the header and one "<ride> | Fare: $x.xx" line per
// assigned ride. Nothing reaches w if a ride fails to resolve.
func (d *Driver) WriteProfile(w io.Writer, rides ride.Resolver) error {
	var b strings.Builder
	b.WriteString("\n=== Driver Profile ===\n")
	fmt.Fprintf(&b, "Name: %s | Rating: %s/5.0\n", d.Name, ride.FormatNumber(d.Rating))
	b.WriteString("Completed Rides:\n")
	for _, ref := range d.rides {
		r, err := rides.Ride(ref)
		if err != nil {
			return fmt.Errorf("driver %s profile: %w", d.ID, err)
		}
		fmt.Fprintf(&b, "%s | Fare: %s\n", r.Describe(), r.FareMoney())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (d *Driver) PrintProfile(rides ride.Resolver) error {
	return d.WriteProfile(os.Stdout, rides)
}
