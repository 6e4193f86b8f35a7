// README: Rider history report (descriptions only, no fares).
package rider

import (
	"fmt"
	"io"
	"os"
	"strings"

	"rideshare/internal/modules/ride"
)

func (r *Rider) WriteHistory(w io.Writer, rides ride.Resolver) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== Rider History: %s ===\n", r.Name)
	for _, ref := range r.rides {
		rd, err := rides.Ride(ref)
		if err != nil {
			return fmt.Errorf("rider %s history: %w", r.ID, err)
		}
		b.WriteString(rd.Describe())
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Rider) PrintHistory(rides ride.Resolver) error {
	return r.WriteHistory(os.Stdout, rides)
}
