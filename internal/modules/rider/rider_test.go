package rider

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rideshare/internal/modules/ride"
)

func TestWriteHistory(t *testing.T) {
	l := ride.NewLedger()
	r := New("R99", "Vishnu")
	r.RequestRide(l.Add(ride.NewStandard("Trip-STD", "Cinemark", "AMC", 15.2)))
	r.RequestRide(l.Add(ride.NewPremium("Trip-PRE", "Chipotle", "Chick-Fil-A", 5.5)))
	r.RequestRide(l.Add(ride.NewStandard("Trip-STD2", "T-Mobile", "Verizon", 8.0)))

	var buf bytes.Buffer
	require.NoError(t, r.WriteHistory(&buf, l))

	want := "\n=== Rider History: Vishnu ===\n" +
		"Standard Ride [ID: Trip-STD] From: Cinemark To: AMC (15.2 miles)\n" +
		"Premium Ride  [ID: Trip-PRE] From: Chipotle To: Chick-Fil-A (5.5 miles)\n" +
		"Standard Ride [ID: Trip-STD2] From: T-Mobile To: Verizon (8 miles)\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "Fare")
}

func TestWriteHistory_Empty(t *testing.T) {
	r := New("R1", "Solo")
	var buf bytes.Buffer
	require.NoError(t, r.WriteHistory(&buf, ride.NewLedger()))
	assert.Equal(t, "\n=== Rider History: Solo ===\n", buf.String())
}

func TestWriteHistory_InsertionOrderWithDuplicates(t *testing.T) {
	l := ride.NewLedger()
	first := l.Add(ride.NewStandard("first", "a", "b", 1))
	second := l.Add(ride.NewStandard("second", "a", "b", 2))

	r := New("R1", "Solo")
	r.RequestRide(second)
	r.RequestRide(first)
	r.RequestRide(second)

	var buf bytes.Buffer
	require.NoError(t, r.WriteHistory(&buf, l))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "[ID: second]")
	assert.Contains(t, lines[2], "[ID: first]")
	assert.Contains(t, lines[3], "[ID: second]")
}

func TestWriteHistory_UnknownRef(t *testing.T) {
	r := New("R1", "Solo")
	r.RequestRide(ride.Ref(3))
	var buf bytes.Buffer
	assert.ErrorIs(t, r.WriteHistory(&buf, ride.NewLedger()), ride.ErrUnknownRide)
	assert.Zero(t, buf.Len())
}

func TestNew_GeneratesMissingID(t *testing.T) {
	assert.NotEmpty(t, New("", "Anon").ID)
	assert.Equal(t, "R99", string(New("R99", "Vishnu").ID))
}
