//go:build unit || property

package schedule_test

import (
	"testing"
	"time"

	"commerce-actions/internal/domain/schedule"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var base = time.Date(2024, 7, 29, 0, 0, 0, 0, time.UTC)

func windowAt(startMin, lengthMin int) schedule.TimeWindow {
	w, _ := schedule.NewWindow(
		base.Add(time.Duration(startMin)*time.Minute),
		base.Add(time.Duration(startMin+lengthMin)*time.Minute),
	)
	return w
}

// Property: Overlaps matches the integer-minute definition of half-open
// interval intersection and is symmetric.
func TestOverlapMatchesIntervalArithmetic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("overlap agrees with max(start) < min(end)", prop.ForAll(
		func(aStart, aLen, bStart, bLen int) bool {
			a := windowAt(aStart, aLen)
			b := windowAt(bStart, bLen)

			expected := max(aStart, bStart) < min(aStart+aLen, bStart+bLen)
			return a.Overlaps(b) == expected && b.Overlaps(a) == expected
		},
		gen.IntRange(0, 24*60),
		gen.IntRange(1, 240),
		gen.IntRange(0, 24*60),
		gen.IntRange(1, 240),
	))

	properties.Property("back-to-back windows never overlap", prop.ForAll(
		func(start, aLen, bLen int) bool {
			a := windowAt(start, aLen)
			b := windowAt(start+aLen, bLen)
			return !a.Overlaps(b) && !b.Overlaps(a)
		},
		gen.IntRange(0, 24*60),
		gen.IntRange(1, 240),
		gen.IntRange(1, 240),
	))

	properties.Property("timezone does not change the verdict", prop.ForAll(
		func(aStart, aLen, bStart, bLen int, offsetHours int) bool {
			zone := time.FixedZone("shifted", offsetHours*3600)
			a := windowAt(aStart, aLen)
			b := windowAt(bStart, bLen)
			shifted, err := schedule.NewWindow(b.Start().In(zone), b.End().In(zone))
			if err != nil {
				return false
			}
			return a.Overlaps(b) == a.Overlaps(shifted)
		},
		gen.IntRange(0, 24*60),
		gen.IntRange(1, 240),
		gen.IntRange(0, 24*60),
		gen.IntRange(1, 240),
		gen.IntRange(-12, 14),
	))

	properties.TestingRun(t)
}
