package fixture

import "github.com/AndreyAkinshin/neartest/pkg/neartest"

// Conform adapts actual to the shape family of expected where the JSON
// representation is ambiguous: a rectangular nested array is turned into a
// grid when a grid is expected. Other values are returned unchanged, so a
// genuine shape difference is still reported by the checker.
func Conform(actual neartest.Value[float64], expected neartest.Kind) neartest.Value[float64] {
	if expected == neartest.KindGrid && actual.Kind() == neartest.KindNested {
		if g, err := neartest.GridFromRows(actual.AsNested()); err == nil {
			return neartest.GridValue(g)
		}
	}
	if expected == neartest.KindNested && actual.Kind() == neartest.KindSequence && len(actual.AsSequence()) == 0 {
		return neartest.Nested([][]float64{})
	}
	return actual
}

// Run checks actual against f.Expected on c, using the fixture's tolerance
// or def when it has none. Skipped fixtures are not checked.
func Run(c *neartest.Checker[float64], f *Fixture, actual neartest.Value[float64], def float64) {
	if f.Skip {
		return
	}
	c.NearValue(Conform(actual, f.Expected.Kind()), f.Expected, f.ToleranceOr(def), f.FailureMessage())
}
