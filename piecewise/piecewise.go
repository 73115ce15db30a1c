package piecewise

import (
	"github.com/sgostarter/i/commerr"
)

func NewCurve(coefficients []float64, breakpoints []int, tupleSize TupleSize) (*Curve, error) {
	c := &Curve{
		Coefficients: coefficients,
		Breakpoints:  breakpoints,
		TupleSize:    tupleSize,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Curve) Validate() error {
	if c.TupleSize != TupleQuadratic && c.TupleSize != TupleCubic {
		return commerr.ErrInvalidArgument
	}

	if len(c.Breakpoints) < 2 {
		return commerr.ErrInvalidArgument
	}

	if len(c.Coefficients) != (len(c.Breakpoints)-1)*int(c.TupleSize) {
		return commerr.ErrInvalidArgument
	}

	for idx := 1; idx < len(c.Breakpoints); idx++ {
		if c.Breakpoints[idx] <= c.Breakpoints[idx-1] {
			return commerr.ErrInvalidArgument
		}
	}

	return nil
}

func (c *Curve) Segments() int {
	if len(c.Breakpoints) < 2 {
		return 0
	}

	return len(c.Breakpoints) - 1
}

// At evaluates the polynomial of one segment at x. The segment's own
// formula is used even when x lies outside that segment's domain.
func (c *Curve) At(segment int, x float64) (float64, error) {
	if segment < 0 || segment >= c.Segments() {
		return 0, commerr.ErrOutOfRange
	}

	cs := c.Coefficients[segment*int(c.TupleSize):]

	if c.TupleSize == TupleCubic {
		return cs[0]*x*x*x + cs[1]*x*x + cs[2]*x + cs[3], nil
	}

	return cs[0]*x*x + cs[1]*x + cs[2], nil
}

// Trace evaluates every segment at each integer x in [b[i], b[i+1]) and at
// the breakpoints themselves. The knot at the final breakpoint comes from
// the last segment's formula, so Knots always spans the full domain.
// Adjacent segments are evaluated independently: no continuity at shared
// breakpoints is assumed or enforced.
func (c *Curve) Trace() (*Trace, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t := &Trace{}

	for segment := 0; segment < c.Segments(); segment++ {
		y, err := c.At(segment, float64(c.Breakpoints[segment]))
		if err != nil {
			return nil, err
		}

		t.Knots = append(t.Knots, Point{X: float64(c.Breakpoints[segment]), Y: y})

		for x := c.Breakpoints[segment]; x < c.Breakpoints[segment+1]; x++ {
			y, err = c.At(segment, float64(x))
			if err != nil {
				return nil, err
			}

			t.Scatter = append(t.Scatter, Point{X: float64(x), Y: y})
		}
	}

	lastX := c.Breakpoints[len(c.Breakpoints)-1]

	y, err := c.At(c.Segments()-1, float64(lastX))
	if err != nil {
		return nil, err
	}

	t.Knots = append(t.Knots, Point{X: float64(lastX), Y: y})

	return t, nil
}
