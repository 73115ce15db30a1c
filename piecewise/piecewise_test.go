package piecewise

import (
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

func TestTraceQuadratic(t *testing.T) {
	c, err := NewCurve([]float64{1, 0, 0}, []int{0, 3}, TupleQuadratic)
	assert.Nil(t, err)

	tr, err := c.Trace()
	assert.Nil(t, err)

	assert.EqualValues(t, []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}}, tr.Scatter)
	assert.EqualValues(t, []Point{{X: 0, Y: 0}, {X: 3, Y: 9}}, tr.Knots)
}

func TestTraceCubic(t *testing.T) {
	c, err := NewCurve([]float64{1, 0, 0, 0}, []int{0, 2}, TupleCubic)
	assert.Nil(t, err)

	tr, err := c.Trace()
	assert.Nil(t, err)

	assert.EqualValues(t, []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, tr.Scatter)
	assert.EqualValues(t, []Point{{X: 0, Y: 0}, {X: 2, Y: 8}}, tr.Knots)
}

func TestTraceSingleSegment(t *testing.T) {
	// two breakpoints, one tuple
	c, err := NewCurve([]float64{2, 1, 3}, []int{1, 4}, TupleQuadratic)
	assert.Nil(t, err)
	assert.EqualValues(t, 1, c.Segments())

	tr, err := c.Trace()
	assert.Nil(t, err)

	assert.EqualValues(t, []Point{{X: 1, Y: 6}, {X: 2, Y: 13}, {X: 3, Y: 24}}, tr.Scatter)
	assert.EqualValues(t, []Point{{X: 1, Y: 6}, {X: 4, Y: 39}}, tr.Knots)
}

func TestTraceNoContinuity(t *testing.T) {
	// y=x^2 on [0,2), y=10 on [2,4]: the shared breakpoint at x=2 takes the
	// second segment's own value, not the first segment's.
	c, err := NewCurve([]float64{1, 0, 0, 0, 0, 10}, []int{0, 2, 4}, TupleQuadratic)
	assert.Nil(t, err)

	tr, err := c.Trace()
	assert.Nil(t, err)

	assert.EqualValues(t, []Point{{X: 0, Y: 0}, {X: 2, Y: 10}, {X: 4, Y: 10}}, tr.Knots)

	y0, err := c.At(0, 2)
	assert.Nil(t, err)
	assert.EqualValues(t, 4, y0)
	assert.NotEqual(t, y0, tr.Knots[1].Y)
}

func TestValidate(t *testing.T) {
	_, err := NewCurve([]float64{1, 0}, []int{0, 3}, TupleQuadratic)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = NewCurve([]float64{1, 0, 0, 5}, []int{0, 3}, TupleQuadratic)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = NewCurve(nil, []int{7}, TupleQuadratic)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = NewCurve([]float64{1, 0, 0, 2, 0, 0}, []int{0, 3, 3}, TupleQuadratic)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = NewCurve([]float64{1, 0, 0, 2, 0, 0}, []int{0, 3, 1}, TupleQuadratic)
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)

	_, err = NewCurve([]float64{1, 0, 0, 0, 0}, []int{0, 3}, TupleSize(5))
	assert.ErrorIs(t, err, commerr.ErrInvalidArgument)
}

func TestAtOutOfRange(t *testing.T) {
	c, err := NewCurve([]float64{1, 0, 0}, []int{0, 3}, TupleQuadratic)
	assert.Nil(t, err)

	_, err = c.At(1, 0)
	assert.ErrorIs(t, err, commerr.ErrOutOfRange)

	_, err = c.At(-1, 0)
	assert.ErrorIs(t, err, commerr.ErrOutOfRange)
}
