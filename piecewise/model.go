package piecewise

type TupleSize int

const (
	TupleQuadratic TupleSize = 3
	TupleCubic     TupleSize = 4
)

type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Curve is a piecewise polynomial: one coefficient tuple per segment,
// segments delimited by consecutive breakpoints.
type Curve struct {
	Coefficients []float64 `yaml:"coefficients" json:"coefficients"`
	Breakpoints  []int     `yaml:"breakpoints" json:"breakpoints"`
	TupleSize    TupleSize `yaml:"tupleSize" json:"tupleSize"`
}

// Trace holds the evaluated curve: Scatter has one point per integer x
// step inside every segment, Knots has one point per breakpoint.
type Trace struct {
	Scatter []Point `yaml:"scatter" json:"scatter"`
	Knots   []Point `yaml:"knots" json:"knots"`
}
