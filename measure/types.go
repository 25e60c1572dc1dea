package measure

import "errors"

// Sentinel errors returned by the measure package.
var (
	// ErrInvalidMeasurement indicates a measurement line that does not hold
	// exactly four parsable whitespace-separated fields. Its message is an
	// external contract ("invalid measurement: <line>" once wrapped with the
	// offending line), so unlike the other sentinels it carries no package
	// prefix.
	ErrInvalidMeasurement = errors.New("invalid measurement")

	// ErrUnknownVertex indicates a vertex name other than A1, A2 or A3.
	ErrUnknownVertex = errors.New("measure: unknown vertex")

	// ErrBadDiameter indicates a gauge pin diameter that is not strictly
	// positive. A pin of zero or negative diameter cannot touch the face.
	ErrBadDiameter = errors.New("measure: pin diameter must be positive")

	// ErrBadHeight indicates a negative spacer block height. A zero height
	// (pin resting directly on the reference plane) is valid.
	ErrBadHeight = errors.New("measure: spacer height must be non-negative")
)

// Vertex identifies one corner of the triangular cross-section. For a
// measurement it names the "top" vertex: the corner opposite the face the
// two gauge pins rest on.
type Vertex int

const (
	// A1 is the first vertex of the triangle.
	A1 Vertex = iota
	// A2 is the second vertex of the triangle.
	A2
	// A3 is the third vertex of the triangle.
	A3
)

// String returns the canonical vertex name used in measurement files.
func (v Vertex) String() string {
	switch v {
	case A1:
		return "A1"
	case A2:
		return "A2"
	case A3:
		return "A3"
	default:
		return "A?"
	}
}

// ParseVertex converts a measurement-file vertex name into a Vertex.
// Returns ErrUnknownVertex for anything other than "A1", "A2" or "A3".
func ParseVertex(name string) (Vertex, error) {
	switch name {
	case "A1":
		return A1, nil
	case "A2":
		return A2, nil
	case "A3":
		return A3, nil
	default:
		return 0, ErrUnknownVertex
	}
}

// ObservedMeasurement is one pin-over-spacer distance measurement. It is an
// immutable value: built once by New (or by the file parser) and never
// modified afterwards.
type ObservedMeasurement struct {
	// Top is the vertex opposite the face the two pins rest on.
	Top Vertex
	// D is the gauge pin diameter (strictly positive).
	D float64
	// H is the spacer block height (non-negative).
	H float64
	// M is the measured distance over the two pins.
	M float64
}

// New validates and builds an ObservedMeasurement. It enforces D > 0 and
// H ≥ 0; the measured value M may be any real number — validating it against
// the geometry is the fit's job, not the record's.
func New(top Vertex, d, h, m float64) (ObservedMeasurement, error) {
	if _, err := ParseVertex(top.String()); err != nil {
		return ObservedMeasurement{}, err
	}
	if d <= 0 {
		return ObservedMeasurement{}, ErrBadDiameter
	}
	if h < 0 {
		return ObservedMeasurement{}, ErrBadHeight
	}
	return ObservedMeasurement{Top: top, D: d, H: h, M: m}, nil
}
