package neartest

// Kind identifies the shape held by a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindScalar
	KindSequence
	KindNested
	KindGrid
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindNested:
		return "nested"
	case KindGrid:
		return "grid"
	default:
		return "invalid"
	}
}

// Value is a numeric value of one of the shapes a Checker understands.
// The zero Value has KindInvalid.
type Value[T Number] struct {
	kind   Kind
	scalar T
	seq    []T
	nested [][]T
	grid   Grid[T]
}

// Scalar wraps a single number.
func Scalar[T Number](v T) Value[T] {
	return Value[T]{kind: KindScalar, scalar: v}
}

// Sequence wraps a flat sequence.
func Sequence[T Number](v []T) Value[T] {
	return Value[T]{kind: KindSequence, seq: v}
}

// Nested wraps a jagged 2-D sequence.
func Nested[T Number](v [][]T) Value[T] {
	return Value[T]{kind: KindNested, nested: v}
}

// GridValue wraps a fixed-size grid.
func GridValue[T Number](g Grid[T]) Value[T] {
	return Value[T]{kind: KindGrid, grid: g}
}

// Kind returns the shape of v.
func (v Value[T]) Kind() Kind { return v.kind }

// AsScalar returns the wrapped number. It is meaningful only for KindScalar.
func (v Value[T]) AsScalar() T { return v.scalar }

// AsSequence returns the wrapped sequence, or nil for other kinds.
func (v Value[T]) AsSequence() []T { return v.seq }

// AsNested returns the wrapped nested sequence, or nil for other kinds.
func (v Value[T]) AsNested() [][]T { return v.nested }

// AsGrid returns the wrapped grid. It is meaningful only for KindGrid.
func (v Value[T]) AsGrid() Grid[T] { return v.grid }
