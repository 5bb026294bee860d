package units

import (
	"strconv"
	"strings"
)

// Quantity is a numeric scalar or array tagged with a Unit.
// The zero value is a dimensionless scalar zero.
type Quantity struct {
	values []float64
	unit   Unit
	array  bool
}

// New returns a scalar quantity.
func New(value float64, unit Unit) Quantity {
	return Quantity{values: []float64{value}, unit: unit}
}

// NewArray returns an array quantity. The slice is used as-is.
func NewArray(values []float64, unit Unit) Quantity {
	return Quantity{values: values, unit: unit, array: true}
}

// Unit returns the attached unit.
func (q Quantity) Unit() Unit {
	return q.unit
}

// IsScalar reports whether the quantity holds a single scalar value.
func (q Quantity) IsScalar() bool {
	return !q.array
}

// Value returns the scalar value, or the first element of an array.
func (q Quantity) Value() float64 {
	if len(q.values) == 0 {
		return 0
	}
	return q.values[0]
}

// Values returns the underlying values. Scalars yield a one-element slice.
func (q Quantity) Values() []float64 {
	if len(q.values) == 0 {
		return []float64{0}
	}
	return q.values
}

// Len returns the number of values.
func (q Quantity) Len() int {
	if len(q.values) == 0 {
		return 1
	}
	return len(q.values)
}

// Equal reports whether two quantities have the same values, unit symbol,
// and scalar/array shape.
func (q Quantity) Equal(other Quantity) bool {
	if q.array != other.array || q.unit != other.unit || q.Len() != other.Len() {
		return false
	}
	qv, ov := q.Values(), other.Values()
	for i := range qv {
		if qv[i] != ov[i] {
			return false
		}
	}
	return true
}

// String renders the quantity the way it would appear in a config file,
// e.g. "10 m", "1 2 3 km/s", or plain "10" for dimensionless scalars.
func (q Quantity) String() string {
	var b strings.Builder
	for i, v := range q.Values() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	if !q.unit.IsDimensionless() {
		b.WriteByte(' ')
		b.WriteString(q.unit.Symbol())
	}
	return b.String()
}
