package instruction

import (
	"fmt"
)

// CurveType selects the pricing curve of a pool. The curve itself is
// implemented by the pool handlers; here it is only carried along.
type CurveType uint8

const (
	ConstantProduct CurveType = iota
	ConstantPrice
	Stable
	Offset

	numCurveTypes
)

// CurveParametersSize is the size of the opaque curve parameter block.
const CurveParametersSize = 32

var curveNames = [numCurveTypes]string{
	ConstantProduct: "ConstantProduct",
	ConstantPrice:   "ConstantPrice",
	Stable:          "Stable",
	Offset:          "Offset",
}

func (c CurveType) Valid() bool { return c < numCurveTypes }

func (c CurveType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("CurveType(%d)", uint8(c))
	}
	return curveNames[c]
}

// CurveTypeFromString parses the name of a curve type.
func CurveTypeFromString(s string) (CurveType, error) {
	for i, name := range curveNames {
		if name == s {
			return CurveType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown curve type %q", s)
}

// SwapCurve describes the curve of a pool: its type and raw parameters.
type SwapCurve struct {
	CurveType  CurveType
	Parameters [CurveParametersSize]byte
}
