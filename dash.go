package printplot

import (
	"strconv"

	"gonum.org/v1/plot/vg"
)

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	SolidLine LineType = iota
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
)

func ParseLineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(LongdashLine) + 1))
	}
	switch s {
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	default:
		return SolidLine
	}
}

// DashPattern returns the dash array for lt scaled to fontSize, in
// units of fontSize/12 so small fonts get finer dashing. Solid lines
// have no dash array.
func DashPattern(lt LineType, fontSize vg.Length) []vg.Length {
	u := fontSize / 12
	switch lt {
	case DashedLine:
		return []vg.Length{4 * u, 4 * u}
	case DottedLine:
		return []vg.Length{1 * u, 3 * u}
	case DotDashLine:
		return []vg.Length{1 * u, 3 * u, 4 * u, 3 * u}
	case LongdashLine:
		return []vg.Length{7 * u, 3 * u}
	}
	return nil
}
