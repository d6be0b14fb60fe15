package viz

import (
	"fmt"

	"github.com/san-kum/fieldview/internal/field"
)

// Orientation maps a stored velocity cell to display directions.
//
// The dumps store velocity in array-index order (i along rows, j along
// columns). Cartesian treats row 0 as the top of the picture, so the
// displayed components are u = v[1] and v = -v[0]. IJ shows the stored pair
// unchanged as (u, v).
type Orientation int

const (
	Cartesian Orientation = iota
	IJ
)

func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "cartesian":
		return Cartesian, nil
	case "ij":
		return IJ, nil
	default:
		return 0, fmt.Errorf("viz: unknown orientation %q", s)
	}
}

func (o Orientation) String() string {
	if o == IJ {
		return "ij"
	}
	return "cartesian"
}

// UV returns the displayed components with v pointing up.
func (o Orientation) UV(cell field.Vec2) (u, v float64) {
	if o == IJ {
		return cell[0], cell[1]
	}
	return cell[1], -cell[0]
}

// Screen returns the displayed components in screen space, where y grows
// downward.
func (o Orientation) Screen(cell field.Vec2) (dx, dy float64) {
	u, v := o.UV(cell)
	return u, -v
}
