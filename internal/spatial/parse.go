package spatial

import (
	"fmt"
	"strconv"
)

// ParseCoord parses the three path components of a sector coordinate.
func ParseCoord(x, y, z string) (Coord, error) {
	xi, err := strconv.Atoi(x)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid x coordinate %q", x)
	}
	yi, err := strconv.Atoi(y)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid y coordinate %q", y)
	}
	zi, err := strconv.Atoi(z)
	if err != nil {
		return Coord{}, fmt.Errorf("invalid z coordinate %q", z)
	}
	return Coord{X: xi, Y: yi, Z: zi}, nil
}
