// Package spatial holds the value types for galaxy geometry: integer sector
// coordinates and floating local/galaxy positions.
package spatial

import "fmt"

// Coord is a 3D integer sector coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// Vec3 is a 3D floating position, used for system positions local to a sector
// and for absolute galaxy positions.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns the componentwise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Vec3 converts a sector coordinate to a position so that galaxy positions
// can be formed as sectorCoord + localPos componentwise.
func (c Coord) Vec3() Vec3 {
	return Vec3{X: float64(c.X), Y: float64(c.Y), Z: float64(c.Z)}
}
