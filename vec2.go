package glyphweave

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// VecFromDegrees returns a unit vector of the given angle, which is
// expressed in degrees. At 0° it is the positive x unit vector, at 90° the
// positive y unit vector, which is a clockwise rotation in y-down space.
func VecFromDegrees(deg float64) Vec2 {
	y, x := math.Sincos(degToRad(deg))
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }
func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
