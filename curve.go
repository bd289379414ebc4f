package sift

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// QuadBezier evaluates the quadratic Bezier curve defined by start point p0,
// control point ctrl, and end point p1 at parameter t in [0, 1].
func QuadBezier(p0, ctrl, p1 Vec2, t float64) Vec2 {
	// Bernstein form: (1-t)^2*p0 + 2(1-t)t*ctrl + t^2*p1.
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return Vec2{
		X: a*p0.X + b*ctrl.X + c*p1.X,
		Y: a*p0.Y + b*ctrl.Y + c*p1.Y,
	}
}
