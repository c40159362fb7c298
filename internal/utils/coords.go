package utils

import "math"

// ScreenToWorld converts a pointer position into world pixels. The play field
// is drawn below the UI bar, so only the vertical offset changes.
func ScreenToWorld(x, y int, topOffset float64) (float64, float64) {
	return float64(x), float64(y) - topOffset
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(x, y, topOffset float64) (float64, float64) {
	return x, y + topOffset
}

// PointInRect reports whether (px, py) lies inside the rectangle.
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// PointInCircle reports whether (px, py) lies inside the circle.
func PointInCircle(px, py, cx, cy, r float64) bool {
	return math.Hypot(px-cx, py-cy) <= r
}
