package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// CycleChannel maps uptime onto a colour channel oscillating in [1, 255]
// with the given period in milliseconds; sin selects sine over cosine.
func CycleChannel(uptimeMs int64, periodMs float64, sin bool) uint8 {
	t := float64(uptimeMs) / periodMs
	v := math.Cos(t)
	if sin {
		v = math.Sin(t)
	}
	return uint8(128 + 127*v)
}
