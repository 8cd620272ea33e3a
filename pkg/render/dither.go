package render

// bayer4 is the 4x4 ordered dither matrix.
var bayer4 = [16]float64{
	0, 8, 2, 10,
	12, 4, 14, 6,
	3, 11, 1, 9,
	15, 7, 13, 5,
}

// DitherThreshold returns the per-pixel threshold in [0, 1] for pattern p.
// It is a pure function of (x, y) so repeated frames dither identically.
func DitherThreshold(x, y int, p DitherPattern) float64 {
	if p == DitherBayer {
		return (bayer4[(y&3)*4+(x&3)] + 0.5) / 16
	}
	return hash01(x, y)
}

// hash01 is a spatial integer hash of the pixel position, scaled to [0, 1].
func hash01(x, y int) float64 {
	return float64(((x*73856093)^(y*19349663))&0xFF) / 255
}
