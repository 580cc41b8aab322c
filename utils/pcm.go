// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale returns the magnitude of the most negative integer sample at
// bitDepth (128 for 8-bit, 32768 for 16-bit, ...). ok is false for depths
// other than 8, 16, 24 and 32.
func FullScale(bitDepth int) (scale float64, ok bool) {
	switch bitDepth {
	case 8:
		return 128.0, true
	case 16:
		return 32768.0, true
	case 24:
		return 8388608.0, true
	case 32:
		return 2147483648.0, true
	default:
		return 0, false
	}
}

// PCMToFloat scales an integer sample of the given full scale to [-1, 1).
func PCMToFloat(v int, scale float64) float32 {
	return float32(float64(v) / scale)
}

// FloatToPCM clamps x to [-1, 1] and scales it to an integer sample. The
// positive and negative peaks are both scale-1.
func FloatToPCM(x float32, scale float64) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int(float64(x) * (scale - 1))
}
