// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 on both sides keeps +1 and -1 symmetric and avoids overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 scales a 16-bit PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// Int16LEToFloat32 converts little-endian 16-bit PCM bytes into dst and
// returns the number of samples written. A trailing odd byte is ignored.
func Int16LEToFloat32(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		v := int16(uint16(src[2*i]) | uint16(src[2*i+1])<<8)
		dst[i] = float32(v) / 32768.0
	}
	return n
}
