// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrInvalidShape     = errors.New("frame and channel counts must not be negative")
	ErrBufferTooLarge   = errors.New("frame and channel counts overflow the sample count")
	ErrShortStorage     = errors.New("wrapped storage is smaller than the requested shape")
	ErrShapeMismatch    = errors.New("buffer shapes do not match")
	ErrRangeOutOfBounds = errors.New("frame range out of bounds")
	ErrPartialFrame     = errors.New("sample count is not a multiple of the channel count")
	ErrUnsupportedDepth = errors.New("unsupported bit depth")
)
