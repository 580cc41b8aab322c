// SPDX-License-Identifier: EPL-2.0

package audbuf

import "errors"

var (
	// ErrUnknownFormat indicates no decoder is registered for a file's
	// extension
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrNoInputs indicates MixDown was called without buffers
	ErrNoInputs = errors.New("no input buffers")

	// ErrTooManyGains indicates more gains than inputs were given
	ErrTooManyGains = errors.New("more gains than inputs")
)
