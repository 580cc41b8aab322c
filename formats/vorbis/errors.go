// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNoChannels indicates a stream header that declares zero channels.
var ErrNoChannels = errors.New("vorbis stream has no channels")
