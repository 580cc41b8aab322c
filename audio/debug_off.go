// SPDX-License-Identifier: EPL-2.0

//go:build !audbufdebug

package audio

const debugChecks = false
