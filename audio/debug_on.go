// SPDX-License-Identifier: EPL-2.0

//go:build audbufdebug

package audio

// Built with -tags audbufdebug: every indexed access is checked against the
// buffer shape, including frame indices that would otherwise land in the
// next channel's block.
const debugChecks = true
