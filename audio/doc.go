// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample buffer passed between audio stages,
// plus the stream primitives used to fill and drain it.
//
// # Buffer
//
// Buffer owns a block of float32 samples addressed as [frame][channel]:
//
//	buf, err := audio.NewSized(4096, 2)
//	buf.ForEachFrame(func(f audio.Frame, i int) {
//	    f.Set(0, float32(i))
//	    f.Set(1, float32(i))
//	})
//	v := buf.At(16, 0) // 16
//
// Storage is channel-major: every channel's frames are contiguous, so
// Channel(c) returns a plain []float32 for per-channel DSP while Frame(i)
// gives a strided view across channels for per-frame consumers.
//
// A Buffer has two states. It is empty (no storage, zero frames and
// channels) or allocated. Allocate always discards and replaces; an
// allocation with zero frames or zero channels leaves it empty. Free and
// being the source of Move return it to empty.
//
// # Ownership
//
// Allocate, NewSized, Clone and CopyFrom give the buffer its own storage.
// Wrap views caller memory without taking ownership; Free only drops the
// view. Clone and CopyFrom deep-copy, Move and MoveFrom transfer storage
// and leave the source empty and reusable.
//
// # Bulk operations
//
// Clear, ClearRange, Set (copy with gain), Mix (add with gain), Scale and
// ForEachFrame never allocate. Set and Mix require both buffers to have
// the same shape and return ErrShapeMismatch otherwise; they never copy a
// partial overlap.
//
// # Sources
//
// Source is a pull stream of interleaved float32 samples. Decoders in the
// formats packages produce Sources; ReadAll and (*Buffer).Fill turn them
// into buffers and BufferSource turns a buffer back into a Source. The
// Registry maps format keys to decoders.
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]; 0.0 is silence. Integer
// PCM only exists at the edges, see FromIntBuffer and (*Buffer).IntBuffer.
//
// # Errors
//
// Invalid shapes, mismatched shapes and out-of-range frame ranges are
// reported with the sentinel errors in this package, wrapped with context:
//
//	if err := dst.Mix(src, 0.5); errors.Is(err, audio.ErrShapeMismatch) {
//	    // the buffers disagree on frames or channels
//	}
//
// Indexing outside the buffer is a programming error and panics. Building
// with -tags audbufdebug adds explicit checks that also catch frame
// indices which would otherwise land inside a neighbouring channel.
//
// # Concurrency
//
// Buffer has no locking; one goroutine owns it at a time. BufferPool and
// Registry are safe for concurrent use.
package audio
