package engine

// bufferCapacity bounds the composition buffer. The spec only requires
// "at least 64"; the reference implementation this is grounded on uses 256,
// so this engine matches it.
const bufferCapacity = 256

// Buffer is the bounded, append-mostly sequence of CharRecord slots that
// make up the in-progress syllable(s) since the host last cleared
// composition. It rarely allocates on the hot path: the backing array starts
// with room for 32 records and Append only grows it when a run without a
// break goes past that, and copies it once the run reaches bufferCapacity.
type Buffer struct {
	records []CharRecord
	// breakAt is the index of the first record of the syllable currently
	// being composed; everything before it belongs to already-committed
	// text the host has accepted and the engine no longer reasons about.
	breakAt int
}

// NewBuffer returns an empty composition buffer.
func NewBuffer() *Buffer {
	return &Buffer{records: make([]CharRecord, 0, 32)}
}

// Len returns the number of records currently held (since buffer start, not
// since the last break).
func (b *Buffer) Len() int { return len(b.records) }

// Append pushes rec at the tail. On overflow it truncates to the most
// recent break point so a syllable in progress is never split; if there is
// no break point within the bound (one continuous unbroken run), the
// oldest slot is evicted instead, since there is nothing safer to do.
func (b *Buffer) Append(rec CharRecord) {
	if len(b.records) >= bufferCapacity {
		if b.breakAt > 0 {
			b.records = append(b.records[:0:0], b.records[b.breakAt:]...)
			b.breakAt = 0
		} else {
			b.records = append(b.records[:0:0], b.records[1:]...)
		}
	}
	b.records = append(b.records, rec)
}

// PopLast removes the tail record, if any. A pop on an empty buffer is a
// no-op, per spec.
func (b *Buffer) PopLast() (CharRecord, bool) {
	if len(b.records) == 0 {
		return CharRecord{}, false
	}
	last := b.records[len(b.records)-1]
	b.records = b.records[:len(b.records)-1]
	if b.breakAt > len(b.records) {
		b.breakAt = len(b.records)
	}
	return last, true
}

// Clear drops all records. Hosts call this on focus change or a mouse
// click that moves the caret out from under composition.
func (b *Buffer) Clear() {
	b.records = b.records[:0]
	b.breakAt = 0
}

// Break commits the syllable composed so far: subsequent TailSinceBreak
// calls only see records appended after this point. It never deletes
// anything.
func (b *Buffer) Break() {
	b.breakAt = len(b.records)
}

// TailSinceBreak returns the records of the syllable currently being
// composed. The returned slice aliases the buffer's storage so callers may
// mutate marks/tones in place; it must not be retained past the next
// Append/PopLast/Clear/ReplaceTail.
func (b *Buffer) TailSinceBreak() []CharRecord {
	return b.records[b.breakAt:]
}

// ReplaceTail atomically pops n records from the tail and pushes recs.
func (b *Buffer) ReplaceTail(n int, recs []CharRecord) {
	for i := 0; i < n; i++ {
		b.PopLast()
	}
	for _, r := range recs {
		b.Append(r)
	}
}

// ComposedTail returns the composed scalars of the syllable currently being
// composed, in order.
func (b *Buffer) ComposedTail() []rune {
	tail := b.TailSinceBreak()
	out := make([]rune, len(tail))
	for i, r := range tail {
		out[i] = r.Compose()
	}
	return out
}
