// Package engine implements the Vietnamese input method composition core: a
// pure function from a keystroke stream plus modifier state to an edit
// instruction (delete N characters behind the caret, insert string S).
//
// The package never performs I/O, never logs, and never blocks. Hosts
// (cmd/daemon, cmd/libgoviet) own the transport and the keyboard hook; this
// package owns the syllable-aware typing buffer, the Telex/VNI keystroke
// interpreters, the phonology validator, and the diacritic/tone transform.
package engine

// ToneMark is one of the five Vietnamese tones, or none (thanh ngang).
type ToneMark int

const (
	ToneNone  ToneMark = iota // thanh ngang, no mark
	ToneSac                   // sắc (á)
	ToneHuyen                 // huyền (à)
	ToneHoi                   // hỏi (ả)
	ToneNga                   // ngã (ã)
	ToneNang                  // nặng (ạ)
)

// VowelMark is a non-tone diacritic attached to a base vowel, or a stroke
// through 'd' forming 'đ'.
type VowelMark int

const (
	VowelNone  VowelMark = iota
	VowelHat             // circumflex: â, ê, ô
	VowelBreve           // breve: ă
	VowelHorn            // horn: ơ, ư
	VowelDBar            // stroke: đ
)

// CharRecord is one slot in the composition buffer: a logical, visible
// character of the syllable being typed, not a raw keystroke (a Telex
// double-letter like "aa" collapses onto a single record).
type CharRecord struct {
	Base  rune      // the un-marked ASCII letter, or any other scalar that falls through
	Mark  VowelMark // at most one vowel mark
	Tone  ToneMark  // at most one tone per syllable, carried here when this is the anchor
	Upper bool      // emit the uppercase form of the composed scalar
	// LastKey is the lowercase key that most recently set Mark or Tone on
	// this slot. Zero if the slot has never been transformed. Used to detect
	// an immediate double-tap of the same trigger key (revert).
	LastKey rune
}

// Compose returns the fully composed Unicode scalar for this record,
// applying its vowel mark and tone and restoring case.
func (c CharRecord) Compose() rune {
	r := c.Base
	if marks, ok := vowelMarkTable[r]; ok {
		if marked, ok := marks[c.Mark]; ok {
			r = marked
		}
	}
	if tones, ok := vowelToneTable[r]; ok {
		if toned, ok := tones[c.Tone]; ok {
			r = toned
		}
	}
	if c.Upper {
		return toUpperVN(r)
	}
	return r
}

// KeyEvent is one physical keystroke delivered by a host.
type KeyEvent struct {
	Key   uint16 // opaque virtual key code (the reference mapping is macOS's)
	Shift bool
	Caps  bool
	Ctrl  bool // also covers Alt/Cmd held with the key; Resolve bypasses such keys
	// Scalar is the Unicode scalar the OS would itself produce for this key,
	// when the host already knows it (e.g. an option-mapped key). Zero means
	// "derive it from Key via the virtual-keycode table."
	Scalar rune
}

// EditAction classifies what an Edit asks the host to do.
type EditAction int

const (
	ActionNone    EditAction = iota // no edit; NULL in the C-ABI
	ActionSend                      // normal replace: delete Backspace chars, insert Chars
	ActionRestore                   // the user asked to see the raw ASCII they typed
)

// Edit is the atomic output of the engine for one keystroke: delete N
// characters behind the caret, then insert Chars, optionally consuming the
// key so the host does not also inject it.
type Edit struct {
	Action    EditAction
	Backspace int
	Chars     []rune
	Consumed  bool
}

// noEdit is the zero-value Edit, equivalent to the C-ABI's NULL result.
var noEdit = Edit{Action: ActionNone}
