package engine

import "unicode"

// TelexMethod implements the Telex keystroke convention: tones on s/f/r/x/j
// (z clears), circumflex by doubling a/e/o, horn/breve via a trailing w,
// and đ via doubling d.
type TelexMethod struct{}

// Decode implements InputMethod.
func (TelexMethod) Decode(r rune, upper bool, tail []CharRecord, cfg *Flags) (Intent, bool) {
	lower := unicode.ToLower(r)

	switch lower {
	case 's':
		return Intent{Kind: IntentTone, Tone: ToneSac, Key: 's'}, true
	case 'f':
		return Intent{Kind: IntentTone, Tone: ToneHuyen, Key: 'f'}, true
	case 'r':
		return Intent{Kind: IntentTone, Tone: ToneHoi, Key: 'r'}, true
	case 'x':
		return Intent{Kind: IntentTone, Tone: ToneNga, Key: 'x'}, true
	case 'j':
		return Intent{Kind: IntentTone, Tone: ToneNang, Key: 'j'}, true
	case 'z':
		return Intent{Kind: IntentClearTone, Key: 'z'}, true

	case 'a', 'e', 'o':
		return Intent{Kind: IntentMark, Mark: VowelHat, Base: lower, Key: lower}, true

	case 'd':
		return Intent{Kind: IntentMark, Mark: VowelDBar, Base: 'd', Key: 'd'}, true

	case 'w':
		intent := decodeTelexW(tail, cfg)
		return intent, intent.Kind != IntentNone

	case '[':
		if !cfg.BracketShortcut {
			return Intent{}, false
		}
		return Intent{Kind: IntentInsert, Base: 'o', Mark: VowelHorn, Key: '['}, true
	case ']':
		if !cfg.BracketShortcut {
			return Intent{}, false
		}
		return Intent{Kind: IntentInsert, Base: 'u', Mark: VowelHorn, Key: ']'}, true
	}

	return Intent{}, false
}

// decodeTelexW implements "w": horn on a trailing o/u, breve on a trailing
// a, or — with nothing eligible behind it — the bare "w" shortcut for ư.
// With SkipWShortcut set it returns the zero Intent instead, which Decode
// reports as ok=false so "w" is inserted as a literal letter.
func decodeTelexW(tail []CharRecord, cfg *Flags) Intent {
	if len(tail) > 0 {
		last := unicode.ToLower(tail[len(tail)-1].Base)
		switch last {
		case 'a':
			return Intent{Kind: IntentMark, Mark: VowelBreve, Base: 'a', Key: 'w'}
		case 'o':
			return Intent{Kind: IntentMark, Mark: VowelHorn, Base: 'o', Key: 'w'}
		case 'u':
			return Intent{Kind: IntentMark, Mark: VowelHorn, Base: 'u', Key: 'w'}
		}
	}
	if cfg.SkipWShortcut {
		return Intent{}
	}
	return Intent{Kind: IntentInsert, Base: 'u', Mark: VowelHorn, Key: 'w'}
}
