package engine

import "unicode"

// VNIMethod implements the VNI keystroke convention: tones on digits 1-5
// (0 clears), and vowel marks on digits 6-9 targeting whichever eligible
// base letter was typed most recently.
type VNIMethod struct{}

// Decode implements InputMethod.
func (VNIMethod) Decode(r rune, upper bool, tail []CharRecord, cfg *Flags) (Intent, bool) {
	switch r {
	case '1':
		return Intent{Kind: IntentTone, Tone: ToneSac, Key: '1'}, true
	case '2':
		return Intent{Kind: IntentTone, Tone: ToneHuyen, Key: '2'}, true
	case '3':
		return Intent{Kind: IntentTone, Tone: ToneHoi, Key: '3'}, true
	case '4':
		return Intent{Kind: IntentTone, Tone: ToneNga, Key: '4'}, true
	case '5':
		return Intent{Kind: IntentTone, Tone: ToneNang, Key: '5'}, true
	case '0':
		return Intent{Kind: IntentClearTone, Key: '0'}, true

	case '6':
		return decodeVNIMark(tail, VowelHat, "aeo", '6')
	case '7':
		return decodeVNIMark(tail, VowelHorn, "ou", '7')
	case '8':
		return decodeVNIMark(tail, VowelBreve, "a", '8')
	case '9':
		return decodeVNIMark(tail, VowelDBar, "d", '9')
	}

	return Intent{}, false
}

// decodeVNIMark targets the most recent tail record whose base is one of
// candidates, searching backward from the tail's end rather than requiring
// the candidate to be the literal last keystroke: VNI typists commonly
// finish the whole syllable, including its coda, before pressing the mark
// digit ("tieng" then "6" then "2" for "tiềng", spec §8 scenario 5), so the
// vowel the digit targets is rarely still the tail's last record. ok is
// false (fall through to a literal digit) when nothing eligible has been
// typed yet.
func decodeVNIMark(tail []CharRecord, mark VowelMark, candidates string, key rune) (Intent, bool) {
	for i := len(tail) - 1; i >= 0; i-- {
		base := unicode.ToLower(tail[i].Base)
		for _, c := range candidates {
			if base == c {
				return Intent{Kind: IntentMark, Mark: mark, Base: base, Key: key}, true
			}
		}
	}
	return Intent{}, false
}
