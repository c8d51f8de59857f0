package engine

import "unicode"

// vowelToneTable maps a (possibly marked) base vowel to its composed form
// under each of the five tones. Keyed by lowercase and uppercase letter.
var vowelToneTable = map[rune]map[ToneMark]rune{
	'a': {ToneNone: 'a', ToneSac: 'á', ToneHuyen: 'à', ToneHoi: 'ả', ToneNga: 'ã', ToneNang: 'ạ'},
	'A': {ToneNone: 'A', ToneSac: 'Á', ToneHuyen: 'À', ToneHoi: 'Ả', ToneNga: 'Ã', ToneNang: 'Ạ'},
	'ă': {ToneNone: 'ă', ToneSac: 'ắ', ToneHuyen: 'ằ', ToneHoi: 'ẳ', ToneNga: 'ẵ', ToneNang: 'ặ'},
	'Ă': {ToneNone: 'Ă', ToneSac: 'Ắ', ToneHuyen: 'Ằ', ToneHoi: 'Ẳ', ToneNga: 'Ẵ', ToneNang: 'Ặ'},
	'â': {ToneNone: 'â', ToneSac: 'ấ', ToneHuyen: 'ầ', ToneHoi: 'ẩ', ToneNga: 'ẫ', ToneNang: 'ậ'},
	'Â': {ToneNone: 'Â', ToneSac: 'Ấ', ToneHuyen: 'Ầ', ToneHoi: 'Ẩ', ToneNga: 'Ẫ', ToneNang: 'Ậ'},
	'e': {ToneNone: 'e', ToneSac: 'é', ToneHuyen: 'è', ToneHoi: 'ẻ', ToneNga: 'ẽ', ToneNang: 'ẹ'},
	'E': {ToneNone: 'E', ToneSac: 'É', ToneHuyen: 'È', ToneHoi: 'Ẻ', ToneNga: 'Ẽ', ToneNang: 'Ẹ'},
	'ê': {ToneNone: 'ê', ToneSac: 'ế', ToneHuyen: 'ề', ToneHoi: 'ể', ToneNga: 'ễ', ToneNang: 'ệ'},
	'Ê': {ToneNone: 'Ê', ToneSac: 'Ế', ToneHuyen: 'Ề', ToneHoi: 'Ể', ToneNga: 'Ễ', ToneNang: 'Ệ'},
	'i': {ToneNone: 'i', ToneSac: 'í', ToneHuyen: 'ì', ToneHoi: 'ỉ', ToneNga: 'ĩ', ToneNang: 'ị'},
	'I': {ToneNone: 'I', ToneSac: 'Í', ToneHuyen: 'Ì', ToneHoi: 'Ỉ', ToneNga: 'Ĩ', ToneNang: 'Ị'},
	'o': {ToneNone: 'o', ToneSac: 'ó', ToneHuyen: 'ò', ToneHoi: 'ỏ', ToneNga: 'õ', ToneNang: 'ọ'},
	'O': {ToneNone: 'O', ToneSac: 'Ó', ToneHuyen: 'Ò', ToneHoi: 'Ỏ', ToneNga: 'Õ', ToneNang: 'Ọ'},
	'ô': {ToneNone: 'ô', ToneSac: 'ố', ToneHuyen: 'ồ', ToneHoi: 'ổ', ToneNga: 'ỗ', ToneNang: 'ộ'},
	'Ô': {ToneNone: 'Ô', ToneSac: 'Ố', ToneHuyen: 'Ồ', ToneHoi: 'Ổ', ToneNga: 'Ỗ', ToneNang: 'Ộ'},
	'ơ': {ToneNone: 'ơ', ToneSac: 'ớ', ToneHuyen: 'ờ', ToneHoi: 'ở', ToneNga: 'ỡ', ToneNang: 'ợ'},
	'Ơ': {ToneNone: 'Ơ', ToneSac: 'Ớ', ToneHuyen: 'Ờ', ToneHoi: 'Ở', ToneNga: 'Ỡ', ToneNang: 'Ợ'},
	'u': {ToneNone: 'u', ToneSac: 'ú', ToneHuyen: 'ù', ToneHoi: 'ủ', ToneNga: 'ũ', ToneNang: 'ụ'},
	'U': {ToneNone: 'U', ToneSac: 'Ú', ToneHuyen: 'Ù', ToneHoi: 'Ủ', ToneNga: 'Ũ', ToneNang: 'Ụ'},
	'ư': {ToneNone: 'ư', ToneSac: 'ứ', ToneHuyen: 'ừ', ToneHoi: 'ử', ToneNga: 'ữ', ToneNang: 'ự'},
	'Ư': {ToneNone: 'Ư', ToneSac: 'Ứ', ToneHuyen: 'Ừ', ToneHoi: 'Ử', ToneNga: 'Ữ', ToneNang: 'Ự'},
	'y': {ToneNone: 'y', ToneSac: 'ý', ToneHuyen: 'ỳ', ToneHoi: 'ỷ', ToneNga: 'ỹ', ToneNang: 'ỵ'},
	'Y': {ToneNone: 'Y', ToneSac: 'Ý', ToneHuyen: 'Ỳ', ToneHoi: 'Ỷ', ToneNga: 'Ỹ', ToneNang: 'Ỵ'},
}

// vowelMarkTable maps a base letter to the letter produced by applying a
// non-tone vowel mark (or the d-bar stroke). Absent entries mean the mark
// does not apply to that base.
var vowelMarkTable = map[rune]map[VowelMark]rune{
	'a': {VowelBreve: 'ă', VowelHat: 'â'},
	'A': {VowelBreve: 'Ă', VowelHat: 'Â'},
	'e': {VowelHat: 'ê'},
	'E': {VowelHat: 'Ê'},
	'o': {VowelHat: 'ô', VowelHorn: 'ơ'},
	'O': {VowelHat: 'Ô', VowelHorn: 'Ơ'},
	'u': {VowelHorn: 'ư'},
	'U': {VowelHorn: 'Ư'},
	'd': {VowelDBar: 'đ'},
	'D': {VowelDBar: 'Đ'},
}

// initialClusters are the permitted Vietnamese onset consonant clusters.
var initialClusters = map[string]bool{
	"ngh": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"nh": true, "ph": true, "qu": true, "th": true, "tr": true,
	"b": true, "c": true, "d": true, "đ": true, "g": true, "h": true,
	"k": true, "l": true, "m": true, "n": true, "p": true, "q": true,
	"r": true, "s": true, "t": true, "v": true, "x": true,
}

// foreignInitials are extra onsets accepted only when
// Flags.AllowForeignConsonants is set.
var foreignInitials = map[string]bool{
	"z": true, "w": true, "j": true, "f": true,
}

// finalClusters are the permitted Vietnamese coda consonant clusters.
var finalClusters = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true,
	"ng": true, "nh": true, "p": true, "t": true,
}

// ApplyTone composes a base (possibly vowel-marked) letter with a tone.
func ApplyTone(base rune, tone ToneMark) rune {
	if tones, ok := vowelToneTable[base]; ok {
		if r, ok := tones[tone]; ok {
			return r
		}
	}
	return base
}

// ApplyVowelMark composes a base letter with a non-tone vowel mark.
func ApplyVowelMark(base rune, mark VowelMark) rune {
	if marks, ok := vowelMarkTable[base]; ok {
		if r, ok := marks[mark]; ok {
			return r
		}
	}
	return base
}

// decomposition is the reverse of (base, mark/tone) -> composed scalar,
// built once from vowelToneTable/vowelMarkTable so ime_restore_word (§6) can
// seed a CharRecord buffer from a word already on screen without a second,
// hand-maintained table that could drift from the composing one.
type decomposition struct {
	base  rune
	mark  VowelMark
	tone  ToneMark
	upper bool
}

var composedToRecord = buildDecompositionTable()

func buildDecompositionTable() map[rune]decomposition {
	out := make(map[rune]decomposition)

	// First pass: every (plainBase, mark) -> markedBase pair from
	// vowelMarkTable, e.g. 'a'+VowelHat -> 'â'. Indexed by the marked form
	// so the second pass can resolve a tone table base like 'â' back to
	// its plain root and the mark that produced it.
	type rootOf struct {
		plain rune
		mark  VowelMark
	}
	rootOfMarked := make(map[rune]rootOf)
	for plainBase, marks := range vowelMarkTable {
		for mark, markedBase := range marks {
			rootOfMarked[markedBase] = rootOf{plain: unicode.ToLower(plainBase), mark: mark}
			out[markedBase] = decomposition{base: unicode.ToLower(plainBase), mark: mark, upper: unicode.IsUpper(plainBase)}
		}
	}

	// Second pass: every (toneBase, tone) -> composed pair from
	// vowelToneTable. toneBase is sometimes already a marked letter ('â',
	// 'ơ', ...), so resolve it through rootOfMarked first.
	for toneBase, tones := range vowelToneTable {
		plainBase, mark := unicode.ToLower(toneBase), VowelNone
		if root, ok := rootOfMarked[toneBase]; ok {
			plainBase, mark = root.plain, root.mark
		}
		for tone, composed := range tones {
			out[composed] = decomposition{base: plainBase, mark: mark, tone: tone, upper: unicode.IsUpper(toneBase)}
		}
	}
	return out
}

// decomposeRune reverses CharRecord.Compose for a single scalar: it reports
// the ASCII base letter, vowel mark and tone that produced r. When r is not
// a letter this engine's tables know how to compose, it is returned as a
// literal base letter with no mark/tone (e.g. punctuation or a consonant).
func decomposeRune(r rune) (rec CharRecord) {
	if d, ok := composedToRecord[r]; ok {
		return CharRecord{Base: d.base, Mark: d.mark, Tone: d.tone, Upper: d.upper}
	}
	if unicode.ToLower(r) == 'đ' {
		return CharRecord{Base: 'd', Mark: VowelDBar, Upper: unicode.IsUpper(r)}
	}
	return CharRecord{Base: unicode.ToLower(r), Upper: unicode.IsUpper(r)}
}

// toUpperVN upper-cases a rune, including Vietnamese letters outside ASCII.
// The standard unicode package's case tables already cover Latin Extended-A/B
// (ă, â, ê, ô, ơ, ư, đ), so no bespoke case-pair table is needed here.
func toUpperVN(r rune) rune {
	return unicode.ToUpper(r)
}

func toLowerVN(r rune) rune {
	return unicode.ToLower(r)
}

// isVowelBase reports whether r (case-insensitive) is one of the six
// Vietnamese vowel bases tracked as CharRecord.Base.
func isVowelBase(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// isConsonantBase reports whether r (case-insensitive) is a Vietnamese
// consonant letter, including đ.
func isConsonantBase(r rune) bool {
	switch unicode.ToLower(r) {
	case 'b', 'c', 'd', 'đ', 'g', 'h', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'x':
		return true
	}
	return false
}
