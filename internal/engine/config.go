package engine

// Method selects which keystroke convention the active InputMethod
// strategy implements.
type Method int

const (
	MethodTelex Method = iota
	MethodVNI
)

// Flags is the configuration bag the engine owns, mutated in place through
// Engine.Flags() (at the C-ABI boundary, by the ime_* setter functions of
// spec §6). All fields default to the values that make composition "just
// work" for a typical Vietnamese typist.
type Flags struct {
	// Modern selects tone placement for the oa/oe/uy nucleus family without
	// a coda: modern puts the tone on the first vowel ("hòa"), classic on
	// the second ("hoà"). See DESIGN.md for why this reads the opposite of
	// one sentence in spec §4.3.
	Modern bool

	// FreeTone skips the phonology validator (§4.4) when placing a tone,
	// letting a tone land on any nucleus regardless of whether the resulting
	// syllable is phonotactically valid. EnglishAutoRestore still validates
	// on break. For typists who dislike repositioning.
	FreeTone bool

	// SkipWShortcut disables Telex's bare "w" -> "ư" shortcut (it still
	// works as the horn modifier after a vowel, e.g. "ow" -> "ơ").
	SkipWShortcut bool

	// BracketShortcut enables Telex "[" -> "ơ", "]" -> "ư".
	BracketShortcut bool

	// EnglishAutoRestore emits a Restore edit on break if the composed
	// buffer tail fails phonology validation — see spec §9's Open Question
	// and SPEC_FULL.md.
	EnglishAutoRestore bool

	// AutoCapitalize upper-cases the first letter typed after '.', '!',
	// '?' or Enter.
	AutoCapitalize bool

	// AllowForeignConsonants adds z, w, j, f to the set of permitted
	// initial consonants.
	AllowForeignConsonants bool
}

// DefaultFlags returns the engine's default configuration.
func DefaultFlags() Flags {
	return Flags{
		Modern:                 false, // classic: hoà
		FreeTone:               false,
		SkipWShortcut:          false,
		BracketShortcut:        false,
		EnglishAutoRestore:     false,
		AutoCapitalize:         false,
		AllowForeignConsonants: false,
	}
}
