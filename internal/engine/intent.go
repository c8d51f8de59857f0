package engine

// IntentKind classifies what a decoded keystroke asks the engine to do to
// the composition buffer. InputMethod.Decode produces these; the
// orchestrator (composition.go) is what actually mutates the buffer and turns
// the result into an Edit.
type IntentKind int

const (
	IntentNone IntentKind = iota

	// IntentInsert appends a new CharRecord. Usually Mark is VowelNone (a
	// plain letter), but a shortcut key that produces an already-marked
	// letter from nothing (Telex's bare "w" -> ư) also uses this, with
	// Mark/Base set to the target letter.
	IntentInsert

	// IntentMark asks TransformMark to apply Mark to the most recent
	// record whose base is Base (e.g. the first 'a' when the second 'a' of
	// "aa" is typed, or the first 'd' of "dd"); the triggering key itself
	// adds no record.
	IntentMark

	// IntentTone asks TransformTone to place Tone on the syllable's anchor.
	IntentTone

	// IntentClearTone flattens the syllable's current tone back to none.
	IntentClearTone

	// IntentBreak signals a non-letter keystroke that ends composition of
	// the current syllable (space, punctuation, Enter, arrow keys, ...).
	// The key itself is still inserted as a literal by the orchestrator.
	IntentBreak

	// IntentBackspace asks the orchestrator to undo the most recent raw
	// keystroke via buffer replay.
	IntentBackspace

	// IntentBypass marks a key the engine does not interpret at all (a
	// control chord, a function key); the orchestrator must not touch the
	// buffer and must not consume the key.
	IntentBypass
)

// Intent is the decoded meaning of one keystroke, in the context of the
// syllable currently being composed.
type Intent struct {
	Kind IntentKind
	Base rune      // target/literal base letter for IntentInsert and IntentMark
	Mark VowelMark // for IntentInsert and IntentMark
	Tone ToneMark  // for IntentTone
	Key  rune      // lowercase physical key, recorded for double-tap revert
}
