package engine

import "unicode"

// Engine is the stateful composition orchestrator: it owns the active
// InputMethod, the typing buffer, configured shortcuts and flags, and turns
// one raw keystroke into an Edit. It performs no I/O and holds no
// host-specific state; cmd/daemon and cmd/libgoviet are the hosts that
// drive it and own the transport.
type Engine struct {
	method    InputMethod
	buf       *Buffer
	shortcuts *ShortcutTable
	flags     Flags
	enabled   bool

	// rawKeys is the literal keystroke history of the syllable currently
	// being composed, kept alongside buf so a backspace can rebuild
	// composition from scratch (CharRecord transforms are applied in
	// place, so "undo the last transform" is not simply popping a slot)
	// and so RestoreWord can hand the host back exactly what was typed.
	rawKeys []rune

	capitalizeNext bool
}

// NewEngine returns an engine defaulting to Telex with every flag at its
// zero value.
func NewEngine() *Engine {
	return &Engine{
		method:    TelexMethod{},
		buf:       NewBuffer(),
		shortcuts: NewShortcutTable(),
		flags:     DefaultFlags(),
		enabled:   true,
	}
}

// SetMethod switches the active keystroke convention. An unknown Method
// leaves the active one unchanged.
func (e *Engine) SetMethod(m Method) {
	switch m {
	case MethodVNI:
		e.method = VNIMethod{}
	case MethodTelex:
		e.method = TelexMethod{}
	}
}

// SetEnabled turns composition on or off; disabling clears any in-progress
// syllable.
func (e *Engine) SetEnabled(v bool) {
	e.enabled = v
	if !v {
		e.Clear()
	}
}

// Enabled reports whether the engine is currently composing keystrokes.
func (e *Engine) Enabled() bool { return e.enabled }

// Flags returns the engine's configuration for in-place mutation by the
// ime_* setters at the C-ABI boundary.
func (e *Engine) Flags() *Flags { return &e.flags }

// Shortcuts returns the engine's shortcut table.
func (e *Engine) Shortcuts() *ShortcutTable { return e.shortcuts }

// Clear drops the syllable currently in progress. Flags, method, and
// shortcuts are untouched. Hosts call this on focus change or a caret move
// that happens out from under composition.
func (e *Engine) Clear() {
	e.resetBuffer()
	e.capitalizeNext = false
}

// resetBuffer drops the syllable in progress without touching
// capitalizeNext, which must survive the break keys (space, a run of
// punctuation) between a sentence-ending '.'/'!'/'?' and the next letter.
func (e *Engine) resetBuffer() {
	e.buf.Clear()
	e.rawKeys = e.rawKeys[:0]
}

// GetBuffer returns the composed scalars of the syllable currently in
// progress.
func (e *Engine) GetBuffer() []rune {
	return e.buf.ComposedTail()
}

// RestoreWord returns the Edit that replaces the syllable in progress with
// the literal keys that produced it, then clears composition.
func (e *Engine) RestoreWord() Edit {
	if len(e.rawKeys) == 0 {
		return noEdit
	}
	composed := e.buf.ComposedTail()
	raw := append([]rune(nil), e.rawKeys...)
	e.Clear()
	return Edit{Action: ActionRestore, Backspace: len(composed), Chars: raw, Consumed: true}
}

// SeedWord loads a Vietnamese word already visible on screen into the
// composition buffer, decomposing each composed scalar back into a
// CharRecord via the vowel/tone tables. This is §6's ime_restore_word: it
// lets a host that detects a caret landing inside an already-composed word
// (e.g. the user pressed the left arrow then backspace) hand the engine
// enough state to keep editing that word as ordinary composition, rather
// than only ever being able to append after it.
//
// rawKeys is seeded with the word's plain base letters; it is a best-effort
// reconstruction (the original keystrokes that produced the word, including
// which transform keys fired, are not recoverable from the rendered text
// alone) good enough to drive the replay-based backspace in handleBackspace.
func (e *Engine) SeedWord(word string) {
	e.Clear()
	for _, r := range word {
		rec := decomposeRune(r)
		e.buf.Append(rec)
		e.rawKeys = append(e.rawKeys, rec.Base)
	}
}

// ProcessKey is the engine's entry point for hosts that speak in raw
// KeyEvents (cmd/libgoviet's macOS virtual keycodes): it resolves the event
// to a scalar and key class, then delegates to ProcessResolved.
func (e *Engine) ProcessKey(ev KeyEvent) Edit {
	r, kind := Resolve(ev)
	return e.ProcessResolved(r, kind)
}

// ProcessResolved is the engine's entry point for hosts that classify
// keystrokes themselves against their own platform's key codes (cmd/daemon,
// which speaks X11 keysyms over D-Bus rather than macOS virtual keycodes).
func (e *Engine) ProcessResolved(r rune, kind KeyKind) Edit {
	if !e.enabled {
		return noEdit
	}

	switch kind {
	case KeyBackspace:
		return e.handleBackspace()
	case KeyNavigation:
		e.Clear()
		return noEdit
	case KeyBypass:
		return noEdit
	case KeyRestore:
		return e.RestoreWord()
	case KeyBreak:
		return e.handleBreak(r)
	default:
		return e.handleOrdinary(r)
	}
}

func (e *Engine) handleOrdinary(r rune) Edit {
	before := e.buf.ComposedTail()
	tail := e.buf.TailSinceBreak()
	upper := unicode.IsUpper(r) || e.capitalizeNext

	intent, ok := e.method.Decode(r, upper, tail, &e.flags)
	if !ok {
		intent = Intent{Kind: IntentInsert, Base: r}
	}
	e.applyIntent(intent, r, upper)
	e.rawKeys = append(e.rawKeys, r)
	e.capitalizeNext = false

	after := e.buf.ComposedTail()
	return diffEdit(before, after, true)
}

// applyIntent mutates the buffer according to intent. When a transform
// cannot be applied (e.g. a tone key typed against an invalid syllable),
// it falls back to inserting the raw key literally, which is how a typist
// "escapes" composition without the engine swallowing a keystroke.
func (e *Engine) applyIntent(intent Intent, r rune, upper bool) {
	switch intent.Kind {
	case IntentInsert:
		base := intent.Base
		if base == 0 {
			base = r
		}
		rec := CharRecord{Base: base, Mark: intent.Mark, Upper: upper}
		if intent.Mark != VowelNone {
			rec.LastKey = intent.Key
		}
		e.buf.Append(rec)

	case IntentMark:
		if applied, _ := TransformMark(e.buf, intent.Mark, intent.Base, intent.Key); !applied {
			e.buf.Append(CharRecord{Base: r, Upper: upper})
		}

	case IntentTone:
		if applied, _ := TransformTone(e.buf, intent.Tone, intent.Key, &e.flags); !applied {
			e.buf.Append(CharRecord{Base: r, Upper: upper})
		}

	case IntentClearTone:
		if !ClearTone(e.buf) {
			e.buf.Append(CharRecord{Base: r, Upper: upper})
		}
	}
}

// handleBackspace implements a replay strategy over the CharRecord buffer:
// drop the most recent raw keystroke and recompose from an empty buffer,
// since a transform cannot simply be popped off the record it was applied
// to. The resulting edit already deletes what the backspace removes, so it
// consumes the key.
func (e *Engine) handleBackspace() Edit {
	if len(e.rawKeys) == 0 {
		return noEdit
	}
	before := e.buf.ComposedTail()
	newRaw := append([]rune(nil), e.rawKeys[:len(e.rawKeys)-1]...)

	e.buf.Clear()
	e.rawKeys = e.rawKeys[:0]
	for _, r := range newRaw {
		e.replayKey(r)
	}

	after := e.buf.ComposedTail()
	return diffEdit(before, after, true)
}

func (e *Engine) replayKey(r rune) {
	tail := e.buf.TailSinceBreak()
	upper := unicode.IsUpper(r)
	intent, ok := e.method.Decode(r, upper, tail, &e.flags)
	if !ok {
		intent = Intent{Kind: IntentInsert, Base: r}
	}
	e.applyIntent(intent, r, upper)
	e.rawKeys = append(e.rawKeys, r)
}

// handleBreak commits the syllable in progress: it checks for a shortcut
// expansion and an English-auto-restore override before falling through to
// the ordinary case of just appending the break character.
func (e *Engine) handleBreak(r rune) Edit {
	before := e.buf.ComposedTail()

	if _, repl, ok := e.shortcuts.Match(asciiTail(e.rawKeys)); ok {
		chars := []rune(repl)
		arm := isSentenceEnder(r) || (len(chars) > 0 && isSentenceEnder(chars[len(chars)-1]))
		e.finishBreak(arm)
		return Edit{Action: ActionSend, Backspace: len(before), Chars: chars, Consumed: false}
	}

	if e.flags.EnglishAutoRestore && len(before) > 0 {
		tail := e.buf.TailSinceBreak()
		view, ok := ParseSyllable(tail, e.flags.Modern)
		if !ok || !Validate(tail, view, &e.flags) {
			raw := append(append([]rune(nil), e.rawKeys...), r)
			arm := isSentenceEnder(r) || (len(before) > 0 && isSentenceEnder(before[len(before)-1]))
			e.finishBreak(arm)
			return Edit{Action: ActionRestore, Backspace: len(before), Chars: raw, Consumed: true}
		}
	}

	arm := isSentenceEnder(r) || (len(before) > 0 && isSentenceEnder(before[len(before)-1]))
	e.finishBreak(arm)
	if len(before) == 0 {
		return noEdit
	}
	return Edit{Action: ActionSend, Backspace: 0, Chars: []rune{r}, Consumed: true}
}

// isSentenceEnder reports whether r is punctuation or Enter that, per
// AutoCapitalize, arms capitalization of the next letter.
func isSentenceEnder(r rune) bool {
	switch r {
	case '.', '!', '?', '\n':
		return true
	}
	return false
}

func (e *Engine) finishBreak(armCapitalize bool) {
	e.buf.Break()
	e.resetBuffer()
	if e.flags.AutoCapitalize && armCapitalize {
		e.capitalizeNext = true
	}
}

// diffEdit computes the minimal Edit that turns before into after, by
// common-prefix length.
func diffEdit(before, after []rune, consumed bool) Edit {
	prefix := 0
	for prefix < len(before) && prefix < len(after) && before[prefix] == after[prefix] {
		prefix++
	}
	back := len(before) - prefix
	if back == 0 && prefix == len(after) {
		return noEdit
	}
	return Edit{
		Action:    ActionSend,
		Backspace: back,
		Chars:     append([]rune(nil), after[prefix:]...),
		Consumed:  consumed,
	}
}

// asciiTail lowercases the trailing run of raw keystrokes, bounded to the
// longest trigger a shortcut can register, for use as ShortcutTable.Match's
// input.
func asciiTail(raw []rune) string {
	if len(raw) > maxTriggerLen {
		raw = raw[len(raw)-maxTriggerLen:]
	}
	out := make([]rune, len(raw))
	for i, r := range raw {
		out[i] = unicode.ToLower(r)
	}
	return string(out)
}
