package engine

// applyEdit simulates what a host does with an Edit: delete Backspace
// characters behind the caret, then insert Chars. Tests use this to
// reconstruct the document text a sequence of keystrokes would produce.
func applyEdit(screen []rune, edit Edit) []rune {
	if edit.Action == ActionNone {
		return screen
	}
	back := edit.Backspace
	if back > len(screen) {
		back = len(screen)
	}
	screen = screen[:len(screen)-back]
	return append(screen, edit.Chars...)
}

// session pairs an engine with the simulated document it is editing, so a
// test can interleave multiple keystroke batches (type some text, then
// backspace, then type more) and read back the true accumulated result.
type session struct {
	eng    *Engine
	screen []rune
}

func newSession() *session {
	return &session{eng: NewEngine()}
}

// key feeds one resolved keystroke to the engine and returns the document
// text afterward. When the engine reports Consumed: false, the raw key still
// reaches the simulated document, the way an unconsumed keystroke reaches a
// host's own text field. A break key that yields no edit at all (nothing was
// being composed) is likewise typed by the host itself.
func (s *session) key(r rune, kind KeyKind) string {
	edit := s.eng.ProcessResolved(r, kind)
	s.screen = applyEdit(s.screen, edit)
	if edit.Action != ActionNone && !edit.Consumed {
		s.screen = append(s.screen, r)
	} else if edit.Action == ActionNone && kind == KeyBreak {
		s.screen = append(s.screen, r)
	}
	return string(s.screen)
}

// typeASCII feeds str one rune at a time, classifying each rune the same way
// Resolve would (space and breakPunctuation as a break, everything else
// ordinary), and returns the resulting document text.
func (s *session) typeASCII(str string) string {
	var out string
	for _, r := range str {
		_, kind := classifyScalar(r)
		if r == ' ' {
			kind = KeyBreak
		}
		out = s.key(r, kind)
	}
	return out
}

// backspace feeds one backspace keystroke.
func (s *session) backspace() string {
	return s.key(0, KeyBackspace)
}

// typeASCII is typeASCII on a throwaway single-use session, for tests that
// only need the result of one batch of keystrokes.
func typeASCII(eng *Engine, s string) string {
	sess := &session{eng: eng}
	return sess.typeASCII(s)
}

// typeRunes is typeASCII for input already split into keystrokes, letting a
// test drive backspace (rune 0) explicitly, on a throwaway single-use
// session.
func typeRunes(eng *Engine, keys []rune) string {
	sess := &session{eng: eng}
	var out string
	for _, r := range keys {
		var kind KeyKind
		switch r {
		case 0:
			kind = KeyBackspace
		case ' ':
			kind = KeyBreak
		default:
			_, kind = classifyScalar(r)
		}
		out = sess.key(r, kind)
	}
	return out
}
