package engine

// TransformMark applies mark to the most recent record in the buffer's
// uncommitted tail whose base letter (case-insensitively) equals base. key
// is the lowercase physical key that triggered the attempt — it is recorded
// on the record so a second, otherwise-identical press of the same key can
// be recognized as a revert.
//
// If the target record already carries mark and its LastKey matches key,
// the mark is undone and key is appended to the buffer as a literal
// character instead, per the double-tap revert rule. Returns applied=false
// if no eligible record exists (the caller should then treat key as an
// ordinary literal letter).
func TransformMark(buf *Buffer, mark VowelMark, base rune, key rune) (applied, reverted bool) {
	tail := buf.TailSinceBreak()
	idx := lastRecordWithBase(tail, base)
	if idx < 0 {
		return false, false
	}
	rec := &tail[idx]
	if rec.Mark == mark && rec.LastKey == key {
		rec.Mark = VowelNone
		rec.LastKey = 0
		if mark == VowelHorn && toLowerVN(rec.Base) == 'o' && idx > 0 {
			if prev := &tail[idx-1]; toLowerVN(prev.Base) == 'u' && prev.Mark == VowelHorn && prev.LastKey == key {
				prev.Mark = VowelNone
				prev.LastKey = 0
			}
		}
		buf.Append(CharRecord{Base: key})
		return true, true
	}
	rec.Mark = mark
	rec.LastKey = key

	// uô/ươ compound: a horn on the "o" of an adjacent "uo" nucleus marks
	// the "u" too in the same keystroke (spec §4.5: "duowc" -> "dươc").
	if mark == VowelHorn && toLowerVN(rec.Base) == 'o' && idx > 0 {
		if prev := &tail[idx-1]; toLowerVN(prev.Base) == 'u' && prev.Mark == VowelNone {
			prev.Mark = VowelHorn
			prev.LastKey = key
		}
	}
	return true, false
}

// TransformTone locates the tone anchor of the syllable currently in
// progress and sets tone on it, clearing any tone previously placed
// elsewhere in the nucleus (this is what gives "repositioning" its effect:
// the anchor is recomputed from the live nucleus shape on every call, so a
// tone key pressed after the nucleus has changed places the tone on the new
// anchor). A tone already placed is not moved when later letters are typed;
// it stays on its slot until the next tone key.
//
// Validation is skipped when cfg.FreeTone is set. A second press of the
// same key that already set the anchor's tone reverts it and appends key
// as a literal character, matching TransformMark's revert rule.
func TransformTone(buf *Buffer, tone ToneMark, key rune, cfg *Flags) (applied, reverted bool) {
	tail := buf.TailSinceBreak()
	view, ok := ParseSyllable(tail, cfg.Modern)
	if !ok || view.Anchor < 0 {
		return false, false
	}
	if !cfg.FreeTone && !Validate(tail, view, cfg) {
		return false, false
	}

	anchor := &tail[view.Anchor]
	if anchor.Tone == tone && anchor.LastKey == key {
		anchor.Tone = ToneNone
		anchor.LastKey = 0
		buf.Append(CharRecord{Base: key})
		return true, true
	}
	for i := view.NucleusStart; i < view.NucleusEnd; i++ {
		tail[i].Tone = ToneNone
	}
	anchor.Tone = tone
	anchor.LastKey = key
	return true, false
}

// ClearTone removes any tone from the syllable currently in progress,
// without placing a new one. Used by input methods whose "no tone" keys
// (e.g. VNI's '0') explicitly flatten back to thanh ngang.
func ClearTone(buf *Buffer) (applied bool) {
	tail := buf.TailSinceBreak()
	view, ok := ParseSyllable(tail, false)
	if !ok {
		return false
	}
	for i := view.NucleusStart; i < view.NucleusEnd; i++ {
		if tail[i].Tone != ToneNone {
			tail[i].Tone = ToneNone
			tail[i].LastKey = 0
			applied = true
		}
	}
	return applied
}

func lastRecordWithBase(tail []CharRecord, base rune) int {
	want := toLowerVN(base)
	for i := len(tail) - 1; i >= 0; i-- {
		if toLowerVN(tail[i].Base) == want {
			return i
		}
	}
	return -1
}
