package engine

import "unicode"

// SyllableView is the decomposition of a buffer tail into onset, glide,
// nucleus, coda and the current tone anchor. Indices are offsets into the
// tail slice passed to ParseSyllable; NucleusStart == NucleusEnd means no
// vowel has been typed yet.
type SyllableView struct {
	OnsetEnd     int // [0, OnsetEnd) is the initial consonant cluster
	GlideEnd     int // [OnsetEnd, GlideEnd) is the glide; always empty, a glide vowel is counted into the nucleus
	NucleusStart int
	NucleusEnd   int // [NucleusStart, NucleusEnd) is the vowel nucleus
	CodaStart    int
	CodaEnd      int // [CodaStart, CodaEnd) is the final consonant cluster
	Anchor       int // absolute index into the tail of the tone anchor slot, -1 if none
	AllConsumed  bool
}

// Onset returns the lowercase onset letters as a string, for cluster
// lookups against initialClusters/foreignInitials.
func (v SyllableView) Onset(tail []CharRecord) string {
	return baseString(tail[0:v.OnsetEnd])
}

// Coda returns the lowercase coda letters as a string.
func (v SyllableView) Coda(tail []CharRecord) string {
	return baseString(tail[v.CodaStart:v.CodaEnd])
}

// Nucleus returns the nucleus records (not copied).
func (v SyllableView) Nucleus(tail []CharRecord) []CharRecord {
	return tail[v.NucleusStart:v.NucleusEnd]
}

func baseString(recs []CharRecord) string {
	rs := make([]rune, len(recs))
	for i, r := range recs {
		rs[i] = unicode.ToLower(r.Base)
	}
	return string(rs)
}

// ParseSyllable decomposes tail (the buffer slots since the last break)
// into onset/glide/nucleus/coda and locates the tone anchor. ok is false
// when no vowel has been typed yet (empty nucleus) — the spec's "no
// syllable in progress" case.
func ParseSyllable(tail []CharRecord, modern bool) (SyllableView, bool) {
	n := len(tail)

	// Onset: longest run of consonant letters, counting the foreign letters
	// z, w, j, f too (Validate accepts those only under
	// AllowForeignConsonants). The u of "qu" and the i of "gi" are vowels, so
	// they are counted into the nucleus below; the anchor is then chosen
	// among the vowels after them ("quà", "già") without a separate glide
	// slot.
	onsetEnd := 0
	for onsetEnd < n && (isConsonantBase(tail[onsetEnd].Base) || foreignInitials[string(unicode.ToLower(tail[onsetEnd].Base))]) {
		onsetEnd++
	}
	glideEnd := onsetEnd

	nucleusStart := glideEnd
	nucleusEnd := nucleusStart
	for nucleusEnd < n && isVowelBase(tail[nucleusEnd].Base) {
		nucleusEnd++
	}

	if nucleusEnd == nucleusStart {
		return SyllableView{OnsetEnd: onsetEnd, GlideEnd: glideEnd, NucleusStart: nucleusStart, NucleusEnd: nucleusEnd, Anchor: -1}, false
	}

	codaStart := nucleusEnd
	codaEnd := codaStart
	for codaEnd < n && isConsonantBase(tail[codaEnd].Base) {
		codaEnd++
	}

	view := SyllableView{
		OnsetEnd:     onsetEnd,
		GlideEnd:     glideEnd,
		NucleusStart: nucleusStart,
		NucleusEnd:   nucleusEnd,
		CodaStart:    codaStart,
		CodaEnd:      codaEnd,
		AllConsumed:  codaEnd == n,
	}

	bases := make([]rune, nucleusEnd-nucleusStart)
	for i, r := range tail[nucleusStart:nucleusEnd] {
		bases[i] = unicode.ToLower(r.Base)
	}
	// After "qu" or "gi" the first nucleus vowel is a glide: the anchor is
	// chosen among the vowels that follow it.
	skip := 0
	if len(bases) > 1 && onsetEnd > 0 {
		prev := unicode.ToLower(tail[onsetEnd-1].Base)
		if (prev == 'q' && bases[0] == 'u') || (prev == 'g' && bases[0] == 'i') {
			skip = 1
		}
	}
	anchorOffset := computeAnchor(bases[skip:], codaEnd > codaStart, modern)
	if anchorOffset >= 0 {
		view.Anchor = nucleusStart + skip + anchorOffset
	} else {
		view.Anchor = -1
	}
	return view, true
}

// computeAnchor implements the tone anchor selection table of spec §4.3.
//
// bases is the lowercase nucleus letters in order. hasCoda reports whether
// a final consonant follows. modern selects the modern vs. classic
// orthography for the oa/oe/uy family (see DESIGN.md: the spec's prose in
// §4.3 and its worked example in §6 disagree on which word "modern" names;
// this follows §6's literal example words, "hòa" is modern).
func computeAnchor(bases []rune, hasCoda bool, modern bool) int {
	n := len(bases)
	switch {
	case n == 0:
		return -1
	case n == 1:
		return 0
	case n >= 3:
		if bases[0] == 'u' && bases[1] == 'y' && bases[2] != 'u' {
			return 2 // uyê: "y" is a glide, the tone lands on the true vowel after it (chuyện, nguyễn)
		}
		return 1 // middle vowel otherwise: iêu, oai, uyu, ...
	}

	a, b := bases[0], bases[1]
	switch {
	case a == 'u' && b == 'o': // uô / ươ compound
		return 1
	case a == 'i' && b == 'e': // iê
		return 1
	case a == 'y' && b == 'e': // yê
		return 1
	case a == 'o' && (b == 'a' || b == 'e'): // oa, oe
		if hasCoda {
			return 1
		}
		if modern {
			return 0
		}
		return 1
	case a == 'u' && b == 'y': // uy
		if hasCoda {
			return 1
		}
		if modern {
			return 0
		}
		return 1
	case a == 'i' && b == 'a': // ia -> always first vowel (nghĩa, mía)
		return 0
	case a == 'u' && b == 'a': // ua/ưa -> first vowel (mùa, mưa); uâ with a coda -> second (tuần)
		if hasCoda {
			return 1
		}
		return 0
	}

	// ao, au, ai, eo, eu, oi, ui and the other pairs not listed above:
	// first vowel.
	return 0
}
