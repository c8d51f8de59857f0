package engine

import "strings"

// spellingRules maps an invalid onset+nucleus-head combination to true.
// Only used to reject the invalid side; the engine never auto-corrects, it
// just refuses to transform text that violates these.
var spellingRules = map[string]bool{
	"ce": true, "ci": true, "cy": true, // c + front vowel: should be k
	"ka": true, "ko": true, "ku": true, // k + back vowel: should be c
	"ge": true, // g + e: should be gh
	"nge": true, "ngi": true, // ng + front vowel: should be ngh
	"gha": true, "gho": true, "ghu": true, // gh + back vowel: should be g
	"ngha": true, "ngho": true, "nghu": true, // ngh + back vowel: should be ng
}

// Validate checks a candidate syllable view against the five phonotactic
// rules of spec §4.4. It is consulted BEFORE committing any transform:
// transform-then-undo is deliberately not how this works, matching the
// teacher's validation-first design (see DESIGN.md).
func Validate(tail []CharRecord, view SyllableView, cfg *Flags) bool {
	if view.NucleusEnd == view.NucleusStart {
		return false // rule 1: has vowel
	}

	onset := view.Onset(tail)
	if onset != "" {
		folded := strings.ReplaceAll(onset, "đ", "d")
		if !isValidInitial(folded, cfg) {
			return false // rule 2: valid initial
		}
	}

	if !view.AllConsumed {
		return false // rule 3: all buffer scalars classified
	}

	if onset != "" {
		nucleus := view.Nucleus(tail)
		combined := onset + string(toLowerVN(nucleus[0].Base))
		if spellingRules[combined] {
			return false // rule 4: spelling rules (c/k, g/gh, ng/ngh)
		}
		if strings.HasSuffix(onset, "q") && (len(nucleus) == 0 || toLowerVN(nucleus[0].Base) != 'u') {
			return false // q only valid when followed by u
		}
	}

	coda := view.Coda(tail)
	if coda != "" && !finalClusters[coda] {
		return false // rule 5: valid final
	}

	return true
}

func isValidInitial(onset string, cfg *Flags) bool {
	if onset == "" {
		return true
	}
	if initialClusters[onset] {
		return true
	}
	if cfg != nil && cfg.AllowForeignConsonants && foreignInitials[onset] {
		return true
	}
	return false
}
