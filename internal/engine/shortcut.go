package engine

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	maxTriggerLen     = 32
	maxReplacementLen = 255
)

// shortcutEntry is one row of the table; order records insertion sequence
// so ties (two triggers of equal length both matching) resolve to "most
// recently inserted wins", per spec §4.7 and §9's "do not substitute a
// hash-only structure" note.
type shortcutEntry struct {
	replacement string
	order       int
}

// ShortcutTable is an insertion-ordered trigger -> replacement mapping.
// Matching is a literal suffix match against the buffer read as lowercase
// ASCII; ties break on insertion order, not lexical order, so a plain Go
// map (which is what backs lookups here) needs the explicit order field to
// stay faithful to that rule.
type ShortcutTable struct {
	entries map[string]*shortcutEntry
	seq     int
}

// NewShortcutTable returns an empty shortcut table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{entries: make(map[string]*shortcutEntry)}
}

// Add inserts or replaces a trigger. trigger must be non-empty, ASCII
// lowercase, and at most 32 bytes; replacement must be at most 255 runes.
// Violations are a silent no-op (spec §7's BadConfig: "setter is a no-op").
func (t *ShortcutTable) Add(trigger, replacement string) {
	if trigger == "" || len(trigger) > maxTriggerLen {
		return
	}
	if len([]rune(replacement)) > maxReplacementLen {
		return
	}
	if !isASCIILower(trigger) {
		return
	}
	t.seq++
	t.entries[trigger] = &shortcutEntry{replacement: norm.NFC.String(replacement), order: t.seq}
}

// Remove deletes a trigger if present.
func (t *ShortcutTable) Remove(trigger string) {
	delete(t.entries, trigger)
}

// Clear empties the table.
func (t *ShortcutTable) Clear() {
	t.entries = make(map[string]*shortcutEntry)
}

// Match finds the longest trigger that is a suffix of asciiTail (the
// composition buffer's trailing run read as lowercase ASCII, bounded at
// the last break). On a tie in length, the most recently inserted trigger
// wins.
func (t *ShortcutTable) Match(asciiTail string) (trigger, replacement string, ok bool) {
	bestLen := -1
	bestOrder := -1
	for trig, entry := range t.entries {
		if len(trig) > len(asciiTail) {
			continue
		}
		if !strings.HasSuffix(asciiTail, trig) {
			continue
		}
		if len(trig) > bestLen || (len(trig) == bestLen && entry.order > bestOrder) {
			bestLen = len(trig)
			bestOrder = entry.order
			trigger = trig
			replacement = entry.replacement
			ok = true
		}
	}
	return
}

func isASCIILower(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
