package engine

import "unicode"

// macOS virtual keycodes for the keys this engine reasons about. Naming
// follows Apple's Carbon/AppKit kVK_* constants. Keys outside Vietnamese
// composition's vocabulary are not listed; Resolve reports them KeyBypass.
const (
	vkA, vkS, vkD, vkF, vkH, vkG, vkZ, vkX = 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07
	vkC, vkV, vkB, vkQ, vkW, vkE, vkR, vkY = 0x08, 0x09, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10
	vkT                                    = 0x11

	vk1, vk2, vk3, vk4, vk6, vk5 = 0x12, 0x13, 0x14, 0x15, 0x16, 0x17
	vk9, vk7, vk8, vk0           = 0x19, 0x1A, 0x1C, 0x1D

	vkRightBracket, vkO, vkU, vkLeftBracket = 0x1E, 0x1F, 0x20, 0x21
	vkI, vkP, vkL, vkJ, vkK                 = 0x22, 0x23, 0x25, 0x26, 0x28
	vkN, vkM, vkPeriod, vkComma             = 0x2D, 0x2E, 0x2F, 0x2B

	vkReturn        = 0x24
	vkTab           = 0x30
	vkSpace         = 0x31
	vkBackspace     = 0x33
	vkEscape        = 0x35
	vkLeftArrow     = 0x7B
	vkRightArrow    = 0x7C
	vkDownArrow     = 0x7D
	vkUpArrow       = 0x7E
	vkForwardDelete = 0x75
)

// letterKeycodes maps a virtual keycode to the lowercase, unshifted ASCII
// scalar it produces on a standard US keyboard layout.
var letterKeycodes = map[uint16]rune{
	vkA: 'a', vkS: 's', vkD: 'd', vkF: 'f', vkH: 'h', vkG: 'g', vkZ: 'z',
	vkX: 'x', vkC: 'c', vkV: 'v', vkB: 'b', vkQ: 'q', vkW: 'w', vkE: 'e',
	vkR: 'r', vkY: 'y', vkT: 't', vkO: 'o', vkU: 'u', vkI: 'i', vkP: 'p',
	vkL: 'l', vkJ: 'j', vkK: 'k', vkN: 'n', vkM: 'm',
	vk0: '0', vk1: '1', vk2: '2', vk3: '3', vk4: '4', vk5: '5', vk6: '6',
	vk7: '7', vk8: '8', vk9: '9',
	vkLeftBracket: '[', vkRightBracket: ']',
	vkPeriod: '.', vkComma: ',',
}

var shiftedPunct = map[rune]rune{
	'1': '!', '[': '{', ']': '}', '.': '>', ',': '<',
}

// KeyKind classifies a keystroke for the orchestrator once it has been
// resolved to a scalar (or found to carry none).
type KeyKind int

const (
	KeyOrdinary   KeyKind = iota // a rune the engine should try to interpret
	KeyBackspace                 // undo the last raw keystroke
	KeyBreak                     // space, Enter, Tab, sentence punctuation: ends a syllable
	KeyNavigation                // arrow keys: clear composition, do not edit
	KeyRestore                   // Esc: the user-visible "revert to raw ASCII" operation (§4.6/§8)
	KeyBypass                    // anything else: left untouched
)

// Resolve turns a raw KeyEvent into the scalar it represents (when any)
// and how the orchestrator should treat it. ev.Scalar, when the host has
// already resolved it through an input source this table does not know,
// always takes precedence over the keycode table.
func Resolve(ev KeyEvent) (r rune, kind KeyKind) {
	switch ev.Key {
	case vkBackspace:
		return 0, KeyBackspace
	case vkReturn:
		return '\n', KeyBreak
	case vkTab:
		return '\t', KeyBreak
	case vkSpace:
		return ' ', KeyBreak
	case vkLeftArrow, vkRightArrow, vkUpArrow, vkDownArrow:
		return 0, KeyNavigation
	case vkEscape:
		return 0, KeyRestore
	case vkForwardDelete:
		return 0, KeyBypass
	}

	if ev.Ctrl {
		return 0, KeyBypass
	}

	if ev.Scalar != 0 {
		return classifyScalar(ev.Scalar)
	}

	base, ok := letterKeycodes[ev.Key]
	if !ok {
		return 0, KeyBypass
	}
	return classifyScalar(applyShift(base, ev.Shift, ev.Caps))
}

// breakPunctuation is the punctuation set spec §4.6 lists as common to both
// methods: it commits the syllable in progress but never deletes anything.
// '[' and ']' are deliberately excluded even though §4.6 lists them: Telex's
// BracketShortcut flag (§6) repurposes them as "-> ơ"/"-> ư" shortcuts, so
// they must still reach TelexMethod.Decode as ordinary keys.
var breakPunctuation = map[rune]bool{
	',': true, '.': true, '/': true, ';': true, '\'': true,
	'\\': true, '-': true, '=': true, '`': true,
	'!': true, '?': true, ':': true,
}

func classifyScalar(r rune) (rune, KeyKind) {
	if breakPunctuation[r] {
		return r, KeyBreak
	}
	return r, KeyOrdinary
}

// applyShift derives the scalar Shift/Caps Lock would produce for base.
// Caps Lock affects only letters; Shift alone or Caps alone capitalizes, the
// two together cancel out, matching how a real keyboard driver behaves.
func applyShift(base rune, shift, caps bool) rune {
	if base >= 'a' && base <= 'z' {
		if shift != caps {
			return unicode.ToUpper(base)
		}
		return base
	}
	if shift {
		if shifted, ok := shiftedPunct[base]; ok {
			return shifted
		}
	}
	return base
}
