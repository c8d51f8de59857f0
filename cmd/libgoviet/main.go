// Package main builds libgoviet, a C-shared library exposing the
// composition engine across the cgo boundary for hosts that cannot link Go
// directly (an Input Method Kit shim on macOS being the reference case —
// hence the virtual-keycode convention internal/engine/keycodes.go
// implements). Build with `go build -buildmode=c-shared`.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	uint32_t scalars[256];
	uint8_t  action;    // 0 none, 1 send, 2 restore
	uint8_t  backspace; // characters to delete behind the caret, clamped to 255
	uint8_t  count;     // number of valid entries in scalars
	uint8_t  consumed;  // 1 if the host must not also inject the key itself
} ime_result_t;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/tuananhht94/gonhanh.org/internal/engine"
	"golang.org/x/text/unicode/norm"
)

// mu guards the process-wide engine singleton. The cgo boundary is called
// from whatever thread the host's keyboard hook runs on; the engine itself
// is not safe for concurrent use, so every exported entry point takes this
// lock for its duration. Composition is inherently serial (one keystroke at
// a time from one keyboard) so contention is not a concern.
var (
	mu  sync.Mutex
	eng = engine.NewEngine()
)

// ime_init resets the engine to a fresh instance with default flags, no
// shortcuts, and an empty buffer.
//
//export ime_init
func ime_init() {
	mu.Lock()
	defer mu.Unlock()
	eng = engine.NewEngine()
}

// ime_key_ext processes one keystroke identified by its macOS virtual
// keycode, with the host's modifier state. It returns NULL when the key
// produced no edit (e.g. a bypassed control chord).
//
//export ime_key_ext
func ime_key_ext(keycode C.uint16_t, caps, ctrl, shift C.uint8_t) *C.ime_result_t {
	mu.Lock()
	defer mu.Unlock()
	ev := engine.KeyEvent{
		Key:   uint16(keycode),
		Shift: shift != 0,
		Caps:  caps != 0,
		Ctrl:  ctrl != 0,
	}
	return newResult(eng.ProcessKey(ev))
}

// ime_key_with_char is ime_key_ext for a host that has already resolved the
// keycode to a Unicode scalar itself (an option-mapped key under a non-US
// layout, for instance), bypassing this engine's own keycode table.
//
//export ime_key_with_char
func ime_key_with_char(keycode C.uint16_t, caps, ctrl, shift C.uint8_t, scalar C.uint32_t) *C.ime_result_t {
	mu.Lock()
	defer mu.Unlock()
	ev := engine.KeyEvent{
		Key:    uint16(keycode),
		Scalar: rune(scalar),
		Shift:  shift != 0,
		Caps:   caps != 0,
		Ctrl:   ctrl != 0,
	}
	return newResult(eng.ProcessKey(ev))
}

//export ime_method
func ime_method(method C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.SetMethod(engine.Method(method))
}

//export ime_enabled
func ime_enabled(enabled C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.SetEnabled(enabled != 0)
}

//export ime_modern
func ime_modern(v C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.Flags().Modern = v != 0
}

//export ime_free_tone
func ime_free_tone(v C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.Flags().FreeTone = v != 0
}

//export ime_skip_w_shortcut
func ime_skip_w_shortcut(v C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.Flags().SkipWShortcut = v != 0
}

//export ime_bracket_shortcut
func ime_bracket_shortcut(v C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.Flags().BracketShortcut = v != 0
}

//export ime_english_auto_restore
func ime_english_auto_restore(v C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.Flags().EnglishAutoRestore = v != 0
}

//export ime_auto_capitalize
func ime_auto_capitalize(v C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.Flags().AutoCapitalize = v != 0
}

//export ime_allow_foreign_consonants
func ime_allow_foreign_consonants(v C.uint8_t) {
	mu.Lock()
	defer mu.Unlock()
	eng.Flags().AllowForeignConsonants = v != 0
}

// ime_clear drops the syllable currently in progress.
//
//export ime_clear
func ime_clear() {
	mu.Lock()
	defer mu.Unlock()
	eng.Clear()
}

// ime_clear_all is ime_clear plus dropping every registered shortcut.
//
//export ime_clear_all
func ime_clear_all() {
	mu.Lock()
	defer mu.Unlock()
	eng.Clear()
	eng.Shortcuts().Clear()
}

// ime_add_shortcut registers trigger -> replacement. replacement is
// NFC-normalized before being stored, since a host's UTF-8 is not
// guaranteed to already be in composed form.
//
//export ime_add_shortcut
func ime_add_shortcut(trigger, replacement *C.char) {
	mu.Lock()
	defer mu.Unlock()
	eng.Shortcuts().Add(C.GoString(trigger), norm.NFC.String(C.GoString(replacement)))
}

//export ime_remove_shortcut
func ime_remove_shortcut(trigger *C.char) {
	mu.Lock()
	defer mu.Unlock()
	eng.Shortcuts().Remove(C.GoString(trigger))
}

//export ime_clear_shortcuts
func ime_clear_shortcuts() {
	mu.Lock()
	defer mu.Unlock()
	eng.Shortcuts().Clear()
}

// ime_restore_word seeds the buffer from a word already on screen (the host
// detected the caret landing back inside already-composed text), enabling
// backspace-into-word editing. This is distinct from the Restore edit Esc
// produces via ime_key_ext/ime_key_with_char (§4.6's Restore intent,
// "undo my own composition back to raw ASCII"): this call has no output,
// it only primes internal state for the keystrokes that follow. word is
// NFC-normalized first, like ime_add_shortcut's replacement.
//
//export ime_restore_word
func ime_restore_word(word *C.char) {
	mu.Lock()
	defer mu.Unlock()
	eng.SeedWord(norm.NFC.String(C.GoString(word)))
}

// ime_get_buffer copies the composed scalars of the syllable in progress
// into out, bounded by max_len, and returns the count written. A host uses
// this to re-sync after, say, a spell-checker redraw the engine was not
// told about.
//
//export ime_get_buffer
func ime_get_buffer(out *C.uint32_t, maxLen C.int32_t) C.int32_t {
	mu.Lock()
	defer mu.Unlock()
	chars := eng.GetBuffer()
	n := int(maxLen)
	if n > len(chars) {
		n = len(chars)
	}
	if n <= 0 {
		return 0
	}
	dst := unsafe.Slice(out, n)
	for i := 0; i < n; i++ {
		dst[i] = C.uint32_t(chars[i])
	}
	return C.int32_t(n)
}

// ime_free releases a result allocated by any of the functions above. Every
// non-NULL *ime_result_t this library returns must be passed here exactly
// once.
//
//export ime_free
func ime_free(res *C.ime_result_t) {
	if res != nil {
		C.free(unsafe.Pointer(res))
	}
}

// newResult heap-allocates the C-ABI result for edit, or returns NULL for
// ActionNone so the host can skip the free call entirely on the common
// no-op path.
func newResult(edit engine.Edit) *C.ime_result_t {
	if edit.Action == engine.ActionNone {
		return nil
	}

	res := (*C.ime_result_t)(C.malloc(C.size_t(unsafe.Sizeof(C.ime_result_t{}))))
	*res = C.ime_result_t{}

	n := len(edit.Chars)
	if n > 256 {
		n = 256
	}
	for i := 0; i < n; i++ {
		res.scalars[i] = C.uint32_t(edit.Chars[i])
	}
	res.count = C.uint8_t(n)

	backspace := edit.Backspace
	if backspace > 255 {
		backspace = 255
	}
	res.backspace = C.uint8_t(backspace)

	switch edit.Action {
	case engine.ActionSend:
		res.action = 1
	case engine.ActionRestore:
		res.action = 2
	}
	if edit.Consumed {
		res.consumed = 1
	}
	return res
}

func main() {}
