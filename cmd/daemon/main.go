package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/tuananhht94/gonhanh.org/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// X11 keysyms this daemon classifies directly. Fcitx5 hands this process
// X11 keysyms, not the macOS virtual keycodes internal/engine/keycodes.go
// resolves for cmd/libgoviet, so the daemon keeps its own small table and
// calls engine.Engine.ProcessResolved instead of ProcessKey.
const (
	keysymBackspace uint32 = 0xff08
	keysymTab       uint32 = 0xff09
	keysymReturn    uint32 = 0xff0d
	keysymEscape    uint32 = 0xff1b
	keysymDelete    uint32 = 0xffff
	keysymLeft      uint32 = 0xff51
	keysymUp        uint32 = 0xff52
	keysymRight     uint32 = 0xff53
	keysymDown      uint32 = 0xff54
	keysymHome      uint32 = 0xff50
	keysymEnd       uint32 = 0xff57
	keysymPageUp    uint32 = 0xff55
	keysymPageDown  uint32 = 0xff56
)

const (
	modShift   uint32 = 1 << 0
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3
)

// keysymToRune converts an X11 keysym to the Unicode scalar it represents,
// or 0 if it has none.
func keysymToRune(keysym uint32) rune {
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}

// resolve classifies one X11 key event the way internal/engine.Resolve
// classifies a macOS one.
func resolve(keysym, modifiers uint32) (rune, engine.KeyKind) {
	switch keysym {
	case keysymBackspace:
		return 0, engine.KeyBackspace
	case keysymReturn:
		return '\n', engine.KeyBreak
	case keysymTab:
		return '\t', engine.KeyBreak
	case keysymLeft, keysymRight, keysymUp, keysymDown, keysymHome, keysymEnd, keysymPageUp, keysymPageDown:
		return 0, engine.KeyNavigation
	case keysymEscape:
		return 0, engine.KeyRestore
	case keysymDelete:
		return 0, engine.KeyBypass
	}

	if modifiers&(modControl|modMod1) != 0 {
		return 0, engine.KeyBypass
	}

	r := keysymToRune(keysym)
	if r == 0 {
		return 0, engine.KeyBypass
	}
	switch r {
	case ' ', '.', '!', '?', ',', ';', ':':
		return r, engine.KeyBreak
	}
	return r, engine.KeyOrdinary
}

func keyLabel(keysym uint32) string {
	switch keysym {
	case keysymBackspace:
		return "Backspace"
	case keysymReturn:
		return "Enter"
	case keysymTab:
		return "Tab"
	case keysymEscape:
		return "Esc"
	case keysymDelete:
		return "Delete"
	case keysymLeft:
		return "Left"
	case keysymUp:
		return "Up"
	case keysymRight:
		return "Right"
	case keysymDown:
		return "Down"
	case keysymHome:
		return "Home"
	case keysymEnd:
		return "End"
	case keysymPageUp:
		return "PgUp"
	case keysymPageDown:
		return "PgDn"
	}
	if r := keysymToRune(keysym); r != 0 {
		return fmt.Sprintf("%q", r)
	}
	return fmt.Sprintf("0x%x", keysym)
}

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	engine *engine.Engine
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine with default settings.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{
		engine: engine.NewEngine(),
		logger: logger,
	}
}

// ProcessKey handles key events from the Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state).
// Output: handled (was the key consumed), backspace (how many characters
// behind the caret to delete), insert (the text to type in their place).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, int32, string, *dbus.Error) {
	r, kind := resolve(keysym, modifiers)
	edit := e.engine.ProcessResolved(r, kind)

	if e.logger != nil {
		modsStr := ""
		if modifiers&modShift != 0 {
			modsStr += "Shift+"
		}
		if modifiers&modControl != 0 {
			modsStr += "Ctrl+"
		}
		if modifiers&modMod1 != 0 {
			modsStr += "Alt+"
		}
		e.logger.Printf("Type: %-15s | Backspace: %-3d | Insert: %-15q | Consumed: %v",
			modsStr+keyLabel(keysym), edit.Backspace, string(edit.Chars), edit.Consumed)
	}

	return edit.Consumed, int32(edit.Backspace), string(edit.Chars), nil
}

// Clear clears the current composition state.
func (e *InputEngine) Clear() *dbus.Error {
	e.engine.Clear()
	fmt.Println(">>> [GoViet] Engine cleared")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.engine.SetEnabled(enabled)
	fmt.Printf(">>> [GoViet] Engine enabled: %v\n", enabled)
	return nil
}

// SetMethod switches between Telex (0) and VNI (1).
func (e *InputEngine) SetMethod(method uint8) *dbus.Error {
	e.engine.SetMethod(engine.Method(method))
	return nil
}

// GetBuffer returns the composed text of the syllable currently in
// progress.
func (e *InputEngine) GetBuffer() (string, *dbus.Error) {
	return string(e.engine.GetBuffer()), nil
}

// RestoreWord replaces the current syllable with the raw ASCII keys that
// produced it.
func (e *InputEngine) RestoreWord() (int32, string, *dbus.Error) {
	edit := e.engine.RestoreWord()
	return int32(edit.Backspace), string(edit.Chars), nil
}

// SeedWord loads a Vietnamese word already on screen (Fcitx5 reports this
// when the caret lands back inside already-committed text) so backspace and
// further typing continue composing it instead of only ever appending.
func (e *InputEngine) SeedWord(word string) *dbus.Error {
	e.engine.SeedWord(word)
	return nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [GoViet] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [GoViet] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	inputEngine := NewInputEngine(logger)

	err = conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("GoViet-IME Backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:      %s\n", serviceName)
	fmt.Printf("  Object Path:  %s\n", objectPath)
	fmt.Printf("  Input Method: Telex\n")
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [GoViet] Shutting down...")
}
