package engine

import "testing"

func TestEngine_ProcessKey_BasicLetters(t *testing.T) {
	eng := NewEngine()
	got := typeASCII(eng, "abc")
	if got != "abc" {
		t.Errorf("typeASCII(abc) = %q, want %q", got, "abc")
	}
}

func TestEngine_Clear(t *testing.T) {
	eng := NewEngine()
	typeASCII(eng, "ab")
	if string(eng.GetBuffer()) != "ab" {
		t.Fatalf("GetBuffer() = %q, want %q", eng.GetBuffer(), "ab")
	}
	eng.Clear()
	if len(eng.GetBuffer()) != 0 {
		t.Errorf("GetBuffer() after Clear() = %q, want empty", eng.GetBuffer())
	}
}

func TestEngine_HandleSpace(t *testing.T) {
	eng := NewEngine()
	got := typeASCII(eng, "abc ")
	if got != "abc " {
		t.Errorf("typeASCII(\"abc \") = %q, want %q", got, "abc ")
	}
	if len(eng.GetBuffer()) != 0 {
		t.Error("buffer should be empty after a break key")
	}
}

func TestEngine_HandleBackspace(t *testing.T) {
	sess := newSession()
	if got := sess.typeASCII("chaof"); got != "chào" {
		t.Fatalf("typeASCII(chaof) = %q, want chào", got)
	}
	// Backspace drops the raw 'f' tone key and recomposes from scratch,
	// leaving "chao" with no tone rather than "chà" (the last composed
	// scalar popped).
	if got := sess.backspace(); got != "chao" {
		t.Errorf("backspace after chào = %q, want chao", got)
	}
}

func TestEngine_BackspaceDropsToneKey(t *testing.T) {
	sess := newSession()
	sess.typeASCII("as") // a + s(sac) -> á
	if string(sess.eng.GetBuffer()) != "á" {
		t.Fatalf("GetBuffer() = %q, want á", sess.eng.GetBuffer())
	}
	sess.backspace() // drops the raw 's'
	if string(sess.eng.GetBuffer()) != "a" {
		t.Errorf("GetBuffer() after backspace = %q, want a", sess.eng.GetBuffer())
	}
}

func TestEngine_DoubleKeyRevert(t *testing.T) {
	eng := NewEngine()
	got := typeASCII(eng, "ass")
	if got != "as" {
		t.Errorf("typeASCII(ass) = %q, want as", got)
	}
}

func TestEngine_DoubleDRevert(t *testing.T) {
	eng := NewEngine()
	got := typeASCII(eng, "ddd")
	if got != "dd" {
		t.Errorf("typeASCII(ddd) = %q, want dd", got)
	}
}

func TestEngine_Repositioning(t *testing.T) {
	eng := NewEngine()
	got := typeASCII(eng, "hoaif")
	if got != "hoài" {
		t.Errorf("typeASCII(hoaif) = %q, want hoài", got)
	}
}

func TestEngine_SetMethodVNI(t *testing.T) {
	eng := NewEngine()
	eng.SetMethod(MethodVNI)
	got := typeASCII(eng, "tie6ng61")
	_ = got // VNI tone/mark ordering exercised in vni_test.go; smoke test only
	if eng.Enabled() != true {
		t.Error("engine should remain enabled after switching method")
	}
}

func TestEngine_SetEnabledClearsComposition(t *testing.T) {
	eng := NewEngine()
	typeASCII(eng, "ab")
	eng.SetEnabled(false)
	if len(eng.GetBuffer()) != 0 {
		t.Error("disabling the engine should clear composition")
	}
	if eng.ProcessResolved('c', KeyOrdinary).Action != ActionNone {
		t.Error("a disabled engine should not produce edits")
	}
}

func TestEngine_RestoreWord(t *testing.T) {
	eng := NewEngine()
	typeASCII(eng, "chaof")
	if string(eng.GetBuffer()) != "chào" {
		t.Fatalf("GetBuffer() = %q, want chào", eng.GetBuffer())
	}
	edit := eng.RestoreWord()
	if edit.Action != ActionRestore || string(edit.Chars) != "chaof" {
		t.Errorf("RestoreWord() = %+v, want chars \"chaof\"", edit)
	}
	if len(eng.GetBuffer()) != 0 {
		t.Error("RestoreWord() should clear composition")
	}
}

func TestEngine_Shortcut(t *testing.T) {
	eng := NewEngine()
	eng.Shortcuts().Add("vn", "Việt Nam")
	got := typeASCII(eng, "vn ")
	if got != "Việt Nam " {
		t.Errorf("typeASCII(vn ) = %q, want %q", got, "Việt Nam ")
	}
}

func TestEngine_AutoCapitalize(t *testing.T) {
	eng := NewEngine()
	eng.Flags().AutoCapitalize = true
	got := typeASCII(eng, "chao. xin")
	if got != "chao. Xin" {
		t.Errorf("typeASCII = %q, want %q", got, "chao. Xin")
	}
}

func TestEngine_OverflowDoesNotPanic(t *testing.T) {
	eng := NewEngine()
	keys := make([]rune, 0, 300)
	for i := 0; i < 299; i++ {
		keys = append(keys, 'a')
	}
	keys = append(keys, 's')

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("processing a 300-key overflow run panicked: %v", r)
		}
	}()
	typeRunes(eng, keys)
}
