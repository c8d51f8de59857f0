package engine

import "testing"

func TestTelexMethod_Decode_ToneKeys(t *testing.T) {
	telex := TelexMethod{}
	cfg := DefaultFlags()
	tail := []CharRecord{{Base: 'a'}}

	tests := []struct {
		key  rune
		tone ToneMark
	}{
		{'s', ToneSac},
		{'f', ToneHuyen},
		{'r', ToneHoi},
		{'x', ToneNga},
		{'j', ToneNang},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			intent, ok := telex.Decode(tt.key, false, tail, &cfg)
			if !ok {
				t.Fatalf("Decode(%q) ok = false, want true", tt.key)
			}
			if intent.Kind != IntentTone || intent.Tone != tt.tone {
				t.Errorf("Decode(%q) = %+v, want tone %v", tt.key, intent, tt.tone)
			}
		})
	}
}

func TestTelexMethod_Decode_ClearTone(t *testing.T) {
	telex := TelexMethod{}
	cfg := DefaultFlags()
	intent, ok := telex.Decode('z', false, nil, &cfg)
	if !ok || intent.Kind != IntentClearTone {
		t.Errorf("Decode('z') = %+v, ok=%v, want IntentClearTone", intent, ok)
	}
}

func TestTelexMethod_Decode_DoubleLetterMarks(t *testing.T) {
	telex := TelexMethod{}
	cfg := DefaultFlags()

	tests := []struct {
		key  rune
		base rune
	}{
		{'a', 'a'},
		{'e', 'e'},
		{'o', 'o'},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			intent, ok := telex.Decode(tt.key, false, nil, &cfg)
			if !ok || intent.Kind != IntentMark || intent.Mark != VowelHat || intent.Base != tt.base {
				t.Errorf("Decode(%q) = %+v, ok=%v, want IntentMark(VowelHat, %q)", tt.key, intent, ok, tt.base)
			}
		})
	}
}

func TestTelexMethod_Decode_DStroke(t *testing.T) {
	telex := TelexMethod{}
	cfg := DefaultFlags()
	intent, ok := telex.Decode('d', false, nil, &cfg)
	if !ok || intent.Kind != IntentMark || intent.Mark != VowelDBar || intent.Base != 'd' {
		t.Errorf("Decode('d') = %+v, ok=%v, want IntentMark(VowelDBar, 'd')", intent, ok)
	}
}

func TestTelexMethod_Decode_W(t *testing.T) {
	cfg := DefaultFlags()
	telex := TelexMethod{}

	tests := []struct {
		name     string
		tail     []CharRecord
		wantMark VowelMark
		wantBase rune
	}{
		{"aw -> breve on a", []CharRecord{{Base: 'a'}}, VowelBreve, 'a'},
		{"ow -> horn on o", []CharRecord{{Base: 'o'}}, VowelHorn, 'o'},
		{"uw -> horn on u", []CharRecord{{Base: 'u'}}, VowelHorn, 'u'},
		{"bare w -> insert ư", nil, VowelHorn, 'u'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, ok := telex.Decode('w', false, tt.tail, &cfg)
			if !ok {
				t.Fatalf("Decode('w') ok = false")
			}
			if intent.Mark != tt.wantMark || intent.Base != tt.wantBase {
				t.Errorf("Decode('w') = %+v, want mark %v base %q", intent, tt.wantMark, tt.wantBase)
			}
		})
	}
}

func TestTelexMethod_Decode_BareWDisabled(t *testing.T) {
	cfg := DefaultFlags()
	cfg.SkipWShortcut = true
	telex := TelexMethod{}
	intent, ok := telex.Decode('w', false, nil, &cfg)
	if ok {
		t.Errorf("Decode('w') with SkipWShortcut = %+v, want ok=false", intent)
	}
}

func TestTelexMethod_Decode_Brackets(t *testing.T) {
	telex := TelexMethod{}
	cfg := DefaultFlags()

	if _, ok := telex.Decode('[', false, nil, &cfg); ok {
		t.Error("'[' should not decode without BracketShortcut")
	}

	cfg.BracketShortcut = true
	intent, ok := telex.Decode('[', false, nil, &cfg)
	if !ok || intent.Kind != IntentInsert || intent.Mark != VowelHorn || intent.Base != 'o' {
		t.Errorf("Decode('[') = %+v, ok=%v, want ơ insert", intent, ok)
	}
	intent, ok = telex.Decode(']', false, nil, &cfg)
	if !ok || intent.Kind != IntentInsert || intent.Mark != VowelHorn || intent.Base != 'u' {
		t.Errorf("Decode(']') = %+v, ok=%v, want ư insert", intent, ok)
	}
}

func TestTelexMethod_Decode_PlainLetterFallsThrough(t *testing.T) {
	telex := TelexMethod{}
	cfg := DefaultFlags()
	if _, ok := telex.Decode('b', false, nil, &cfg); ok {
		t.Error("Decode('b') should report ok=false so the orchestrator inserts it literally")
	}
}
