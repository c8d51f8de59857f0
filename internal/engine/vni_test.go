package engine

import "testing"

func TestVNIMethod_Decode_Tones(t *testing.T) {
	vni := VNIMethod{}
	cfg := DefaultFlags()

	tests := []struct {
		key  rune
		tone ToneMark
	}{
		{'1', ToneSac},
		{'2', ToneHuyen},
		{'3', ToneHoi},
		{'4', ToneNga},
		{'5', ToneNang},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			intent, ok := vni.Decode(tt.key, false, nil, &cfg)
			if !ok || intent.Kind != IntentTone || intent.Tone != tt.tone {
				t.Errorf("Decode(%q) = %+v, ok=%v, want tone %v", tt.key, intent, ok, tt.tone)
			}
		})
	}

	intent, ok := vni.Decode('0', false, nil, &cfg)
	if !ok || intent.Kind != IntentClearTone {
		t.Errorf("Decode('0') = %+v, ok=%v, want IntentClearTone", intent, ok)
	}
}

func TestVNIMethod_Decode_Marks(t *testing.T) {
	cfg := DefaultFlags()
	vni := VNIMethod{}

	tests := []struct {
		name string
		key  rune
		tail []CharRecord
		ok   bool
		mark VowelMark
		base rune
	}{
		{"6 on a -> hat", '6', []CharRecord{{Base: 'a'}}, true, VowelHat, 'a'},
		{"6 on o -> hat", '6', []CharRecord{{Base: 'o'}}, true, VowelHat, 'o'},
		{"6 on u -> no match", '6', []CharRecord{{Base: 'u'}}, false, VowelNone, 0},
		{"7 on o -> horn", '7', []CharRecord{{Base: 'o'}}, true, VowelHorn, 'o'},
		{"7 on u -> horn", '7', []CharRecord{{Base: 'u'}}, true, VowelHorn, 'u'},
		{"8 on a -> breve", '8', []CharRecord{{Base: 'a'}}, true, VowelBreve, 'a'},
		{"9 on d -> dbar", '9', []CharRecord{{Base: 'd'}}, true, VowelDBar, 'd'},
		{"9 on empty tail -> no match", '9', nil, false, VowelNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, ok := vni.Decode(tt.key, false, tt.tail, &cfg)
			if ok != tt.ok {
				t.Fatalf("Decode(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if ok && (intent.Mark != tt.mark || intent.Base != tt.base) {
				t.Errorf("Decode(%q) = %+v, want mark %v base %q", tt.key, intent, tt.mark, tt.base)
			}
		})
	}
}

func TestVNIMethod_Decode_PlainLetterFallsThrough(t *testing.T) {
	vni := VNIMethod{}
	cfg := DefaultFlags()
	if _, ok := vni.Decode('b', false, nil, &cfg); ok {
		t.Error("Decode('b') should report ok=false")
	}
}

// TestVNIMethod_MarkReachesPastCoda covers spec scenario 5 (§8): VNI mark
// digits commonly arrive after the whole syllable, coda included, has
// already been typed, so the target vowel is not the tail's last record.
func TestVNIMethod_MarkReachesPastCoda(t *testing.T) {
	eng := NewEngine()
	eng.SetMethod(MethodVNI)
	got := typeASCII(eng, "tieng62")
	want := "tiềng"
	if got != want {
		t.Errorf("typeASCII(%q) = %q, want %q", "tieng62", got, want)
	}
}
