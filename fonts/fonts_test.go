package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(18, 28); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{HUD, Title, Small} {
		if name.Get() == nil {
			t.Errorf("%s: nil face", name)
		}
	}
	if HUD.Get().Metrics().Height >= Title.Get().Metrics().Height {
		t.Error("title face should be taller than the HUD face")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Error("expected an error for invalid TTF data")
	}
}
