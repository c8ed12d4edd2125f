package vivid

import "testing"

func TestStyleSequences(t *testing.T) {
	tests := []struct {
		style Style
		want  []Layer
	}{
		{StylePolygonNebula, []Layer{LayerPolygon, LayerParticle, LayerScanline}},
		{StyleFractalBloom, []Layer{LayerFluid, LayerParticle, LayerScanline}},
		{StyleChromaticStorm, []Layer{LayerPolygon, LayerFluid, LayerParticle, LayerScanline}},
		{StyleSynthwaveHorizon, []Layer{LayerFluid, LayerScanline}},
		{StyleLiquidAurora, []Layer{LayerFluid, LayerParticle, LayerScanline}},
		{StyleFreeform, []Layer{LayerFluid, LayerPolygon, LayerParticle, LayerScanline}},
	}
	for _, tt := range tests {
		t.Run(tt.style.Name(), func(t *testing.T) {
			got := tt.style.Sequence()
			if len(got) != len(tt.want) {
				t.Fatalf("sequence length %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("layer %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestScanlineExactlyOnce verifies the single structural rule shared by all
// compositions: Scanline appears exactly once and Backdrop never appears,
// since the generator runs it implicitly.
func TestScanlineExactlyOnce(t *testing.T) {
	all := append(Styles(), StyleFreeform)
	for _, s := range all {
		scanlines := 0
		for _, l := range s.Sequence() {
			if l == LayerScanline {
				scanlines++
			}
			if l == LayerBackdrop {
				t.Errorf("%s: Backdrop must not appear in a sequence", s.Name())
			}
		}
		if scanlines != 1 {
			t.Errorf("%s: Scanline appears %d times, want exactly 1", s.Name(), scanlines)
		}
	}
}

// TestSynthwaveScanlinePlacement pins down the one style whose Scanline is
// not the final layer for every other style.
func TestSynthwaveScanlinePlacement(t *testing.T) {
	all := append(Styles(), StyleFreeform)
	for _, s := range all {
		seq := s.Sequence()
		last := seq[len(seq)-1]
		if s == StyleSynthwaveHorizon {
			if last != LayerScanline {
				t.Errorf("Synthwave Horizon: last layer = %s", last)
			}
			if seq[0] != LayerFluid {
				t.Errorf("Synthwave Horizon: first layer = %s, want Fluid", seq[0])
			}
			continue
		}
		if last != LayerScanline {
			t.Errorf("%s: last layer = %s, want Scanline", s.Name(), last)
		}
	}
}

func TestSequenceReturnsCopy(t *testing.T) {
	a := StylePolygonNebula.Sequence()
	a[0] = LayerScanline
	b := StylePolygonNebula.Sequence()
	if b[0] != LayerPolygon {
		t.Error("mutating a returned sequence leaked into the registry")
	}
}

func TestStyleFromName(t *testing.T) {
	tests := []struct {
		name      string
		want      Style
		wantKnown bool
	}{
		{"Polygon Nebula", StylePolygonNebula, true},
		{"Synthwave Horizon", StyleSynthwaveHorizon, true},
		{"polygon nebula", StyleFreeform, false}, // lookup is case-sensitive
		{"", StyleFreeform, false},
		{"Cosmic Doodle", StyleFreeform, false},
	}
	for _, tt := range tests {
		got, known := StyleFromName(tt.name)
		if got != tt.want || known != tt.wantKnown {
			t.Errorf("StyleFromName(%q) = (%v, %v), want (%v, %v)",
				tt.name, got, known, tt.want, tt.wantKnown)
		}
	}
}

func TestStylesExcludesFreeform(t *testing.T) {
	styles := Styles()
	if len(styles) != 5 {
		t.Fatalf("got %d styles, want 5", len(styles))
	}
	for _, s := range styles {
		if s == StyleFreeform {
			t.Error("Styles() must not expose the fallback composition")
		}
	}
}

func TestStyleNameUnknownValue(t *testing.T) {
	if got := Style(200).Name(); got != "Freeform" {
		t.Errorf("out-of-range style name = %q", got)
	}
}
