package vivid

import (
	"regexp"
	"strings"
	"testing"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		style Style
		id    string
		want  string
	}{
		{StylePolygonNebula, "a1b2c3d4-0000-0000-0000-000000000000", "polygon-nebula-a1b2c3d4.png"},
		{StyleSynthwaveHorizon, "deadbeefcafe", "synthwave-horizon-deadbeef.png"},
		{StyleFreeform, "short", "freeform-short.png"},
	}
	for _, tt := range tests {
		a := &Artwork{ID: tt.id, Style: tt.style}
		if got := a.FileName(); got != tt.want {
			t.Errorf("FileName() = %q, want %q", got, tt.want)
		}
	}
}

var fileNamePattern = regexp.MustCompile(`^[a-z-]+-[0-9a-f]{8}\.png$`)

func TestGeneratedFileName(t *testing.T) {
	gen := NewGenerator()
	art, err := gen.GenerateWithSeed(Request{
		Style:      "Chromatic Storm",
		Palette:    "Jade Circuit",
		Resolution: "720x1280",
	}, "0")
	if err != nil {
		t.Fatal(err)
	}
	name := art.FileName()
	if !fileNamePattern.MatchString(name) {
		t.Errorf("FileName() = %q does not match %v", name, fileNamePattern)
	}
	if !strings.HasPrefix(name, "chromatic-storm-") {
		t.Errorf("FileName() = %q missing style prefix", name)
	}
}
