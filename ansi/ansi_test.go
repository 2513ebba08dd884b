package ansi

import "testing"

func paletteEntries(p Palette) []string {
	return []string{p.Trace, p.Debug, p.Info, p.Warn, p.Error, p.Critical}
}

func TestPaletteDisabledHasNoSequences(t *testing.T) {
	t.Parallel()

	for i, entry := range paletteEntries(PaletteDisabled) {
		if entry != "" {
			t.Fatalf("entry %d of PaletteDisabled is %q, want empty", i, entry)
		}
	}
}

func TestColoredPalettesCoverEveryLevel(t *testing.T) {
	t.Parallel()

	palettes := map[string]Palette{
		"default":        PaletteDefault,
		"dracula":        PaletteDracula,
		"gruvbox":        PaletteGruvbox,
		"monokai":        PaletteMonokai,
		"nord":           PaletteNord,
		"solarized-dark": PaletteSolarizedDark,
		"tokyo-night":    PaletteTokyoNight,
	}
	for name, p := range palettes {
		for i, entry := range paletteEntries(p) {
			if entry == "" {
				t.Fatalf("palette %q entry %d is empty", name, i)
			}
			if entry[0] != 0x1b {
				t.Fatalf("palette %q entry %d does not start with ESC: %q", name, i, entry)
			}
		}
	}
}

func TestDefaultPaletteDistinguishesSeverities(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	names := []string{"trace", "debug", "info", "warn", "error", "critical"}
	for i, entry := range paletteEntries(PaletteDefault) {
		if prev, dup := seen[entry]; dup {
			t.Fatalf("levels %s and %s share sequence %q", prev, names[i], entry)
		}
		seen[entry] = names[i]
	}
}
