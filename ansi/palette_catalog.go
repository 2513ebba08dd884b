package ansi

import (
	"sort"
	"strings"
)

var namedPalettes = map[string]*Palette{
	"default":        &PaletteDefault,
	"disabled":       &PaletteDisabled,
	"dracula":        &PaletteDracula,
	"gruvbox":        &PaletteGruvbox,
	"monokai":        &PaletteMonokai,
	"nord":           &PaletteNord,
	"solarized-dark": &PaletteSolarizedDark,
	"tokyo-night":    &PaletteTokyoNight,
}

var paletteAliases = map[string]string{
	"none":          "disabled",
	"off":           "disabled",
	"solarizeddark": "solarized-dark",
	"tokyonight":    "tokyo-night",
}

// PaletteByName resolves a built-in palette by its canonical name. Names are
// case-insensitive and support compatibility aliases; unknown names resolve
// to PaletteDefault.
func PaletteByName(name string) *Palette {
	normalized := normalizePaletteName(name)
	if normalized == "" {
		return &PaletteDefault
	}
	if canonical, ok := paletteAliases[normalized]; ok {
		normalized = canonical
	}
	if palette, ok := namedPalettes[normalized]; ok && palette != nil {
		return palette
	}
	return &PaletteDefault
}

// AvailablePaletteNames returns canonical built-in palette names in sorted
// order.
func AvailablePaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizePaletteName(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if strings.HasPrefix(s, "palette-") {
		s = strings.TrimPrefix(s, "palette-")
	} else if strings.HasPrefix(s, "palette") {
		s = strings.TrimPrefix(s, "palette")
		s = strings.TrimLeft(s, "-")
	}
	return s
}
