package ansi_test

import (
	"fmt"

	"github.com/Montellese/spdlog/ansi"
)

func ExamplePaletteByName() {
	palette := ansi.PaletteByName("tokyo_night")
	fmt.Println(palette == &ansi.PaletteTokyoNight)

	unknown := ansi.PaletteByName("not-a-real-palette")
	fmt.Println(unknown == &ansi.PaletteDefault)

	// Output:
	// true
	// true
}

func ExampleAvailablePaletteNames() {
	for _, name := range ansi.AvailablePaletteNames() {
		fmt.Println(name)
	}

	// Output:
	// default
	// disabled
	// dracula
	// gruvbox
	// monokai
	// nord
	// solarized-dark
	// tokyo-night
}
