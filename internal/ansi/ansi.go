// Package ansi holds terminal color palette presets for JSON token classes.
// Values are lipgloss-compatible color strings: ANSI 256 indices or hex.
// An empty string means "no color" for that class.
package ansi

// Palette assigns a color to each token class the colorizer distinguishes.
type Palette struct {
	Key         string
	String      string
	Num         string
	Bool        string
	Nil         string
	Brackets    string
	Punctuation string
	Comment     string
}

// PaletteJQDefault approximates jq's default JQ_COLORS: green strings, blue
// keys, plain numbers and booleans, dim null.
var PaletteJQDefault = Palette{
	Key:         "12",
	String:      "2",
	Nil:         "8",
	Brackets:    "15",
	Punctuation: "15",
	Comment:     "8",
}

// PaletteDefault is a 16-color friendly scheme.
var PaletteDefault = Palette{
	Key:         "6",
	String:      "12",
	Num:         "5",
	Bool:        "3",
	Nil:         "8",
	Brackets:    "8",
	Punctuation: "8",
	Comment:     "8",
}

// PaletteDoomGruvbox echoes doom-gruvbox colours with earthy reds and ambers.
var PaletteDoomGruvbox = Palette{
	Key:         "214",
	String:      "178",
	Num:         "108",
	Bool:        "142",
	Nil:         "101",
	Brackets:    "172",
	Punctuation: "101",
	Comment:     "95",
}

// PaletteDoomDracula mirrors doom-dracula with pink, purple, and cyan accents.
var PaletteDoomDracula = Palette{
	Key:         "219",
	String:      "141",
	Num:         "111",
	Bool:        "81",
	Nil:         "240",
	Brackets:    "147",
	Punctuation: "95",
	Comment:     "60",
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Key:         "153",
	String:      "152",
	Num:         "109",
	Bool:        "115",
	Nil:         "245",
	Brackets:    "110",
	Punctuation: "245",
	Comment:     "103",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues, violets, and warm highlights.
var PaletteTokyoNight = Palette{
	Key:         "69",
	String:      "110",
	Num:         "176",
	Bool:        "117",
	Nil:         "244",
	Brackets:    "74",
	Punctuation: "244",
	Comment:     "239",
}

// PaletteMonokaiVibrant supplies a Monokai-inspired mix of neon yellows and minty greens.
var PaletteMonokaiVibrant = Palette{
	Key:         "229",
	String:      "121",
	Num:         "198",
	Bool:        "118",
	Nil:         "59",
	Brackets:    "141",
	Punctuation: "59",
	Comment:     "240",
}

// PaletteSolarizedNightfall adapts Solarized Night with teal highlights and amber warnings.
var PaletteSolarizedNightfall = Palette{
	Key:         "37",
	String:      "86",
	Num:         "61",
	Bool:        "65",
	Nil:         "239",
	Brackets:    "33",
	Punctuation: "239",
	Comment:     "238",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha with soft pastels.
var PaletteCatppuccinMocha = Palette{
	Key:         "217",
	String:      "183",
	Num:         "147",
	Bool:        "152",
	Nil:         "244",
	Brackets:    "182",
	Punctuation: "244",
	Comment:     "240",
}

// PaletteOneDarkAurora reflects the One Dark Aurora theme with cyan, violet, and crimson tones.
var PaletteOneDarkAurora = Palette{
	Key:         "110",
	String:      "147",
	Num:         "141",
	Bool:        "115",
	Nil:         "59",
	Brackets:    "75",
	Punctuation: "59",
	Comment:     "240",
}
