package fracture

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pkt.systems/fracture/internal/ansi"
)

// ColorPalette configures the Lip Gloss styles for each JSON token class.
type ColorPalette struct {
	Key         lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	True        lipgloss.Style
	False       lipgloss.Style
	Null        lipgloss.Style
	Brackets    lipgloss.Style
	Punctuation lipgloss.Style
	Comment     lipgloss.Style
}

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName:    ansi.PaletteJQDefault,
	"jq":                  ansi.PaletteJQDefault,
	"classic":             ansi.PaletteDefault,
	"catppuccin-mocha":    ansi.PaletteCatppuccinMocha,
	"doom-dracula":        ansi.PaletteDoomDracula,
	"doom-gruvbox":        ansi.PaletteDoomGruvbox,
	"doom-nord":           ansi.PaletteDoomNord,
	"monokai-vibrant":     ansi.PaletteMonokaiVibrant,
	"one-dark-aurora":     ansi.PaletteOneDarkAurora,
	"solarized-nightfall": ansi.PaletteSolarizedNightfall,
	"tokyo-night":         ansi.PaletteTokyoNight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette looks up a palette by name and binds it to the renderer so
// colors degrade to the terminal's capabilities. The name "none" (and an
// unset enableColor) yields styles that render text unchanged.
func ResolvePalette(name string, renderer *lipgloss.Renderer, enableColor bool) (ColorPalette, error) {
	if strings.TrimSpace(name) == "" {
		name = paletteDefaultName
	}
	name = strings.ToLower(strings.TrimSpace(name))

	if name == paletteNoneName {
		return NoColorPalette(), nil
	}

	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)",
			name, strings.Join(PaletteNames(), ", "))
	}
	if !enableColor {
		return NoColorPalette(), nil
	}
	return paletteFromAnsi(ap, renderer), nil
}

func paletteFromAnsi(ap ansi.Palette, renderer *lipgloss.Renderer) ColorPalette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	style := func(color string) lipgloss.Style {
		s := renderer.NewStyle()
		if color != "" {
			s = s.Foreground(lipgloss.Color(color))
		}
		return s
	}

	brackets := ap.Brackets
	if brackets == "" {
		brackets = ap.Nil
	}
	punct := ap.Punctuation
	if punct == "" {
		punct = brackets
	}

	return ColorPalette{
		Key:         style(ap.Key),
		String:      style(ap.String),
		Number:      style(ap.Num),
		True:        style(ap.Bool),
		False:       style(ap.Bool),
		Null:        style(ap.Nil),
		Brackets:    style(brackets),
		Punctuation: style(punct),
		Comment:     style(ap.Comment),
	}
}

// DefaultColorPalette returns a VS Code-inspired theme tuned for Lip Gloss.
// The renderer governs how colors degrade on limited terminals.
func DefaultColorPalette(renderer *lipgloss.Renderer) ColorPalette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	return ColorPalette{
		Key:         renderer.NewStyle().Foreground(lipgloss.Color("#61AFEF")).Bold(true),
		String:      renderer.NewStyle().Foreground(lipgloss.Color("#98C379")),
		Number:      renderer.NewStyle().Foreground(lipgloss.Color("#D19A66")),
		True:        renderer.NewStyle().Foreground(lipgloss.Color("#56B6C2")),
		False:       renderer.NewStyle().Foreground(lipgloss.Color("#56B6C2")),
		Null:        renderer.NewStyle().Foreground(lipgloss.Color("#5C6370")).Faint(true),
		Brackets:    renderer.NewStyle().Foreground(lipgloss.Color("#ABB2BF")).Bold(true),
		Punctuation: renderer.NewStyle().Foreground(lipgloss.Color("#ABB2BF")),
		Comment:     renderer.NewStyle().Foreground(lipgloss.Color("#5C6370")).Italic(true),
	}
}

// NoColorPalette disables all styling while still routing through lipgloss.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}
