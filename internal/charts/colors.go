package charts

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrInvalidConfiguration is returned when a palette cannot be used.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Palette is an ordered list of color tokens (hex strings).
type Palette []string

// SeriesPalette is Paul Tol's qualitative color palette, designed for colorblind accessibility.
// See: https://personal.sron.nl/~pault/
var SeriesPalette = Palette{
	"#4477AA", // Blue
	"#EE6677", // Rose
	"#228833", // Green
	"#CCBB44", // Olive/Yellow
	"#66CCEE", // Cyan
	"#AA3377", // Purple
	"#BBBBBB", // Grey
	"#EE8866", // Orange
	"#44BB99", // Teal
	"#FFAABB", // Pink
}

var palettes = map[string]Palette{
	"tol":        SeriesPalette,
	"category10": splitHex("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf"),
	"tableau10":  splitHex("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab"),
}

func splitHex(s string) Palette {
	p := make(Palette, 0, len(s)/6)
	for i := 0; i+6 <= len(s); i += 6 {
		p = append(p, "#"+strings.ToUpper(s[i:i+6]))
	}
	return p
}

// PaletteNames returns the names accepted by PaletteByName, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PaletteByName looks up a built-in palette. The empty name selects SeriesPalette.
func PaletteByName(name string) (Palette, error) {
	if name == "" {
		return SeriesPalette, nil
	}
	p, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown palette %q (want one of %s)",
			ErrInvalidConfiguration, name, strings.Join(PaletteNames(), ", "))
	}
	return p, nil
}

// AxisColor is the color used for chart axes.
var AxisColor = lipgloss.Color("#CCBB44") // Olive/Yellow - high visibility

// LabelColor is the color used for chart labels.
var LabelColor = lipgloss.Color("#66CCEE") // Cyan - good contrast

// Color returns the color for a given series index, cycling through the palette.
func (p Palette) Color(index int) lipgloss.Color {
	return lipgloss.Color(p[index%len(p)])
}

// Style returns a lipgloss style with the foreground color for the given series index.
func (p Palette) Style(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Color(index))
}

// Assign picks a color for every left and right axis series.
//
// Left series take palette colors by position. Right series first take the
// colors the left axis left unused, in palette order; once those run out they
// continue cycling the full palette from index len(left)+j.
// Series are matched by position, so a name appearing on both axes gets two
// independent colors.
func (p Palette) Assign(left, right []string) (leftColors, rightColors []string, err error) {
	if len(p) == 0 {
		return nil, nil, fmt.Errorf("%w: empty palette", ErrInvalidConfiguration)
	}

	used := make(map[string]bool, len(left))
	leftColors = make([]string, len(left))
	for i := range left {
		c := p[i%len(p)]
		leftColors[i] = c
		used[c] = true
	}

	remaining := make([]string, 0, len(p))
	for _, c := range p {
		if !used[c] {
			remaining = append(remaining, c)
		}
	}

	rightColors = make([]string, len(right))
	for j := range right {
		if j < len(remaining) {
			rightColors[j] = remaining[j]
			continue
		}
		rightColors[j] = p[(len(left)+j)%len(p)]
	}
	return leftColors, rightColors, nil
}
