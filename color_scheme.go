package ask

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Style selects which color of the scheme is used to draw a piece of text.
type Style int

// Styles used by the line region
const (
	StylePlain   Style = iota // No color at all (used to blank out text)
	StylePrompt               // The question text
	StyleInput                // What the user typed (or its mask)
	StyleMessage              // Response messages such as "not valid"
	StyleHelp                 // Help text shown with Alt+H
)

// ColorScheme defines the color configuration for the prompt line.
type ColorScheme struct {
	Name    string `json:"name" yaml:"name"`
	Prompt  Color  `json:"prompt" yaml:"prompt"`
	Input   Color  `json:"input" yaml:"input"`
	Message Color  `json:"message" yaml:"message"`
	Help    Color  `json:"help" yaml:"help"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r" yaml:"r"`
	G    uint8 `json:"g" yaml:"g"`
	B    uint8 `json:"b" yaml:"b"`
	Bold bool  `json:"bold" yaml:"bold"`
}

// ThemeDefault is the default color scheme with green prompt and white input
var ThemeDefault = &ColorScheme{
	Name:    "default",
	Prompt:  Color{R: 0, G: 255, B: 0, Bold: true},
	Input:   Color{R: 255, G: 255, B: 255, Bold: true},
	Message: Color{R: 255, G: 95, B: 95, Bold: true},
	Help:    Color{R: 200, G: 200, B: 200},
}

// ThemeDark is a dark theme with light blue prompt and off-white text
var ThemeDark = &ColorScheme{
	Name:    "dark",
	Prompt:  Color{R: 102, G: 217, B: 239, Bold: true},
	Input:   Color{R: 248, G: 248, B: 242},
	Message: Color{R: 255, G: 184, B: 108, Bold: true},
	Help:    Color{R: 98, G: 114, B: 164},
}

// ThemeLight is a light theme with blue prompt and dark gray text
var ThemeLight = &ColorScheme{
	Name:    "light",
	Prompt:  Color{R: 0, G: 119, B: 187, Bold: true},
	Input:   Color{R: 36, G: 41, B: 46},
	Message: Color{R: 215, G: 58, B: 73, Bold: true},
	Help:    Color{R: 88, G: 96, B: 105},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:    "accessible",
	Prompt:  Color{R: 0, G: 114, B: 178, Bold: true},
	Input:   Color{R: 255, G: 255, B: 255},
	Message: Color{R: 230, G: 159, B: 0, Bold: true},
	Help:    Color{R: 204, G: 204, B: 204},
}

// Themes lists the built-in color schemes by name.
var Themes = map[string]*ColorScheme{
	ThemeDefault.Name:    ThemeDefault,
	ThemeDark.Name:       ThemeDark,
	ThemeLight.Name:      ThemeLight,
	ThemeAccessible.Name: ThemeAccessible,
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Styled wraps text in the escape sequences for c, degraded to what profile
// supports. The Ascii profile returns text unchanged.
func (c Color) Styled(profile termenv.Profile, text string) string {
	if profile == termenv.Ascii {
		return text
	}
	s := profile.String(text).Foreground(profile.Color(c.Hex()))
	if c.Bold {
		s = s.Bold()
	}
	return s.String()
}

// color returns the scheme color used for style.
func (cs *ColorScheme) color(style Style) (Color, bool) {
	switch style {
	case StylePrompt:
		return cs.Prompt, true
	case StyleInput:
		return cs.Input, true
	case StyleMessage:
		return cs.Message, true
	case StyleHelp:
		return cs.Help, true
	default:
		return Color{}, false
	}
}
