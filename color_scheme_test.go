package ask

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#00ff00", ThemeDefault.Prompt.Hex())
	assert.Equal(t, "#0077bb", ThemeLight.Prompt.Hex())
	assert.Equal(t, "#000000", Color{}.Hex())
}

func TestColorStyled(t *testing.T) {
	t.Parallel()

	bold := Color{R: 255, G: 0, B: 0, Bold: true}

	assert.Equal(t, "text", bold.Styled(termenv.Ascii, "text"))

	styled := bold.Styled(termenv.TrueColor, "text")
	assert.Contains(t, styled, "38;2;255;0;0")
	assert.Contains(t, styled, "1")
	assert.Contains(t, styled, "text")

	plain := Color{R: 1, G: 2, B: 3}.Styled(termenv.TrueColor, "text")
	assert.Contains(t, plain, "38;2;1;2;3")
	assert.NotEqual(t, styled, plain)
}

func TestColorSchemeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style Style
		want  Color
		ok    bool
	}{
		{StylePrompt, ThemeDark.Prompt, true},
		{StyleInput, ThemeDark.Input, true},
		{StyleMessage, ThemeDark.Message, true},
		{StyleHelp, ThemeDark.Help, true},
		{StylePlain, Color{}, false},
	}

	for _, tt := range tests {
		got, ok := ThemeDark.color(tt.style)
		assert.Equal(t, tt.ok, ok, "style %d", tt.style)
		assert.Equal(t, tt.want, got, "style %d", tt.style)
	}
}

func TestThemes(t *testing.T) {
	t.Parallel()

	assert.Len(t, Themes, 4)
	for name, scheme := range Themes {
		assert.Equal(t, name, scheme.Name)
	}
	assert.Same(t, ThemeAccessible, Themes["accessible"])
}
