package ask

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Screen is the drawable region a question is rendered into. The prompter only
// ever draws on a single row of it; hosts embedding the prompter in their own
// toolkit implement Screen on top of their window type.
type Screen interface {
	// WriteAt draws text starting at row/col using the given style.
	WriteAt(row, col int, text string, style Style) error
	// MoveCursor places the visible cursor.
	MoveCursor(row, col int) error
	// Beep emits an audible or visual alert.
	Beep()
	// ShowHelp displays text transiently and returns once it is dismissed.
	ShowHelp(text string) error
}

// renderer draws a Screen on an ANSI terminal using relative cursor movement.
//
// Rows are counted from the line the cursor was on when the renderer was
// created, so the prompt works inline in a normal shell session instead of
// taking over the whole screen. The renderer tracks where it left the cursor
// and moves from there:
//   - \x1b[<n>A / \x1b[<n>B: Move cursor up/down n lines
//   - \r then \x1b[<n>C: Move to column n
//   - \x1b[J: Clear from cursor to end of screen (used to drop help text)
//
// Help text is markdown rendered with glamour, drawn below the prompt row and
// removed again after the next key press.
type renderer struct {
	output      io.Writer               // Target output writer (typically stdout or colorable wrapper)
	colorScheme *ColorScheme            // Color configuration for themed rendering
	profile     termenv.Profile         // Color capability of the output
	width       func() int              // Current terminal width for wrapping help text
	waitKey     func() error            // Blocks until a key dismisses the help text; nil returns immediately
	markdown    func(string, int) (string, error)
	row, col    int // Where the cursor was left
}

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme, profile termenv.Profile) *renderer {
	if colorScheme == nil {
		colorScheme = ThemeDefault
	}
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
		profile:     profile,
		width:       func() int { return 80 },
		markdown:    renderMarkdown(profile),
	}
}

// WriteAt implements Screen.
func (r *renderer) WriteAt(row, col int, text string, style Style) error {
	if err := r.MoveCursor(row, col); err != nil {
		return err
	}
	if _, err := fmt.Fprint(r.output, r.styled(text, style)); err != nil {
		return err
	}
	r.col += len([]rune(text))
	return nil
}

// MoveCursor implements Screen.
func (r *renderer) MoveCursor(row, col int) error {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	var seq strings.Builder
	switch {
	case row < r.row:
		fmt.Fprintf(&seq, "\x1b[%dA", r.row-row)
	case row > r.row:
		fmt.Fprintf(&seq, "\x1b[%dB", row-r.row)
	}
	seq.WriteString("\r")
	if col > 0 {
		fmt.Fprintf(&seq, "\x1b[%dC", col)
	}
	if _, err := fmt.Fprint(r.output, seq.String()); err != nil {
		return err
	}
	r.row, r.col = row, col
	return nil
}

// Beep implements Screen.
func (r *renderer) Beep() {
	fmt.Fprint(r.output, "\a")
}

// ShowHelp implements Screen.
//
// The help text is drawn on the lines below the cursor row; after the next key
// press those lines are cleared and the cursor goes back where it was.
func (r *renderer) ShowHelp(text string) error {
	rendered, err := r.markdown(text, r.width())
	if err != nil || strings.TrimSpace(rendered) == "" {
		rendered = text
	}
	lines := strings.Split(strings.Trim(rendered, "\n"), "\n")
	if r.waitKey != nil {
		lines = append(lines, "(press any key)")
	}

	row, col := r.row, r.col
	for _, line := range lines {
		if _, err := fmt.Fprint(r.output, "\r\n\x1b[K"); err != nil {
			return err
		}
		if _, err := fmt.Fprint(r.output, r.styled(line, StyleHelp)); err != nil {
			return err
		}
	}
	// Output scrolled by len(lines); the prompt row is that far above us now
	r.row = row + len(lines)
	if err := r.MoveCursor(row, col); err != nil {
		return err
	}

	if r.waitKey != nil {
		if err := r.waitKey(); err != nil {
			return err
		}
	}
	return r.clearBelow()
}

// newLine moves the cursor to the start of the line below the prompt row, so
// whatever the host prints next does not overwrite the answered question.
func (r *renderer) newLine() error {
	if _, err := fmt.Fprint(r.output, "\r\n"); err != nil {
		return err
	}
	r.row, r.col = 0, 0
	return nil
}

// clearBelow erases every line under the cursor row and puts the cursor back.
func (r *renderer) clearBelow() error {
	row, col := r.row, r.col
	if _, err := fmt.Fprint(r.output, "\x1b[1B\r\x1b[J\x1b[1A"); err != nil {
		return err
	}
	r.col = 0
	return r.MoveCursor(row, col)
}

func (r *renderer) styled(text string, style Style) string {
	c, ok := r.colorScheme.color(style)
	if !ok || text == "" || strings.TrimSpace(text) == "" {
		return text
	}
	return c.Styled(r.profile, text)
}

// renderMarkdown returns a glamour based markdown renderer. Terminals without
// color get glamour's ascii style.
func renderMarkdown(profile termenv.Profile) func(string, int) (string, error) {
	return func(text string, width int) (string, error) {
		style := glamour.WithAutoStyle()
		if profile == termenv.Ascii {
			style = glamour.WithStandardStyle("ascii")
		}
		if width <= 0 {
			width = 80
		}
		tr, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width-2))
		if err != nil {
			return "", err
		}
		return tr.Render(text)
	}
}
