package ask

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// terminalInterface abstracts terminal operations for testability and cross-platform compatibility.
//
// Implementations:
//   - realTerminal: Uses go-tty for actual terminal interaction
//   - mockTerminal: Replays a scripted input string for tests
type terminalInterface interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore original terminal settings
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Close() error                         // Clean up resources and prevent fd leaks
}

// realTerminal implements terminalInterface using go-tty for input and
// golang.org/x/term for raw mode handling.
//
//   - Double-close protection: The 'closed' flag prevents Windows panics on double Close()
//   - Safe size fallbacks: Returns 80x24 if terminal size detection fails
//   - Raw mode state is captured on every SetRaw so Restore always returns to
//     what the user had before the question was asked
type realTerminal struct {
	tty           *tty.TTY    // TTY handle from go-tty for cross-platform terminal operations
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	stdinFd       int         // File descriptor for stdin for raw mode management
	originalState *term.State // Original terminal state to restore on exit
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		// Reset the state so that SetRaw can capture a fresh baseline next time
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}

// Terminal is the default collaborator of a Prompter: it reads keys from the
// controlling terminal and draws the prompt line on standard output. It
// implements both KeySource and Screen.
type Terminal struct {
	*renderer
	term terminalInterface
	keys *runeKeySource
}

// OpenTerminal opens the controlling terminal. Close must be called when the
// terminal is no longer needed.
func OpenTerminal(colorScheme *ColorScheme) (*Terminal, error) {
	rt, err := newRealTerminal()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return newTerminal(rt, output, colorScheme, outputProfile(os.Stdout)), nil
}

func newTerminal(t terminalInterface, output io.Writer, colorScheme *ColorScheme, profile termenv.Profile) *Terminal {
	tm := &Terminal{
		renderer: newRenderer(output, colorScheme, profile),
		term:     t,
		keys:     newRuneKeySource(t),
	}
	tm.renderer.width = func() int {
		w, _, _ := t.Size()
		return w
	}
	tm.renderer.waitKey = func() error {
		_, err := tm.keys.ReadKey()
		return err
	}
	return tm
}

// ReadKey implements KeySource.
func (t *Terminal) ReadKey() (Key, error) {
	return t.keys.ReadKey()
}

// SetRaw switches the terminal to raw mode.
func (t *Terminal) SetRaw() error {
	return t.term.SetRaw()
}

// Restore returns the terminal to the mode it had before SetRaw.
func (t *Terminal) Restore() error {
	return t.term.Restore()
}

// Close releases the terminal. It is safe to call Close multiple times.
func (t *Terminal) Close() error {
	return t.term.Close()
}

// outputProfile picks the color profile for f: Ascii when f is not a
// terminal, otherwise whatever the environment (NO_COLOR, COLORTERM, ...)
// allows.
func outputProfile(f *os.File) termenv.Profile {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}
