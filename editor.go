package ask

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const noHelpText = "No help provided"

// lineRegion is the part of a screen row that holds the text being edited. It
// remembers how much it drew last time so that a shorter text blanks out the
// leftovers.
type lineRegion struct {
	screen Screen
	row    int
	col    int
	drawn  int
}

// draw shows text in the region and places the cursor cursor columns in.
func (l *lineRegion) draw(text string, cursor int) error {
	width := len([]rune(text))
	if err := l.screen.WriteAt(l.row, l.col, text, StyleInput); err != nil {
		return err
	}
	if pad := l.drawn - width; pad > 0 {
		if err := l.screen.WriteAt(l.row, l.col+width, strings.Repeat(" ", pad), StylePlain); err != nil {
			return err
		}
	}
	l.drawn = width
	return l.screen.MoveCursor(l.row, l.col+cursor)
}

// LineEditor reads one line of text from a KeySource, echoing it on a single
// row of a Screen.
//
// Key bindings come from a KeyMap (NewDefaultKeyMap when nil). Printable ASCII
// keys without a binding are typed into the buffer; every other unbound key
// beeps.
type LineEditor struct {
	screen  Screen
	keys    KeySource
	keyMap  *KeyMap
	row     int
	message string
	prompt  string
	help    string
	width   int // Columns used by the last Edit
}

// NewLineEditor creates an editor drawing on row of screen.
func NewLineEditor(screen Screen, keys KeySource, keyMap *KeyMap, row int) *LineEditor {
	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}
	return &LineEditor{
		screen: screen,
		keys:   keys,
		keyMap: keyMap,
		row:    row,
	}
}

// SetPrompt sets the text drawn in front of the edited text.
func (e *LineEditor) SetPrompt(prompt string) {
	e.prompt = prompt
}

// SetMessage sets a message drawn at column 0, before the prompt. It is used
// to explain why the previous answer was rejected.
func (e *LineEditor) SetMessage(message string) {
	e.message = message
}

// Width returns how many columns of the row the last Edit used.
func (e *LineEditor) Width() int {
	return e.width
}

// SetHelp sets the text shown for ActionHelp.
func (e *LineEditor) SetHelp(help string) {
	e.help = help
}

// Edit lets the user edit initial and returns the result.
//
// Editing ends when the user submits, or as soon as typing makes the text
// maxLen characters long. A key that would make the text longer than maxLen
// beeps instead. Submitting an empty line returns initial; with maxLen 1
// the text starts empty.
// complete may be nil, in which case Tab beeps.
//
// Edit returns ErrAborted when the user aborts and ErrEOF when the key
// source is exhausted.
func (e *LineEditor) Edit(initial string, maxLen int, echo EchoMode, complete CompletionFunc) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultLimit
	}
	s := &editSession{
		editor:   e,
		region:   &lineRegion{screen: e.screen, row: e.row, col: len([]rune(e.message)) + len([]rune(e.prompt))},
		echo:     echo,
		maxLen:   maxLen,
		complete: complete,
		insert:   true,
	}
	s.setBuffer(initial)
	initial = string(s.buffer)
	if maxLen == 1 {
		// A single key question starts empty; initial is only the Enter fallback
		s.setBuffer("")
	}
	defer func() {
		e.width = s.region.col + s.region.drawn
	}()

	if err := s.drawPrompt(); err != nil {
		return "", err
	}
	if err := s.redraw(); err != nil {
		return "", err
	}

	for {
		key, err := e.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read key: %w", err)
		}

		action := e.keyMap.GetAction(key)
		if action != ActionComplete {
			s.resetCompletion()
		}

		switch action {
		case ActionSubmit:
			if len(s.buffer) == 0 {
				return initial, nil
			}
			return string(s.buffer), nil

		case ActionAbort:
			return "", ErrAborted

		case ActionBackspace:
			if s.cursor == 0 {
				e.screen.Beep()
				continue
			}
			s.buffer = append(s.buffer[:s.cursor-1], s.buffer[s.cursor:]...)
			s.cursor--

		case ActionDeleteChar:
			if s.cursor >= len(s.buffer) {
				e.screen.Beep()
				continue
			}
			s.buffer = append(s.buffer[:s.cursor], s.buffer[s.cursor+1:]...)

		case ActionMoveLeft:
			if s.cursor > 0 {
				s.cursor--
			}

		case ActionMoveRight:
			if s.cursor < len(s.buffer) {
				s.cursor++
			}

		case ActionMoveHome:
			s.cursor = 0

		case ActionMoveEnd:
			s.cursor = len(s.buffer)

		case ActionKillToEnd:
			s.buffer = s.buffer[:s.cursor]

		case ActionToggleInsert:
			s.insert = !s.insert

		case ActionComplete:
			if !s.nextCompletion() {
				e.screen.Beep()
				continue
			}

		case ActionHelp:
			help := e.help
			if help == "" {
				help = noHelpText
			}
			if err := e.screen.ShowHelp(help); err != nil {
				return "", fmt.Errorf("failed to show help: %w", err)
			}
			if err := s.drawPrompt(); err != nil {
				return "", err
			}

		default:
			if !key.IsPrintable() || !s.canType() {
				e.screen.Beep()
				continue
			}
			s.typeRune(rune(key))
			if len(s.buffer) >= s.maxLen {
				if err := s.redraw(); err != nil {
					return "", err
				}
				return string(s.buffer), nil
			}
		}

		if err := s.redraw(); err != nil {
			return "", err
		}
	}
}

// editSession is the state of one Edit call.
type editSession struct {
	editor   *LineEditor
	region   *lineRegion
	echo     EchoMode
	maxLen   int
	complete CompletionFunc

	buffer []rune
	cursor int
	insert bool

	// Tab cycling: the text before the first Tab and the candidates not shown yet
	completing bool
	original   string
	queue      []string
}

func (s *editSession) setBuffer(text string) {
	runes := []rune(text)
	if len(runes) > s.maxLen {
		runes = runes[:s.maxLen]
	}
	s.buffer = runes
	s.cursor = len(runes)
}

// canType reports whether typing a character keeps the text within maxLen.
func (s *editSession) canType() bool {
	grows := s.insert || s.cursor >= len(s.buffer)
	return !grows || len(s.buffer) < s.maxLen
}

// typeRune inserts r at the cursor, or replaces the character under the cursor
// in overwrite mode. Overwriting at the end of the text appends.
func (s *editSession) typeRune(r rune) {
	if s.insert || s.cursor >= len(s.buffer) {
		s.buffer = append(s.buffer[:s.cursor], append([]rune{r}, s.buffer[s.cursor:]...)...)
	} else {
		s.buffer[s.cursor] = r
	}
	s.cursor++
}

// nextCompletion replaces the text with the next candidate. When the
// candidates run out the original text comes back and the next Tab starts
// over. It returns false when there is nothing to complete.
func (s *editSession) nextCompletion() bool {
	if !s.completing {
		if s.complete == nil {
			return false
		}
		text := string(s.buffer)
		queue := s.complete(Document{Text: text, CursorPosition: len(string(s.buffer[:s.cursor]))})
		if len(queue) == 0 {
			return false
		}
		s.completing = true
		s.original = text
		s.queue = queue
	}

	if len(s.queue) == 0 {
		s.setBuffer(s.original)
		s.resetCompletion()
		return true
	}
	s.setBuffer(s.queue[0])
	s.queue = s.queue[1:]
	return true
}

func (s *editSession) resetCompletion() {
	s.completing = false
	s.original = ""
	s.queue = nil
}

func (s *editSession) drawPrompt() error {
	e := s.editor
	if e.message != "" {
		if err := e.screen.WriteAt(e.row, 0, e.message, StyleMessage); err != nil {
			return err
		}
	}
	if e.prompt == "" {
		return nil
	}
	return e.screen.WriteAt(e.row, len([]rune(e.message)), e.prompt, StylePrompt)
}

func (s *editSession) redraw() error {
	cursor := s.cursor
	if s.echo.hidden {
		cursor = 0
	}
	return s.region.draw(s.echo.render(s.buffer), cursor)
}
