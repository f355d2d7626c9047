package ask

import (
	"errors"
	"io"
)

// Key is a raw key code read from the terminal. Values 0-255 are the bytes the
// terminal sent; function keys decoded from escape sequences use the curses
// numbering above 255, and KeyUnknown (negative) marks input that could not
// be decoded.
type Key int

// Control and function keys understood by the line editor.
const (
	KeyUnknown Key = -1

	KeyCtrlA     Key = 0x01
	KeyCtrlC     Key = 0x03
	KeyCtrlE     Key = 0x05
	KeyCtrlG     Key = 0x07
	KeyCtrlH     Key = 0x08
	KeyTab       Key = 0x09
	KeyNewline   Key = 0x0a
	KeyCtrlK     Key = 0x0b
	KeyEnter     Key = 0x0d
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x7f

	KeyDown   Key = 258
	KeyUp     Key = 259
	KeyLeft   Key = 260
	KeyRight  Key = 261
	KeyHome   Key = 262
	KeyDelete Key = 330
	KeyEnd    Key = 360

	keyMetaBase Key = 0x400
)

// Meta returns the key produced by holding Alt (or pressing Escape first)
// together with r.
func Meta(r rune) Key {
	return keyMetaBase + Key(r)
}

// Alt keys bound by default
var (
	KeyAltH = Meta('h')
	KeyAltI = Meta('i')
)

// IsPrintable reports whether k is a printable ASCII character.
func (k Key) IsPrintable() bool {
	return k >= 0x20 && k <= 0x7e
}

// KeySource delivers one raw key per call, blocking until a key is available.
type KeySource interface {
	ReadKey() (Key, error)
}

// KeyAction represents the action to perform when a key is pressed
type KeyAction int

// Key action constants define the actions that can be performed when keys are pressed
const (
	ActionNone KeyAction = iota
	ActionSubmit
	ActionAbort
	ActionBackspace
	ActionDeleteChar
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd
	ActionKillToEnd
	ActionToggleInsert
	ActionComplete
	ActionHelp
)

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings map[Key]KeyAction
}

// NewDefaultKeyMap creates the default key bindings for the line editor.
//
// Default key bindings:
//   - Enter/Return: Submit input
//   - Ctrl+C, Ctrl+G: Abort the question
//   - Backspace, Ctrl+H: Delete the character before the cursor
//   - Delete: Delete the character under the cursor
//   - Left/Right: Move the cursor
//   - Ctrl+A/Home: Move to beginning of line
//   - Ctrl+E/End: Move to end of line
//   - Ctrl+K: Delete from cursor to end of line
//   - Alt+I: Toggle insert/overwrite mode
//   - Tab: Cycle through completions
//   - Alt+H: Show the question's help text
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings: make(map[Key]KeyAction),
	}

	km.bindings[KeyEnter] = ActionSubmit
	km.bindings[KeyNewline] = ActionSubmit
	km.bindings[KeyCtrlC] = ActionAbort
	km.bindings[KeyCtrlG] = ActionAbort
	km.bindings[KeyBackspace] = ActionBackspace
	km.bindings[KeyCtrlH] = ActionBackspace
	km.bindings[KeyDelete] = ActionDeleteChar
	km.bindings[KeyLeft] = ActionMoveLeft
	km.bindings[KeyRight] = ActionMoveRight
	km.bindings[KeyCtrlA] = ActionMoveHome
	km.bindings[KeyHome] = ActionMoveHome
	km.bindings[KeyCtrlE] = ActionMoveEnd
	km.bindings[KeyEnd] = ActionMoveEnd
	km.bindings[KeyCtrlK] = ActionKillToEnd
	km.bindings[KeyAltI] = ActionToggleInsert
	km.bindings[KeyTab] = ActionComplete
	km.bindings[KeyAltH] = ActionHelp

	return km
}

// Bind adds or updates a key binding.
//
// Example:
//
//	keyMap := ask.NewDefaultKeyMap()
//	// Ctrl+U also kills to the end of the line
//	keyMap.Bind(ask.Key(0x15), ask.ActionKillToEnd)
//	// F1 (ESC O P) shows help
//	keyMap.Bind(ask.Meta('P'), ask.ActionHelp)
func (km *KeyMap) Bind(key Key, action KeyAction) {
	km.bindings[key] = action
}

// GetAction returns the action for a key, or ActionNone if not bound
func (km *KeyMap) GetAction(key Key) KeyAction {
	if km == nil || km.bindings == nil {
		return ActionNone
	}
	if action, exists := km.bindings[key]; exists {
		return action
	}
	return ActionNone
}

// escapeSequences maps the bytes following ESC to function keys.
var escapeSequences = map[string]Key{
	"[A":  KeyUp,
	"[B":  KeyDown,
	"[C":  KeyRight,
	"[D":  KeyLeft,
	"[H":  KeyHome,
	"[F":  KeyEnd,
	"OA":  KeyUp,
	"OB":  KeyDown,
	"OC":  KeyRight,
	"OD":  KeyLeft,
	"OH":  KeyHome,
	"OF":  KeyEnd,
	"[1~": KeyHome,
	"[4~": KeyEnd,
	"[7~": KeyHome,
	"[8~": KeyEnd,
	"[3~": KeyDelete,
}

// runeReader is the subset of a terminal used to decode keys.
type runeReader interface {
	ReadRune() (rune, int, error)
}

// runeKeySource turns a rune stream into keys, decoding escape sequences.
type runeKeySource struct {
	in runeReader
}

func newRuneKeySource(in runeReader) *runeKeySource {
	return &runeKeySource{in: in}
}

// ReadKey implements KeySource.
func (s *runeKeySource) ReadKey() (Key, error) {
	r, _, err := s.in.ReadRune()
	if err != nil {
		return KeyUnknown, err
	}
	if r != '\x1b' {
		return Key(r), nil
	}

	next, _, err := s.in.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return KeyEscape, nil
		}
		return KeyUnknown, err
	}
	if next != '[' && next != 'O' {
		return Meta(next), nil
	}

	seq, err := s.readEscapeSequence(next)
	if err != nil {
		return KeyUnknown, err
	}
	if key, ok := escapeSequences[seq]; ok {
		return key, nil
	}
	if len(seq) == 2 && seq[0] == 'O' {
		// SS3 function keys (F1-F4) report as Meta of their final byte
		return Meta(rune(seq[1])), nil
	}
	return KeyUnknown, nil
}

// readEscapeSequence reads the rest of a CSI/SS3 sequence whose introducer
// has already been consumed.
func (s *runeKeySource) readEscapeSequence(introducer rune) (string, error) {
	seq := make([]rune, 1, 10)
	seq[0] = introducer
	for range 10 { // Limit to prevent infinite loop
		r, _, err := s.in.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		// SS3 sequences are one byte long, CSI sequences end with a byte in 0x40-0x7e
		if introducer == 'O' || (r >= 0x40 && r <= 0x7e) {
			return string(seq), nil
		}
	}
	return string(seq), nil
}
