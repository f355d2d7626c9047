package ask

import (
	"io"
	"strings"
)

// scriptedKeys is a KeySource replaying a fixed list of keys, then io.EOF.
type scriptedKeys struct {
	keys []Key
	pos  int
}

func newScriptedKeys(keys ...Key) *scriptedKeys {
	return &scriptedKeys{keys: keys}
}

func (s *scriptedKeys) ReadKey() (Key, error) {
	if s.pos >= len(s.keys) {
		return KeyUnknown, io.EOF
	}
	k := s.keys[s.pos]
	s.pos++
	return k, nil
}

// typed returns the keys produced by typing text.
func typed(text string) []Key {
	keys := make([]Key, 0, len(text))
	for _, r := range text {
		keys = append(keys, Key(r))
	}
	return keys
}

// script concatenates typed strings and single keys.
func script(parts ...any) []Key {
	var keys []Key
	for _, part := range parts {
		switch p := part.(type) {
		case string:
			keys = append(keys, typed(p)...)
		case Key:
			keys = append(keys, p)
		default:
			panic("script: unsupported part")
		}
	}
	return keys
}

type screenWrite struct {
	row, col int
	text     string
	style    Style
}

// recordingScreen is a Screen keeping the visible characters of every row.
type recordingScreen struct {
	rows      map[int][]rune
	writes    []screenWrite
	cursorRow int
	cursorCol int
	beeps     int
	helps     []string
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{rows: make(map[int][]rune)}
}

func (s *recordingScreen) WriteAt(row, col int, text string, style Style) error {
	s.writes = append(s.writes, screenWrite{row: row, col: col, text: text, style: style})
	line := s.rows[row]
	runes := []rune(text)
	for len(line) < col+len(runes) {
		line = append(line, ' ')
	}
	copy(line[col:], runes)
	s.rows[row] = line
	s.cursorRow, s.cursorCol = row, col+len(runes)
	return nil
}

func (s *recordingScreen) MoveCursor(row, col int) error {
	s.cursorRow, s.cursorCol = row, col
	return nil
}

func (s *recordingScreen) Beep() {
	s.beeps++
}

func (s *recordingScreen) ShowHelp(text string) error {
	s.helps = append(s.helps, text)
	return nil
}

// line returns what row shows, without trailing blanks.
func (s *recordingScreen) line(row int) string {
	return strings.TrimRight(string(s.rows[row]), " ")
}

// written reports whether text was ever written with style.
func (s *recordingScreen) written(text string, style Style) bool {
	for _, w := range s.writes {
		if w.text == text && w.style == style {
			return true
		}
	}
	return false
}
