package ask

import "io"

// mockTerminal implements terminalInterface for tests.
//
// It replays a pre-configured input sequence, so a whole question session
// (typing, editing keys, escape sequences, Enter) can be scripted as one
// string, and it records raw mode transitions for verification.
type mockTerminal struct {
	input        []rune // Pre-configured input sequence for testing
	inputPos     int    // Current position in the input sequence
	rawMode      bool   // Track raw mode state for test verification
	rawEntered   int    // Number of SetRaw calls
	restored     int    // Number of Restore calls
	terminalSize [2]int // Fixed terminal dimensions [width, height]
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	m.rawEntered++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restored++
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	return nil
}

// remaining returns the scripted input that has not been read yet.
func (m *mockTerminal) remaining() string {
	return string(m.input[m.inputPos:])
}
