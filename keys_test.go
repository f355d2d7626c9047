package ask

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuneKeySourceReadKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Key
	}{
		{name: "printable", input: "aZ~", want: []Key{'a', 'Z', '~'}},
		{name: "control keys", input: "\x01\x05\x0b\r\n\x7f\t", want: []Key{KeyCtrlA, KeyCtrlE, KeyCtrlK, KeyEnter, KeyNewline, KeyBackspace, KeyTab}},
		{name: "csi arrows", input: "\x1b[A\x1b[B\x1b[C\x1b[D", want: []Key{KeyUp, KeyDown, KeyRight, KeyLeft}},
		{name: "ss3 arrows", input: "\x1bOC\x1bOD", want: []Key{KeyRight, KeyLeft}},
		{name: "home and end", input: "\x1b[H\x1b[F\x1b[1~\x1b[4~\x1bOH\x1bOF", want: []Key{KeyHome, KeyEnd, KeyHome, KeyEnd, KeyHome, KeyEnd}},
		{name: "delete", input: "\x1b[3~", want: []Key{KeyDelete}},
		{name: "alt keys", input: "\x1bh\x1bi", want: []Key{KeyAltH, KeyAltI}},
		{name: "ss3 function key", input: "\x1bOP", want: []Key{Meta('P')}},
		{name: "unknown sequence", input: "\x1b[15~x", want: []Key{KeyUnknown, 'x'}},
		{name: "modified arrow is unknown", input: "\x1b[1;5C", want: []Key{KeyUnknown}},
		{name: "lone escape", input: "\x1b", want: []Key{KeyEscape}},
		{name: "unicode", input: "é", want: []Key{Key('é')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newRuneKeySource(newMockTerminal(tt.input))
			var got []Key
			for {
				k, err := src.ReadKey()
				if errors.Is(err, io.EOF) {
					break
				}
				require.NoError(t, err)
				got = append(got, k)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyClasses(t *testing.T) {
	t.Parallel()

	assert.True(t, Key('a').IsPrintable())
	assert.True(t, Key(' ').IsPrintable())
	assert.True(t, Key('~').IsPrintable())
	assert.False(t, KeyBackspace.IsPrintable())
	assert.False(t, KeyTab.IsPrintable())
	assert.False(t, KeyUnknown.IsPrintable())
	assert.False(t, Key('é').IsPrintable())
	assert.False(t, KeyLeft.IsPrintable())
	assert.False(t, KeyAltH.IsPrintable())
}

func TestKeyMap(t *testing.T) {
	t.Parallel()

	km := NewDefaultKeyMap()

	tests := []struct {
		key  Key
		want KeyAction
	}{
		{KeyEnter, ActionSubmit},
		{KeyNewline, ActionSubmit},
		{KeyCtrlC, ActionAbort},
		{KeyCtrlG, ActionAbort},
		{KeyBackspace, ActionBackspace},
		{KeyCtrlH, ActionBackspace},
		{KeyDelete, ActionDeleteChar},
		{KeyLeft, ActionMoveLeft},
		{KeyRight, ActionMoveRight},
		{KeyCtrlA, ActionMoveHome},
		{KeyHome, ActionMoveHome},
		{KeyCtrlE, ActionMoveEnd},
		{KeyEnd, ActionMoveEnd},
		{KeyCtrlK, ActionKillToEnd},
		{KeyAltI, ActionToggleInsert},
		{KeyTab, ActionComplete},
		{KeyAltH, ActionHelp},
		{Key('a'), ActionNone},
		{KeyUp, ActionNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, km.GetAction(tt.key), "key %d", tt.key)
	}

	km.Bind(KeyUp, ActionMoveHome)
	assert.Equal(t, ActionMoveHome, km.GetAction(KeyUp))

	var nilMap *KeyMap
	assert.Equal(t, ActionNone, nilMap.GetAction(KeyEnter))
}
