package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveChoice(t *testing.T) {
	t.Parallel()

	choices := []string{"go", "gopher", "rust", "ruby"}

	tests := []struct {
		name     string
		answer   string
		want     string
		wantKind ResponseKey
	}{
		{name: "exact", answer: "rust", want: "rust"},
		{name: "exact beats prefix", answer: "go", want: "go"},
		{name: "unique prefix", answer: "gop", want: "gopher"},
		{name: "ambiguous", answer: "ru", wantKind: ResponseAmbiguousCompletion},
		{name: "empty is ambiguous", answer: "", wantKind: ResponseAmbiguousCompletion},
		{name: "no match", answer: "java", wantKind: ResponseNoCompletion},
		{name: "case sensitive", answer: "Rust", wantKind: ResponseNoCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveChoice(tt.answer, choices)
			if tt.wantKind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var ie *InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.wantKind, ie.Kind)
			assert.Equal(t, tt.answer, ie.Answer)
		})
	}
}

func TestCompareValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    any
		want    int
		wantErr bool
	}{
		{name: "ints", a: 1, b: 2, want: -1},
		{name: "int and float", a: 3, b: 2.5, want: 1},
		{name: "int64 and uint8", a: int64(7), b: uint8(7), want: 0},
		{name: "strings", a: "b", b: "a", want: 1},
		{name: "symbol and string", a: SymbolValue("a"), b: "a", want: 0},
		{name: "number and string", a: 1, b: "1", wantErr: true},
		{name: "unordered", a: []int{1}, b: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := compareValues(tt.a, tt.b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionInRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options []QuestionOption
		value   any
		want    bool
	}{
		{name: "no bounds", value: 5, want: true},
		{name: "above is strict", options: []QuestionOption{WithAbove(5)}, value: 5, want: false},
		{name: "above", options: []QuestionOption{WithAbove(5)}, value: 6, want: true},
		{name: "below is strict", options: []QuestionOption{WithBelow(5)}, value: 5, want: false},
		{name: "between", options: []QuestionOption{WithAbove(0), WithBelow(10)}, value: 9.5, want: true},
		{name: "member", options: []QuestionOption{WithIn(1, 2, 3)}, value: 2, want: true},
		{name: "member across number types", options: []QuestionOption{WithIn(1.0, 2.0)}, value: 2, want: true},
		{name: "not a member", options: []QuestionOption{WithIn(1, 2, 3)}, value: 4, want: false},
		{name: "string member", options: []QuestionOption{WithIn("a", "b")}, value: "b", want: true},
		{name: "bounds and membership", options: []QuestionOption{WithAbove(1), WithIn(1, 2)}, value: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := mustQuestion(t, "Q?  ", Float{}, tt.options...)
			got, err := q.inRange(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionCheckOrder(t *testing.T) {
	t.Parallel()

	q := mustQuestion(t, "Q?  ", Integer{},
		WithValidationPattern(`^\S+$`),
		WithAbove(10),
	)

	tests := []struct {
		answer   string
		wantKind ResponseKey
	}{
		{answer: "1 2", wantKind: ResponseNotValid},
		{answer: "x", wantKind: ResponseInvalidType},
		{answer: "99999999999999999999", wantKind: ResponseInvalidType},
		{answer: "5", wantKind: ResponseNotInRange},
	}
	for _, tt := range tests {
		_, err := q.check(tt.answer)
		var ie *InputError
		require.ErrorAs(t, err, &ie, "answer %q", tt.answer)
		assert.Equal(t, tt.wantKind, ie.Kind, "answer %q", tt.answer)
	}

	got, err := q.check("11")
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}
