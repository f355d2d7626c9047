package ask

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadQuestionnaire(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "questionnaire is empty"},
		{name: "no questions", input: "title: x\n", wantErr: "questionnaire has no questions"},
		{name: "missing name", input: "questions:\n  - question: \"Q?  \"\n", wantErr: "question 1 has no name"},
		{name: "unknown field", input: "questions:\n  - name: a\n    colour: red\n", wantErr: "failed to decode questionnaire"},
		{name: "confirm must be scalar", input: "questions:\n  - name: a\n    confirm: [x]\n", wantErr: "confirm must be a bool or a string"},
		{name: "valid", input: "questions:\n  - name: a\n    question: \"A?  \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			qn, err := LoadQuestionnaire(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, qn.Questions, 1)
			assert.Equal(t, "a", qn.Questions[0].Name)
		})
	}
}

func TestLoadQuestionnaireFile(t *testing.T) {
	t.Parallel()

	qn, err := LoadQuestionnaireFile("testdata/profile.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Tell us about yourself", qn.Title)
	require.Len(t, qn.Questions, 4)
	assert.Equal(t, "Really {{.Answer}}?  ", qn.Questions[2].Confirm.Text)
	assert.True(t, qn.Questions[2].Confirm.Enabled)
	assert.Equal(t, []string{"red", "green", "blue"}, qn.Questions[2].Choices)

	for _, spec := range qn.Questions {
		_, err := spec.Build()
		assert.NoError(t, err, "question %s", spec.Name)
	}

	_, err = LoadQuestionnaireFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestConfirmSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  ConfirmSpec
	}{
		{input: "confirm: true", want: ConfirmSpec{Enabled: true}},
		{input: "confirm: false", want: ConfirmSpec{}},
		{input: "confirm: \"Sure?  \"", want: ConfirmSpec{Enabled: true, Text: "Sure?  "}},
		{input: "confirm: \"yes\"", want: ConfirmSpec{Enabled: true, Text: "yes"}},
	}

	for _, tt := range tests {
		var spec QuestionSpec
		require.NoError(t, yaml.Unmarshal([]byte(tt.input), &spec), tt.input)
		assert.Equal(t, tt.want, spec.Confirm, tt.input)
	}
}

func decodeSpec(t *testing.T, input string) QuestionSpec {
	t.Helper()

	var spec QuestionSpec
	require.NoError(t, yaml.Unmarshal([]byte(input), &spec))
	return spec
}

func TestQuestionSpecBuild(t *testing.T) {
	t.Parallel()

	t.Run("options", func(t *testing.T) {
		t.Parallel()

		q, err := decodeSpec(t, `
name: pin
question: "PIN?  "
kind: integer
echo: "*"
limit: 4
whitespace: remove
case: up
validate: '^\d+$'
above: 999
below: "0x2710"
default: "1234"
help: "Four digits."
responses:
  not_in_range: "Out of range."
  ask_on_error: ":question"
first_answer: "5678"
`).Build()
		require.NoError(t, err)

		assert.Equal(t, "PIN?  ", q.Text())
		assert.Equal(t, Integer{}, q.Kind())
		assert.Equal(t, 4, q.Limit())
		assert.Equal(t, "Four digits.", q.Help())
		def, ok := q.Default()
		assert.True(t, ok)
		assert.Equal(t, "1234", def)
		assert.Equal(t, EchoMasked('*'), q.echo)
		assert.Equal(t, WhitespaceRemove, q.whitespace)
		assert.Equal(t, CaseUp, q.letterCase)
		assert.Equal(t, 999, q.above)
		assert.Equal(t, 10000, q.below)
		assert.True(t, q.askOnErrorQ)
		assert.Equal(t, "Out of range.", q.responses[ResponseNotInRange])
		require.NotNil(t, q.firstAnswer)
		assert.Equal(t, "5678", *q.firstAnswer)
		assert.True(t, q.validatePattern.MatchString("42"))
	})

	t.Run("character and hidden echo", func(t *testing.T) {
		t.Parallel()

		q, err := decodeSpec(t, "name: key\nquestion: \"Key?  \"\necho: hidden\ncharacter: true\n").Build()
		require.NoError(t, err)
		assert.Equal(t, 1, q.Limit())
		assert.Equal(t, EchoHidden, q.echo)
	})

	t.Run("bounds follow the kind", func(t *testing.T) {
		t.Parallel()

		q, err := decodeSpec(t, "name: f\nkind: float\nabove: 1\nin: [1.5, 2]\n").Build()
		require.NoError(t, err)
		assert.Equal(t, 1.0, q.above)
		assert.Equal(t, []any{1.5, 2.0}, q.in)

		q, err = decodeSpec(t, "name: s\nkind: symbol\nin: [vim, emacs]\n").Build()
		require.NoError(t, err)
		assert.Equal(t, []any{SymbolValue("vim"), SymbolValue("emacs")}, q.in)

		q, err = decodeSpec(t, "name: s\nbelow: m\n").Build()
		require.NoError(t, err)
		assert.Equal(t, "m", q.below)
	})

	t.Run("confirm", func(t *testing.T) {
		t.Parallel()

		q, err := decodeSpec(t, "name: c\nconfirm: true\n").Build()
		require.NoError(t, err)
		assert.True(t, q.confirm)

		q, err = decodeSpec(t, "name: c\nconfirm: \"Sure?  \"\n").Build()
		require.NoError(t, err)
		assert.True(t, q.confirm)
		assert.Equal(t, "Sure?  ", q.confirmText)
	})

	t.Run("path kind", func(t *testing.T) {
		t.Parallel()

		q, err := decodeSpec(t, "name: p\nkind: path\ndir: /tmp\nglob: \"*.txt\"\n").Build()
		require.NoError(t, err)
		assert.Equal(t, PathLike{Dir: "/tmp", Glob: "*.txt"}, q.Kind())
		assert.NotNil(t, q.completion)
	})
}

func TestQuestionSpecBuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "unknown kind", input: "name: a\nkind: date\n", wantErr: `unknown kind "date"`},
		{name: "one_of without choices", input: "name: a\nkind: one_of\n", wantErr: "one_of needs choices"},
		{name: "unknown echo", input: "name: a\necho: stars\n", wantErr: `unknown echo "stars"`},
		{name: "unknown whitespace", input: "name: a\nwhitespace: squash\n", wantErr: "unknown whitespace policy"},
		{name: "unknown case", input: "name: a\ncase: title\n", wantErr: "unknown case policy"},
		{name: "bad integer bound", input: "name: a\nkind: integer\nabove: ten\n", wantErr: "above:"},
		{name: "bad float member", input: "name: a\nkind: float\nin: [x]\n", wantErr: "in:"},
		{name: "bound must be scalar", input: "name: a\nbelow: [1]\n", wantErr: "bound must be a scalar"},
		{name: "bad pattern", input: "name: a\nvalidate: \"(\"\n", wantErr: "build question"},
		{name: "regex has no order", input: "name: a\nkind: regex\nabove: x\n", wantErr: "build question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := decodeSpec(t, tt.input).Build()
			var pe *ProgrammerError
			require.ErrorAs(t, err, &pe)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAnswersMarshalYAML(t *testing.T) {
	t.Parallel()

	answers := Answers{
		{Name: "zeta", Value: "last letter"},
		{Name: "age", Value: 42},
		{Name: "pattern", Value: regexp.MustCompile(`^a+$`)},
		{Name: "editor", Value: SymbolValue("vim")},
		{Name: "sure", Value: true},
	}

	out, err := yaml.Marshal(answers)
	require.NoError(t, err)
	assert.Equal(t, "zeta: last letter\nage: 42\npattern: ^a+$\neditor: vim\nsure: true\n", string(out))
}

func TestQuestionnaireRun(t *testing.T) {
	t.Parallel()

	qn, err := LoadQuestionnaireFile("testdata/profile.yaml")
	require.NoError(t, err)

	t.Run("all answered", func(t *testing.T) {
		t.Parallel()

		f := newPromptFixture(t, script(
			"  alice   SMITH \r",
			"\r",
			"gr\r", "y\r",
			"vi\r", "vim\r",
		))

		answers, err := qn.Run(f.prompter)
		require.NoError(t, err)
		assert.Equal(t, Answers{
			{Name: "name", Value: "Alice smith"},
			{Name: "age", Value: 30},
			{Name: "color", Value: "green"},
			{Name: "editor", Value: SymbolValue("vim")},
		}, answers)

		assert.True(t, f.screen.written("Tell us about yourself", StylePrompt))
		assert.True(t, f.screen.written("Really green?  ", StylePrompt))
		require.Len(t, f.rejected, 1)
		assert.Equal(t, ResponseNotInRange, f.rejected[0].Kind)
		assert.Equal(t, "Pick vim, emacs or nano.", f.rejected[0].Message)
	})

	t.Run("partial answers on abort", func(t *testing.T) {
		t.Parallel()

		f := newPromptFixture(t, script("bob\r", KeyCtrlC))

		answers, err := qn.Run(f.prompter)
		assert.True(t, errors.Is(err, ErrAborted))
		assert.Equal(t, Answers{{Name: "name", Value: "Bob"}}, answers)
	})

	t.Run("build errors stop before asking", func(t *testing.T) {
		t.Parallel()

		bad := &Questionnaire{Questions: []QuestionSpec{{Name: "x", Kind: "date"}}}
		f := newPromptFixture(t, nil)

		_, err := bad.Run(f.prompter)
		var pe *ProgrammerError
		assert.ErrorAs(t, err, &pe)
		assert.Empty(t, f.screen.writes)
	})
}
