package ask

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// DefaultLimit is the maximum answer length used when a question sets none.
const DefaultLimit = 100

// AnswerKind selects how an answer is converted. It is a closed set: use one
// of PlainString, Integer, Float, Symbol, Regex, OneOf, PathLike or Custom.
type AnswerKind interface {
	// describe names the kind in response messages ("You must enter a valid ...").
	describe() string
}

// PlainString keeps the answer as a string.
type PlainString struct{}

// Integer converts the answer to an int. Base prefixes (0x, 0o, 0b) and
// underscores between digits are accepted.
type Integer struct{}

// Float converts the answer to a float64.
type Float struct{}

// Symbol converts the answer to a SymbolValue.
type Symbol struct{}

// Regex compiles the answer into a *regexp.Regexp.
type Regex struct{}

// OneOf requires the answer to be one of Choices. A unique prefix of a choice
// is completed to that choice.
type OneOf struct {
	Choices []string
}

// PathLike requires the answer to name an entry of Dir matching Glob (default
// "*"). The answer is returned as a path joined with Dir.
type PathLike struct {
	Dir  string
	Glob string
}

// Custom converts the answer with Convert. Convert should wrap
// ErrInvalidAnswer when the user typed something it cannot convert; any other
// error (or a panic) aborts the question with a *ProgrammerError.
type Custom struct {
	Name    string // Used in the invalid_type message, defaults to "answer"
	Convert func(string) (any, error)
}

// SymbolValue is the answer type produced by the Symbol kind.
type SymbolValue string

func (PlainString) describe() string { return "string" }
func (Integer) describe() string     { return "integer" }
func (Float) describe() string       { return "number" }
func (Symbol) describe() string      { return "symbol" }
func (Regex) describe() string       { return "regular expression" }
func (k OneOf) describe() string     { return "choice (" + strings.Join(k.Choices, ", ") + ")" }
func (PathLike) describe() string    { return "file name" }

func (k Custom) describe() string {
	if k.Name == "" {
		return "answer"
	}
	return k.Name
}

// EchoMode controls what is drawn while the user types.
type EchoMode struct {
	hidden bool
	mask   rune
}

// Echo modes
var (
	// EchoVisible draws the text as typed
	EchoVisible = EchoMode{}
	// EchoHidden draws nothing
	EchoHidden = EchoMode{hidden: true}
)

// EchoMasked draws mask once per typed character.
func EchoMasked(mask rune) EchoMode {
	return EchoMode{mask: mask}
}

// render returns the text to draw for buffer.
func (e EchoMode) render(buffer []rune) string {
	switch {
	case e.hidden:
		return ""
	case e.mask != 0:
		return strings.Repeat(string(e.mask), len(buffer))
	default:
		return string(buffer)
	}
}

// WhitespacePolicy controls whitespace handling of the raw answer.
type WhitespacePolicy int

// Whitespace policies
const (
	WhitespaceStrip            WhitespacePolicy = iota // Trim leading and trailing whitespace (default)
	WhitespaceNone                                     // Leave the answer untouched
	WhitespaceChomp                                    // Remove one trailing line ending
	WhitespaceCollapse                                 // Replace every whitespace run with one space
	WhitespaceStripAndCollapse                         // Strip, then collapse
	WhitespaceChompAndCollapse                         // Chomp, then collapse
	WhitespaceRemove                                   // Remove all whitespace
)

// CasePolicy controls letter case of the answer.
type CasePolicy int

// Case policies
const (
	CaseNone CasePolicy = iota
	CaseUp
	CaseDown
	CaseCapitalize
)

// ResponseKey names a message shown to the user.
type ResponseKey string

// Response keys
const (
	ResponseAmbiguousCompletion ResponseKey = "ambiguous_completion"
	ResponseAskOnError          ResponseKey = "ask_on_error"
	ResponseInvalidType         ResponseKey = "invalid_type"
	ResponseNoCompletion        ResponseKey = "no_completion"
	ResponseNotInRange          ResponseKey = "not_in_range"
	ResponseNotValid            ResponseKey = "not_valid"
)

// CompletionFunc returns the ordered completion candidates for the text being
// edited. Each candidate replaces the whole answer when selected with Tab.
type CompletionFunc func(Document) []string

// Question describes one question: what to ask, how to edit, transform,
// convert and check the answer. Build it with NewQuestion; it is not modified
// afterwards.
type Question struct {
	text       string
	kind       AnswerKind
	defaultVal *string
	echo       EchoMode
	limit      int
	whitespace WhitespacePolicy
	letterCase CasePolicy

	validatePattern *regexp.Regexp
	validateFunc    func(string) bool

	above, below any
	in           []any

	confirm      bool
	confirmText  string
	completion   CompletionFunc
	responses    map[ResponseKey]string
	askOnErrorQ  bool
	help         string
	firstAnswer  *string
	buildErrs    []error
	promptTmpl   *template.Template
	confirmTmpl  *template.Template
	responseTmpl map[ResponseKey]*template.Template
}

// QuestionOption configures a Question.
type QuestionOption func(*Question)

// NewQuestion builds a question. text is a text/template; {{.Default}},
// {{.Kind}} and {{.Help}} are available. A nil kind means PlainString.
//
// Example:
//
//	q, err := ask.NewQuestion("Age?  ", ask.Integer{},
//		ask.WithAbove(0),
//		ask.WithBelow(105),
//	)
func NewQuestion(text string, kind AnswerKind, options ...QuestionOption) (*Question, error) {
	if kind == nil {
		kind = PlainString{}
	}
	q := &Question{
		text:      text,
		kind:      kind,
		limit:     DefaultLimit,
		responses: make(map[ResponseKey]string),
	}

	for _, option := range options {
		option(q)
	}

	if err := q.build(); err != nil {
		return nil, programmerError("build question", err)
	}
	return q, nil
}

// WithDefault sets the answer used when the user enters nothing. The editor
// starts pre-filled with it and the prompt shows it as |default|.
func WithDefault(answer string) QuestionOption {
	return func(q *Question) {
		q.defaultVal = &answer
	}
}

// WithEcho sets what is drawn while typing.
func WithEcho(mode EchoMode) QuestionOption {
	return func(q *Question) {
		q.echo = mode
	}
}

// WithLimit sets the maximum answer length. Editing ends as soon as the answer
// reaches it.
func WithLimit(limit int) QuestionOption {
	return func(q *Question) {
		q.limit = limit
	}
}

// Character asks for a single key. Whitespace and case handling are skipped.
func Character() QuestionOption {
	return WithLimit(1)
}

// WithWhitespace sets the whitespace policy (WhitespaceStrip by default).
func WithWhitespace(policy WhitespacePolicy) QuestionOption {
	return func(q *Question) {
		q.whitespace = policy
	}
}

// WithCase sets the case policy.
func WithCase(policy CasePolicy) QuestionOption {
	return func(q *Question) {
		q.letterCase = policy
	}
}

// WithValidation requires the answer (before conversion) to match re.
func WithValidation(re *regexp.Regexp) QuestionOption {
	return func(q *Question) {
		q.validatePattern = re
	}
}

// WithValidationPattern compiles pattern and requires the answer to match it.
// A malformed pattern makes NewQuestion fail.
func WithValidationPattern(pattern string) QuestionOption {
	return func(q *Question) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			q.buildErrs = append(q.buildErrs, fmt.Errorf("validation pattern: %w", err))
			return
		}
		q.validatePattern = re
	}
}

// WithValidator requires fn to accept the answer (before conversion).
func WithValidator(fn func(string) bool) QuestionOption {
	return func(q *Question) {
		q.validateFunc = fn
	}
}

// WithAbove requires the converted answer to be greater than bound.
func WithAbove(bound any) QuestionOption {
	return func(q *Question) {
		q.above = bound
	}
}

// WithBelow requires the converted answer to be less than bound.
func WithBelow(bound any) QuestionOption {
	return func(q *Question) {
		q.below = bound
	}
}

// WithIn requires the converted answer to equal one of values.
func WithIn(values ...any) QuestionOption {
	return func(q *Question) {
		q.in = values
	}
}

// WithConfirm asks "Are you sure?  " after an answer passes every check.
func WithConfirm() QuestionOption {
	return func(q *Question) {
		q.confirm = true
		q.confirmText = ""
	}
}

// WithConfirmText asks the given yes/no question after an answer passes every
// check. text is a template; {{.Answer}} and {{.Question}} are available.
func WithConfirmText(text string) QuestionOption {
	return func(q *Question) {
		q.confirm = true
		q.confirmText = text
	}
}

// WithCompletion sets the function Tab cycles through.
func WithCompletion(fn CompletionFunc) QuestionOption {
	return func(q *Question) {
		q.completion = fn
	}
}

// WithResponse overrides one response message. text is a template with the
// same data as the built-in messages ({{.Kind}}, {{.ExpectedRange}},
// {{.Pattern}}, {{.Choices}}, {{.Answer}}).
func WithResponse(key ResponseKey, text string) QuestionOption {
	return func(q *Question) {
		q.responses[key] = text
		if key == ResponseAskOnError {
			q.askOnErrorQ = false
		}
	}
}

// WithAskOnErrorQuestion repeats the question itself after an error message
// instead of the short ask_on_error prompt.
func WithAskOnErrorQuestion() QuestionOption {
	return func(q *Question) {
		q.askOnErrorQ = true
		delete(q.responses, ResponseAskOnError)
	}
}

// WithHelp sets the text shown when the user presses Alt+H.
func WithHelp(text string) QuestionOption {
	return func(q *Question) {
		q.help = text
	}
}

// WithFirstAnswer uses answer for the first attempt instead of reading keys.
// If it passes every check it is returned without the user typing anything;
// otherwise its error message is shown and the question is asked normally.
func WithFirstAnswer(answer string) QuestionOption {
	return func(q *Question) {
		q.firstAnswer = &answer
	}
}

// Text returns the question template.
func (q *Question) Text() string { return q.text }

// Kind returns the answer kind.
func (q *Question) Kind() AnswerKind { return q.kind }

// Default returns the default answer and whether one was set.
func (q *Question) Default() (string, bool) {
	if q.defaultVal == nil {
		return "", false
	}
	return *q.defaultVal, true
}

// Limit returns the maximum answer length.
func (q *Question) Limit() int { return q.limit }

// Help returns the help text.
func (q *Question) Help() string { return q.help }

// build checks the options and parses every template once.
func (q *Question) build() error {
	if q.limit <= 0 {
		q.limit = DefaultLimit
	}
	if q.completion == nil {
		q.completion = defaultCompletion(q.kind)
	}
	if err := q.checkRange(); err != nil {
		q.buildErrs = append(q.buildErrs, err)
	}

	var err error
	if q.promptTmpl, err = parseTemplate("question", q.text); err != nil {
		q.buildErrs = append(q.buildErrs, err)
	}
	if q.confirmText != "" {
		if q.confirmTmpl, err = parseTemplate("confirm", q.confirmText); err != nil {
			q.buildErrs = append(q.buildErrs, err)
		}
	}
	q.responseTmpl = make(map[ResponseKey]*template.Template, len(q.responses))
	for key, text := range q.responses {
		tmpl, err := parseTemplate(string(key), text)
		if err != nil {
			q.buildErrs = append(q.buildErrs, err)
			continue
		}
		q.responseTmpl[key] = tmpl
	}

	return errors.Join(q.buildErrs...)
}

// checkRange rejects bounds and members that can never be compared with an
// answer of the question's kind. Custom members may be any value; they fall
// back to deep equality.
func (q *Question) checkRange() error {
	if q.above == nil && q.below == nil && q.in == nil {
		return nil
	}
	switch q.kind.(type) {
	case Integer, Float, PlainString, Symbol, OneOf, PathLike, Custom:
	default:
		return fmt.Errorf("above/below/in need an ordered answer kind, got %s", q.kind.describe())
	}
	for _, bound := range []any{q.above, q.below} {
		if bound == nil {
			continue
		}
		if _, ok := orderedValue(bound); !ok {
			return fmt.Errorf("bound %v (%T) is not a number or string", bound, bound)
		}
	}
	return nil
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s template: %w", name, err)
	}
	return tmpl, nil
}

// defaultCompletion completes choices for OneOf and directory entries for
// PathLike; other kinds have no completion.
func defaultCompletion(kind AnswerKind) CompletionFunc {
	switch k := kind.(type) {
	case OneOf:
		return NewChoiceCompleter(k.Choices)
	case PathLike:
		return NewFileCompleter(k.Dir, k.Glob)
	default:
		return nil
	}
}
