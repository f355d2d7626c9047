package ask

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// rawModeSetter is implemented by key sources that need the terminal in raw
// mode while a question is asked, such as *Terminal.
type rawModeSetter interface {
	SetRaw() error
	Restore() error
}

// lineBreaker is implemented by screens that scroll, such as *Terminal. The
// prompter moves to a fresh line after an accepted answer.
type lineBreaker interface {
	newLine() error
}

// Prompter asks questions on one row of a Screen, reading keys from a
// KeySource. A Prompter must not be used by more than one goroutine at a time.
type Prompter struct {
	screen       Screen
	keys         KeySource
	keyMap       *KeyMap
	row          int
	logger       *slog.Logger
	onInputError func(InputError)

	terminal *Terminal // Owned by the prompter when it opened it
	nested   bool      // Confirmation prompters leave raw mode to their parent
}

// Config holds the Prompter settings applied by Options.
type Config struct {
	Screen       Screen
	KeySource    KeySource
	Row          int
	ColorScheme  *ColorScheme
	KeyMap       *KeyMap
	Logger       *slog.Logger
	InputErrorFn func(InputError)
}

// Option is a functional option for configuring a Prompter
type Option func(*Config)

// WithScreen draws on screen instead of the terminal. It must be used
// together with WithKeySource.
func WithScreen(screen Screen) Option {
	return func(c *Config) {
		c.Screen = screen
	}
}

// WithKeySource reads keys from keys instead of the terminal. It must be used
// together with WithScreen.
func WithKeySource(keys KeySource) Option {
	return func(c *Config) {
		c.KeySource = keys
	}
}

// WithRow selects the screen row questions are drawn on.
func WithRow(row int) Option {
	return func(c *Config) {
		c.Row = row
	}
}

// WithColorScheme sets the color scheme of the terminal the prompter opens.
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithKeyMap sets custom key bindings for the line editor
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithLogger logs every attempt at debug level. Answers to hidden or masked
// questions are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithInputErrorHandler calls fn for every rejected answer, after its message
// has been shown and before the question is asked again.
func WithInputErrorHandler(fn func(InputError)) Option {
	return func(c *Config) {
		c.InputErrorFn = fn
	}
}

// New creates a Prompter. Without WithScreen and WithKeySource it opens the
// controlling terminal, which Close releases.
//
// Example:
//
//	p, err := ask.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	q, _ := ask.NewQuestion("Name?  ", nil, ask.WithCase(ask.CaseCapitalize))
//	name, err := p.Ask(q)
func New(options ...Option) (*Prompter, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}
	return newFromConfig(config)
}

func newFromConfig(config Config) (*Prompter, error) {
	p := &Prompter{
		screen:       config.Screen,
		keys:         config.KeySource,
		keyMap:       config.KeyMap,
		row:          config.Row,
		logger:       config.Logger,
		onInputError: config.InputErrorFn,
	}
	if p.keyMap == nil {
		p.keyMap = NewDefaultKeyMap()
	}
	if p.logger == nil {
		p.logger = nopLogger()
	}

	switch {
	case p.screen == nil && p.keys == nil:
		t, err := OpenTerminal(config.ColorScheme)
		if err != nil {
			return nil, fmt.Errorf("failed to open terminal: %w", err)
		}
		p.terminal = t
		p.screen = t
		p.keys = t
	case p.screen == nil || p.keys == nil:
		return nil, programmerError("new prompter", errors.New("WithScreen and WithKeySource must be used together"))
	}
	return p, nil
}

// Close releases the terminal opened by New. It is safe to call Close
// multiple times.
func (p *Prompter) Close() error {
	if p.terminal != nil {
		return p.terminal.Close()
	}
	return nil
}

// Ask asks q until the user gives an acceptable answer and returns it,
// converted according to the question's kind.
//
// Rejected answers are explained and the question is asked again. Ask returns
// ErrAborted when the user aborts, ErrEOF when the keys run out and a
// *ProgrammerError when the question itself is broken.
func (p *Prompter) Ask(q *Question) (any, error) {
	if q == nil {
		return nil, programmerError("ask", errors.New("nil question"))
	}

	if raw, ok := p.keys.(rawModeSetter); ok && !p.nested {
		if err := raw.SetRaw(); err != nil {
			return nil, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if err := raw.Restore(); err != nil {
				p.logger.Warn("failed to restore terminal mode", "error", err)
			}
		}()
	}

	s := &askSession{prompter: p, question: q}
	value, err := s.run()
	if err != nil {
		if errors.Is(err, ErrAborted) {
			p.logger.Debug("question aborted", "question", q.text)
		}
		return nil, err
	}
	if lb, ok := p.screen.(lineBreaker); ok && !p.nested {
		if err := lb.newLine(); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// Agree asks a yes/no question and reports whether the answer was yes. Any
// answer starting with y or n (in either case) that is "y", "yes", "n" or
// "no" is accepted.
func (p *Prompter) Agree(text string, options ...QuestionOption) (bool, error) {
	q, err := NewAgreeQuestion(text, options...)
	if err != nil {
		return false, err
	}
	answer, err := p.Ask(q)
	if err != nil {
		return false, err
	}
	yes, _ := answer.(bool)
	return yes, nil
}

var yesNoPattern = regexp.MustCompile(`(?i)^(?:y(?:es)?|no?)$`)

// NewAgreeQuestion builds the yes/no question used by Agree. options are
// applied after the yes/no settings, so they can override its responses.
func NewAgreeQuestion(text string, options ...QuestionOption) (*Question, error) {
	yesNo := Custom{
		Name: "yes or no",
		Convert: func(answer string) (any, error) {
			return strings.HasPrefix(strings.ToLower(answer), "y"), nil
		},
	}
	base := []QuestionOption{
		WithValidation(yesNoPattern),
		WithResponse(ResponseNotValid, `Please enter "yes" or "no".`),
		WithAskOnErrorQuestion(),
	}
	return NewQuestion(text, yesNo, append(base, options...)...)
}

// Say writes text on the prompt row. Unless text ends with a blank the
// prompter moves to a fresh line afterwards.
func (p *Prompter) Say(text string) error {
	if err := p.screen.WriteAt(p.row, 0, text, StylePrompt); err != nil {
		return err
	}
	if strings.HasSuffix(text, " ") || strings.HasSuffix(text, "\t") {
		return p.screen.MoveCursor(p.row, len([]rune(text)))
	}
	if lb, ok := p.screen.(lineBreaker); ok {
		return lb.newLine()
	}
	return nil
}

// child returns a prompter for a sub-question. It shares the screen and keys
// but nothing else with p.
func (p *Prompter) child() *Prompter {
	return &Prompter{
		screen:       p.screen,
		keys:         p.keys,
		keyMap:       p.keyMap,
		row:          p.row,
		logger:       p.logger,
		onInputError: p.onInputError,
		nested:       true,
	}
}

// askSession is the state of one Ask call.
type askSession struct {
	prompter *Prompter
	question *Question
	drawn    int    // Columns of the row used so far
	message  string // Why the previous attempt was rejected
	retry    bool   // Show ask_on_error instead of the question
}

// attempt is the outcome of one pass through the pipeline.
type attempt struct {
	value    any
	rejected *InputError
	declined bool // The user said no to the confirmation
}

func (s *askSession) run() (any, error) {
	q := s.question
	log := s.prompter.logger.With("question", q.text, "kind", q.kind.describe())

	first := q.firstAnswer
	for {
		var raw string
		var err error
		if first != nil {
			raw, first = *first, nil
		} else if raw, err = s.edit(); err != nil {
			return nil, err
		}

		result, err := s.attempt(raw)
		if err != nil {
			return nil, err
		}

		switch {
		case result.rejected != nil:
			ie := result.rejected
			if q.echo == EchoVisible {
				log.Debug("answer rejected", "response", ie.Kind, "answer", ie.Answer)
			} else {
				log.Debug("answer rejected", "response", ie.Kind)
			}
			if s.prompter.onInputError != nil {
				s.prompter.onInputError(*ie)
			}
			s.message = ie.Message
			if s.message != "" && !strings.HasSuffix(s.message, " ") {
				s.message += " "
			}
			s.retry = true

		case result.declined:
			log.Debug("answer declined")
			s.message = ""
			s.retry = true

		default:
			if q.echo == EchoVisible {
				log.Debug("answer accepted", "answer", result.value)
			} else {
				log.Debug("answer accepted")
			}
			return result.value, nil
		}
	}
}

// edit clears the row, draws the question (or the error message followed by
// ask_on_error) and lets the user type an answer.
func (s *askSession) edit() (string, error) {
	p, q := s.prompter, s.question

	prompt, err := q.renderPrompt()
	if err != nil {
		return "", err
	}
	if s.retry {
		if prompt, err = q.response(ResponseAskOnError, nil); err != nil {
			return "", err
		}
	}

	if err := s.clearRow(); err != nil {
		return "", err
	}

	editor := NewLineEditor(p.screen, p.keys, p.keyMap, p.row)
	editor.SetMessage(s.message)
	editor.SetPrompt(prompt)
	editor.SetHelp(q.help)

	def, _ := q.Default()
	raw, err := editor.Edit(def, q.limit, q.echo, q.completion)
	s.drawn = max(s.drawn, editor.Width())
	return raw, err
}

// clearRow blanks whatever the previous attempt drew.
func (s *askSession) clearRow() error {
	p := s.prompter
	if s.drawn > 0 {
		if err := p.screen.WriteAt(p.row, 0, strings.Repeat(" ", s.drawn), StylePlain); err != nil {
			return err
		}
	}
	return p.screen.MoveCursor(p.row, 0)
}

// attempt runs raw through transformation, default substitution, validation,
// conversion, range check and confirmation.
func (s *askSession) attempt(raw string) (attempt, error) {
	q := s.question

	answer := q.transform(raw)
	if def, ok := q.Default(); ok && answer == "" {
		answer = def
	}

	value, err := q.check(answer)
	if err != nil {
		var ie *InputError
		if !errors.As(err, &ie) {
			return attempt{}, err
		}
		if ie.Message, err = q.response(ie.Kind, answer); err != nil {
			return attempt{}, err
		}
		return attempt{rejected: ie}, nil
	}

	if q.confirm {
		ok, err := s.confirm(value)
		if err != nil {
			return attempt{}, err
		}
		if !ok {
			return attempt{declined: true}, nil
		}
	}
	return attempt{value: value}, nil
}

// confirm asks whether value is really meant, using a separate prompter and
// question so nothing of the outer question changes.
func (s *askSession) confirm(value any) (bool, error) {
	text, err := s.question.confirmPrompt(value)
	if err != nil {
		return false, err
	}
	q, err := NewAgreeQuestion(escapeTemplate(text))
	if err != nil {
		return false, err
	}

	child := s.prompter.child()
	cs := &askSession{prompter: child, question: q, drawn: s.drawn}
	answer, err := cs.run()
	s.drawn = max(s.drawn, cs.drawn)
	if err != nil {
		return false, err
	}
	yes, _ := answer.(bool)
	return yes, nil
}
