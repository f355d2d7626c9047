package ask

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Questionnaire is a list of questions loaded from YAML:
//
//	title: "Tell us about yourself"
//	questions:
//	  - name: age
//	    question: "Age?  "
//	    kind: integer
//	    above: 0
//	    below: 130
//	  - name: color
//	    question: "Favorite color?  "
//	    kind: one_of
//	    choices: [red, green, blue]
//	    confirm: "Really {{.Answer}}?  "
type Questionnaire struct {
	Title     string         `yaml:"title"`
	Questions []QuestionSpec `yaml:"questions"`
}

// QuestionSpec is the YAML form of a Question.
type QuestionSpec struct {
	Name        string            `yaml:"name"`
	Question    string            `yaml:"question"`
	Kind        string            `yaml:"kind"` // string, integer, float, symbol, regex, one_of, path
	Choices     []string          `yaml:"choices"`
	Dir         string            `yaml:"dir"`
	Glob        string            `yaml:"glob"`
	Default     *string           `yaml:"default"`
	Echo        string            `yaml:"echo"` // visible, hidden or a single mask character
	Limit       int               `yaml:"limit"`
	Character   bool              `yaml:"character"`
	Whitespace  string            `yaml:"whitespace"`
	Case        string            `yaml:"case"`
	Validate    string            `yaml:"validate"`
	Above       *yaml.Node        `yaml:"above"`
	Below       *yaml.Node        `yaml:"below"`
	In          []yaml.Node       `yaml:"in"`
	Confirm     ConfirmSpec       `yaml:"confirm"`
	Help        string            `yaml:"help"`
	Responses   map[string]string `yaml:"responses"`
	FirstAnswer *string           `yaml:"first_answer"`
}

// ConfirmSpec accepts either a bool ("confirm: true") or a confirmation
// question ("confirm: Really {{.Answer}}?  ").
type ConfirmSpec struct {
	Enabled bool
	Text    string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ConfirmSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: confirm must be a bool or a string", node.Line)
	}
	if node.Tag == "!!bool" {
		return node.Decode(&c.Enabled)
	}
	c.Enabled = true
	c.Text = node.Value
	return nil
}

// askOnErrorQuestionValue in responses.ask_on_error repeats the question.
const askOnErrorQuestionValue = ":question"

var (
	whitespacePolicies = map[string]WhitespacePolicy{
		"":                   WhitespaceStrip,
		"strip":              WhitespaceStrip,
		"none":               WhitespaceNone,
		"chomp":              WhitespaceChomp,
		"collapse":           WhitespaceCollapse,
		"strip_and_collapse": WhitespaceStripAndCollapse,
		"chomp_and_collapse": WhitespaceChompAndCollapse,
		"remove":             WhitespaceRemove,
	}
	casePolicies = map[string]CasePolicy{
		"":           CaseNone,
		"none":       CaseNone,
		"up":         CaseUp,
		"down":       CaseDown,
		"capitalize": CaseCapitalize,
	}
)

// LoadQuestionnaire decodes a questionnaire from r.
func LoadQuestionnaire(r io.Reader) (*Questionnaire, error) {
	var qn Questionnaire
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&qn); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("questionnaire is empty")
		}
		return nil, fmt.Errorf("failed to decode questionnaire: %w", err)
	}
	if len(qn.Questions) == 0 {
		return nil, errors.New("questionnaire has no questions")
	}
	for i, spec := range qn.Questions {
		if spec.Name == "" {
			return nil, fmt.Errorf("question %d has no name", i+1)
		}
	}
	return &qn, nil
}

// LoadQuestionnaireFile reads a questionnaire from a YAML file.
func LoadQuestionnaireFile(path string) (*Questionnaire, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadQuestionnaire(f)
}

// Build turns the spec into a Question.
func (s QuestionSpec) Build() (*Question, error) {
	kind, err := s.kind()
	if err != nil {
		return nil, programmerError("question "+s.Name, err)
	}

	var options []QuestionOption
	add := func(o ...QuestionOption) { options = append(options, o...) }

	if s.Default != nil {
		add(WithDefault(*s.Default))
	}
	switch {
	case s.Echo == "" || s.Echo == "visible":
	case s.Echo == "hidden":
		add(WithEcho(EchoHidden))
	case len([]rune(s.Echo)) == 1:
		add(WithEcho(EchoMasked([]rune(s.Echo)[0])))
	default:
		return nil, programmerError("question "+s.Name, fmt.Errorf("unknown echo %q", s.Echo))
	}
	if s.Limit > 0 {
		add(WithLimit(s.Limit))
	}
	if s.Character {
		add(Character())
	}

	ws, ok := whitespacePolicies[s.Whitespace]
	if !ok {
		return nil, programmerError("question "+s.Name, fmt.Errorf("unknown whitespace policy %q", s.Whitespace))
	}
	lc, ok := casePolicies[s.Case]
	if !ok {
		return nil, programmerError("question "+s.Name, fmt.Errorf("unknown case policy %q", s.Case))
	}
	add(WithWhitespace(ws), WithCase(lc))

	if s.Validate != "" {
		add(WithValidationPattern(s.Validate))
	}

	if s.Above != nil {
		v, err := boundValue(s.Above, kind)
		if err != nil {
			return nil, programmerError("question "+s.Name, fmt.Errorf("above: %w", err))
		}
		add(WithAbove(v))
	}
	if s.Below != nil {
		v, err := boundValue(s.Below, kind)
		if err != nil {
			return nil, programmerError("question "+s.Name, fmt.Errorf("below: %w", err))
		}
		add(WithBelow(v))
	}
	if s.In != nil {
		values := make([]any, len(s.In))
		for i := range s.In {
			v, err := boundValue(&s.In[i], kind)
			if err != nil {
				return nil, programmerError("question "+s.Name, fmt.Errorf("in: %w", err))
			}
			values[i] = v
		}
		add(WithIn(values...))
	}

	switch {
	case s.Confirm.Text != "":
		add(WithConfirmText(s.Confirm.Text))
	case s.Confirm.Enabled:
		add(WithConfirm())
	}
	if s.Help != "" {
		add(WithHelp(s.Help))
	}
	for key, text := range s.Responses {
		if ResponseKey(key) == ResponseAskOnError && text == askOnErrorQuestionValue {
			add(WithAskOnErrorQuestion())
			continue
		}
		add(WithResponse(ResponseKey(key), text))
	}
	if s.FirstAnswer != nil {
		add(WithFirstAnswer(*s.FirstAnswer))
	}

	return NewQuestion(s.Question, kind, options...)
}

func (s QuestionSpec) kind() (AnswerKind, error) {
	switch s.Kind {
	case "", "string":
		return PlainString{}, nil
	case "integer":
		return Integer{}, nil
	case "float":
		return Float{}, nil
	case "symbol":
		return Symbol{}, nil
	case "regex":
		return Regex{}, nil
	case "one_of":
		if len(s.Choices) == 0 {
			return nil, errors.New("one_of needs choices")
		}
		return OneOf{Choices: s.Choices}, nil
	case "path":
		return PathLike{Dir: s.Dir, Glob: s.Glob}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", s.Kind)
	}
}

// boundValue reads a range bound as a value comparable with answers of kind.
func boundValue(node *yaml.Node, kind AnswerKind) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: bound must be a scalar", node.Line)
	}
	switch kind.(type) {
	case Integer:
		n, err := strconv.ParseInt(node.Value, 0, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return int(n), nil
	case Float:
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return f, nil
	case Symbol:
		return SymbolValue(node.Value), nil
	default:
		return node.Value, nil
	}
}

// Answer is one answered question.
type Answer struct {
	Name  string
	Value any
}

// Answers keeps answers in the order they were asked.
type Answers []Answer

// MarshalYAML implements yaml.Marshaler, writing the answers as an ordered
// mapping from question name to answer.
func (a Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, answer := range a {
		value := answer.Value
		switch v := value.(type) {
		case *regexp.Regexp:
			value = v.String()
		case SymbolValue:
			value = string(v)
		}

		var valueNode yaml.Node
		if err := valueNode.Encode(value); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", answer.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: answer.Name},
			&valueNode,
		)
	}
	return node, nil
}

// Run asks every question in order. It stops at the first error; the answers
// collected so far are returned with it.
func (qn *Questionnaire) Run(p *Prompter) (Answers, error) {
	questions := make([]*Question, len(qn.Questions))
	for i, spec := range qn.Questions {
		q, err := spec.Build()
		if err != nil {
			return nil, err
		}
		questions[i] = q
	}

	if qn.Title != "" {
		if err := p.Say(qn.Title); err != nil {
			return nil, err
		}
	}

	answers := make(Answers, 0, len(questions))
	for i, q := range questions {
		value, err := p.Ask(q)
		if err != nil {
			return answers, err
		}
		answers = append(answers, Answer{Name: qn.Questions[i].Name, Value: value})
	}
	return answers, nil
}
