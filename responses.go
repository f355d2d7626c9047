package ask

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

const (
	defaultAskOnError  = "?  "
	defaultConfirmText = "Are you sure?  "
)

// templateData is what question, confirmation and response templates see.
type templateData struct {
	Question      string // The rendered question
	Default       string
	Kind          string // Human readable answer kind, e.g. "integer"
	Help          string
	Answer        any    // The answer being rejected or confirmed
	ExpectedRange string // e.g. "above 0 and below 105"
	Pattern       string // The validation pattern, e.g. "/^\d+$/"
	Choices       string // e.g. "[red, green, blue]"
}

func (q *Question) templateData(answer any) templateData {
	data := templateData{
		Kind:          q.kind.describe(),
		Help:          q.help,
		Answer:        answer,
		ExpectedRange: q.expectedRange(),
		Pattern:       describePattern(q.validatePattern),
		Choices:       formatList(q.selection()),
	}
	if def, ok := q.Default(); ok {
		data.Default = def
	}
	return data
}

// renderPrompt returns the question as it is shown to the user, with the
// default answer appended as |default|.
func (q *Question) renderPrompt() (string, error) {
	text, err := execute(q.promptTmpl, q.templateData(nil))
	if err != nil {
		return "", programmerError("render question", err)
	}
	def, _ := q.Default()
	return appendDefault(text, def), nil
}

// appendDefault shows def after the question. Trailing blanks stay at the end
// so the answer is still typed after them.
func appendDefault(text, def string) string {
	if def == "" {
		return text
	}
	switch {
	case text == "":
		return "|" + def + "|  "
	case strings.HasSuffix(text, "\n"):
		return strings.TrimSuffix(text, "\n") + "  |" + def + "|\n"
	}
	trimmed := strings.TrimRight(text, " \t")
	if trimmed != text {
		return trimmed + "  |" + def + "|" + text[len(trimmed):]
	}
	return text + "  |" + def + "|"
}

// response renders the message for key. Caller overrides win over the
// built-in messages.
func (q *Question) response(key ResponseKey, answer any) (string, error) {
	if key == ResponseAskOnError && q.askOnErrorQ {
		return q.renderPrompt()
	}

	data := q.templateData(answer)
	if tmpl, ok := q.responseTmpl[key]; ok {
		text, err := execute(tmpl, data)
		if err != nil {
			return "", programmerError("render "+string(key), err)
		}
		return text, nil
	}
	return defaultResponse(key, data), nil
}

func defaultResponse(key ResponseKey, data templateData) string {
	switch key {
	case ResponseAmbiguousCompletion:
		return "Ambiguous choice.  Please choose one of " + data.Choices + "."
	case ResponseAskOnError:
		return defaultAskOnError
	case ResponseInvalidType:
		return "You must enter a valid " + data.Kind + "."
	case ResponseNoCompletion:
		return "You must choose one of " + data.Choices + "."
	case ResponseNotInRange:
		return "Your answer isn't within the expected range (" + data.ExpectedRange + ")."
	case ResponseNotValid:
		if data.Pattern == "" {
			return "Your answer isn't valid."
		}
		return "Your answer isn't valid (must match " + data.Pattern + ")."
	default:
		return string(key)
	}
}

// confirmPrompt renders the yes/no question asked before accepting answer.
func (q *Question) confirmPrompt(answer any) (string, error) {
	if q.confirmTmpl == nil {
		return defaultConfirmText, nil
	}
	question, err := q.renderPrompt()
	if err != nil {
		return "", err
	}
	data := q.templateData(answer)
	data.Question = question
	text, err := execute(q.confirmTmpl, data)
	if err != nil {
		return "", programmerError("render confirmation", err)
	}
	return text, nil
}

// expectedRange describes the bounds, e.g. "above 0, below 105, and included
// in [1, 2, 3]".
func (q *Question) expectedRange() string {
	var clauses []string
	if q.above != nil {
		clauses = append(clauses, fmt.Sprintf("above %v", q.above))
	}
	if q.below != nil {
		clauses = append(clauses, fmt.Sprintf("below %v", q.below))
	}
	if q.in != nil {
		clauses = append(clauses, "included in "+formatValues(q.in))
	}
	return joinClauses(clauses)
}

func joinClauses(clauses []string) string {
	switch len(clauses) {
	case 0:
		return ""
	case 1:
		return clauses[0]
	case 2:
		return clauses[0] + " and " + clauses[1]
	default:
		return strings.Join(clauses[:len(clauses)-1], ", ") + ", and " + clauses[len(clauses)-1]
	}
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func formatValues(values []any) string {
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = fmt.Sprint(v)
	}
	return formatList(items)
}

func describePattern(re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	return "/" + re.String() + "/"
}

// escapeTemplate makes text render as itself when parsed as a template.
func escapeTemplate(text string) string {
	return strings.ReplaceAll(text, "{{", `{{"{{"}}`)
}

func execute(tmpl *template.Template, data templateData) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
