// Package main asks for contact details, showing choices, path completion and
// confirmation.
package main

import (
	"fmt"
	"log"
	"regexp"

	"github.com/nao1215/ask"
)

func main() {
	p, err := ask.New(ask.WithColorScheme(ask.ThemeDark))
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	if err := p.Say("Contact form (Tab completes, Alt+H shows help)"); err != nil {
		log.Fatal(err)
	}

	questions := []struct {
		name string
		text string
		kind ask.AnswerKind
		opts []ask.QuestionOption
	}{
		{
			name: "email",
			text: "E-mail?  ",
			opts: []ask.QuestionOption{
				ask.WithCase(ask.CaseDown),
				ask.WithValidation(regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)),
				ask.WithResponse(ask.ResponseNotValid, "{{.Answer}} does not look like an e-mail address."),
			},
		},
		{
			name: "contact",
			text: "Preferred contact?  ",
			kind: ask.OneOf{Choices: []string{"email", "phone", "post"}},
			opts: []ask.QuestionOption{ask.WithDefault("email")},
		},
		{
			name: "attachment",
			text: "Attach which file?  ",
			kind: ask.PathLike{Dir: ".", Glob: "*.go"},
			opts: []ask.QuestionOption{
				ask.WithConfirmText("Attach {{.Answer}}?  "),
				ask.WithHelp("Any Go file of the current directory."),
			},
		},
	}

	for _, q := range questions {
		question, err := ask.NewQuestion(q.text, q.kind, q.opts...)
		if err != nil {
			log.Fatal(err)
		}
		answer, err := p.Ask(question)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %v\n", q.name, answer)
	}
}
