// Package main demonstrates basic usage of the ask library.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/ask"
)

func main() {
	p, err := ask.New()
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	name, err := ask.NewQuestion("What is your name?  ", nil,
		ask.WithWhitespace(ask.WhitespaceStripAndCollapse),
		ask.WithCase(ask.CaseCapitalize),
		ask.WithHelp("Your **first** name is enough."),
	)
	if err != nil {
		log.Fatal(err)
	}

	age, err := ask.NewQuestion("How old are you?  ", ask.Integer{},
		ask.WithAbove(0),
		ask.WithBelow(130),
		ask.WithDefault("30"),
	)
	if err != nil {
		log.Fatal(err)
	}

	answer, err := p.Ask(name)
	if err != nil {
		if errors.Is(err, ask.ErrAborted) {
			fmt.Println("Goodbye!")
			return
		}
		log.Fatal(err)
	}

	years, err := p.Ask(age)
	if err != nil {
		if errors.Is(err, ask.ErrAborted) {
			fmt.Println("Goodbye!")
			return
		}
		log.Fatal(err)
	}

	fmt.Printf("Hello %s, you are %d years old.\n", answer, years.(int))
}
