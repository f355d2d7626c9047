// Package main asks for a password twice without echoing it.
package main

import (
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

	password, err := ask.NewQuestion("Password:  ", nil,
		ask.WithEcho(ask.EchoMasked('*')),
		ask.WithWhitespace(ask.WhitespaceNone),
		ask.WithValidator(func(s string) bool { return len(s) >= 8 }),
		ask.WithResponse(ask.ResponseNotValid, "At least 8 characters please."),
	)
	if err != nil {
		log.Fatal(err)
	}

	first, err := p.Ask(password)
	if err != nil {
		log.Fatal(err)
	}

	again, err := ask.NewQuestion("Once more:  ", nil,
		ask.WithEcho(ask.EchoHidden),
		ask.WithWhitespace(ask.WhitespaceNone),
		ask.WithIn(first),
		ask.WithResponse(ask.ResponseNotInRange, "The passwords do not match."),
	)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := p.Ask(again); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Password set.")
}
