// Package main shows yes/no questions, including single key answers.
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

	ok, err := p.Agree("Do you like Go?  ")
	if err != nil {
		if errors.Is(err, ask.ErrAborted) {
			return
		}
		log.Fatal(err)
	}
	fmt.Println("likes Go:", ok)

	ok, err = p.Agree("Continue? (y/n)  ", ask.Character())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("continue:", ok)
}
