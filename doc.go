// Package ask asks questions on a single terminal line and returns typed,
// validated answers.
//
// A question is described once with NewQuestion and then asked with
// (*Prompter).Ask. Each attempt goes through the same pipeline:
//
//  1. The question is drawn and the user edits an answer (LineEditor)
//  2. Whitespace and case policies are applied (skipped for Character questions)
//  3. An empty answer is replaced by the default
//  4. The validation pattern or function is checked
//  5. The answer is converted according to its AnswerKind
//  6. Above/Below/In bounds are checked
//  7. Optionally the user confirms the answer with a yes/no question
//
// A rejected answer is explained on the same line and the question is asked
// again. Ctrl+C or Ctrl+G aborts with ErrAborted.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/ask"
//	)
//
//	func main() {
//		p, err := ask.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		q, err := ask.NewQuestion("Age?  ", ask.Integer{},
//			ask.WithAbove(0),
//			ask.WithBelow(130),
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		age, err := p.Ask(q)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("You are %d\n", age.(int))
//	}
//
// Choices and file names:
//
//	color, _ := ask.NewQuestion("Color?  ", ask.OneOf{Choices: []string{"red", "green", "blue"}})
//	file, _ := ask.NewQuestion("File?  ", ask.PathLike{Dir: "testdata", Glob: "*.yaml"})
//
// Both complete with Tab and accept any unique prefix ("gr" answers "green").
//
// Passwords:
//
//	pw, _ := ask.NewQuestion("Password:  ", nil,
//		ask.WithEcho(ask.EchoMasked('*')),
//		ask.WithConfirmText("Use this password?  "),
//	)
//
// Key Bindings:
//
//   - Enter: Submit the answer
//   - Ctrl+C, Ctrl+G: Abort
//   - Left/Right, Ctrl+A/Home, Ctrl+E/End: Move the cursor
//   - Backspace/Ctrl+H, Delete: Delete characters
//   - Ctrl+K: Delete from cursor to end of line
//   - Alt+I: Toggle insert/overwrite mode
//   - Tab: Cycle through completions, back to what was typed
//   - Alt+H: Show the question's help
//
// Embedding:
//
// Hosts drawing their own screen pass WithScreen and WithKeySource; the
// prompter then only ever draws on the row selected with WithRow.
package ask
