package main

import (
	"errors"
	"os"
	"strings"

	"github.com/nao1215/ask"
	"github.com/spf13/cobra"
)

var agreeCmd = &cobra.Command{
	Use:   "agree QUESTION",
	Short: "Ask a yes/no question",
	Long: `Asks QUESTION and exits with status 0 for yes and 1 for no, so it can be
used in shell scripts:

  ask agree "Deploy now?" && make deploy`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		character, err := cmd.Flags().GetBool("character")
		if err != nil {
			return err
		}

		p, err := newPrompter(cmd)
		if err != nil {
			return err
		}
		defer p.Close()

		var options []ask.QuestionOption
		if character {
			options = append(options, ask.Character())
		}
		yes, err := p.Agree(questionText(args), options...)
		if err != nil {
			if errors.Is(err, ask.ErrAborted) {
				p.Close()
				os.Exit(130)
			}
			return err
		}
		if !yes {
			p.Close()
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	agreeCmd.Flags().BoolP("character", "c", false, "Answer with a single key (y or n)")
	rootCmd.AddCommand(agreeCmd)
}

// questionText joins the arguments and leaves room for the answer.
func questionText(args []string) string {
	text := strings.Join(args, " ")
	if !strings.HasSuffix(text, " ") {
		text += "  "
	}
	return text
}
