package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/ask"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Ask the questions of a YAML questionnaire",
	Long: `Asks every question of FILE in order and prints the answers as a YAML
mapping from question name to answer. Answers collected before an abort are
still printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuestionnaire(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runQuestionnaire(cmd *cobra.Command, path string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("ask run needs an interactive terminal")
	}

	qn, err := ask.LoadQuestionnaireFile(path)
	if err != nil {
		return err
	}

	p, err := newPrompter(cmd)
	if err != nil {
		return err
	}
	defer p.Close()

	answers, runErr := qn.Run(p)
	if len(answers) > 0 {
		out, err := yaml.Marshal(answers)
		if err != nil {
			return fmt.Errorf("failed to encode answers: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	}
	return runErr
}
