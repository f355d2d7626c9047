package ask

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Document represents the current input state for completers
type Document struct {
	Text           string // The entire input text
	CursorPosition int    // Current cursor position in the text
}

// TextBeforeCursor returns the text before the cursor
func (d *Document) TextBeforeCursor() string {
	if d.CursorPosition < 0 || d.CursorPosition > len(d.Text) {
		return d.Text
	}
	return d.Text[:d.CursorPosition]
}

// TextAfterCursor returns the text after the cursor
func (d *Document) TextAfterCursor() string {
	if d.CursorPosition < 0 || d.CursorPosition >= len(d.Text) {
		return ""
	}
	return d.Text[d.CursorPosition:]
}

// calculateFuzzyScore calculates a fuzzy matching score between input and candidate.
// Returns 0 if no match, higher scores for better matches.
func calculateFuzzyScore(input, candidate string, ignoreCase bool) int {
	if input == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}

	searchInput := input
	searchCandidate := candidate
	if ignoreCase {
		searchInput = strings.ToLower(input)
		searchCandidate = strings.ToLower(candidate)
	}

	// Exact match gets highest score
	if searchInput == searchCandidate {
		return 1000
	}

	// Prefix match gets high score
	if strings.HasPrefix(searchCandidate, searchInput) {
		return 800 + len(searchInput)*10
	}

	// Contains match gets medium score
	if strings.Contains(searchCandidate, searchInput) {
		return 500 + len(searchInput)*5
	}

	// Every input character has to appear in order
	candidateIdx := 0
	score := 0
	for _, inputChar := range searchInput {
		found := false
		for candidateIdx < len(searchCandidate) {
			c := rune(searchCandidate[candidateIdx])
			candidateIdx++
			if c == inputChar {
				score += 10
				found = true
				break
			}
		}
		if !found {
			return 0
		}
	}
	return score
}

type choiceMatch struct {
	text  string
	score int
}

// NewChoiceCompleter returns a completer cycling through choices ranked by how
// well they match the text typed so far: exact match first, then prefix,
// substring and in-order character matches. Empty input yields every choice
// in its original order.
//
// Example:
//
//	q, _ := ask.NewQuestion("Command?  ", nil,
//		ask.WithCompletion(ask.NewChoiceCompleter([]string{"status", "commit", "push"})),
//	)
func NewChoiceCompleter(choices []string) CompletionFunc {
	return func(d Document) []string {
		input := d.TextBeforeCursor()
		if input == "" {
			return slices.Clone(choices)
		}

		var matches []choiceMatch
		for _, choice := range choices {
			if score := calculateFuzzyScore(input, choice, true); score > 0 {
				matches = append(matches, choiceMatch{text: choice, score: score})
			}
		}
		slices.SortStableFunc(matches, func(a, b choiceMatch) int {
			return b.score - a.score
		})

		candidates := make([]string, len(matches))
		for i, m := range matches {
			candidates[i] = m.text
		}
		return candidates
	}
}

// NewFileCompleter returns a completer listing the entries of dir whose names
// match glob and start with the text typed so far. Hidden entries are listed
// only when the typed text (or glob) starts with a dot. An empty dir means the
// working directory and an empty glob means "*".
func NewFileCompleter(dir, glob string) CompletionFunc {
	return func(d Document) []string {
		prefix := d.TextBeforeCursor()
		entries, err := listEntries(dir, glob, strings.HasPrefix(prefix, "."))
		if err != nil {
			return nil
		}
		candidates := make([]string, 0, len(entries))
		for _, name := range entries {
			if strings.HasPrefix(name, prefix) {
				candidates = append(candidates, name)
			}
		}
		return candidates
	}
}

// listEntries returns the sorted names in dir matching glob.
func listEntries(dir, glob string, includeHidden bool) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if glob == "" {
		glob = "*"
	}
	if strings.HasPrefix(glob, ".") {
		includeHidden = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !includeHidden {
			continue
		}
		ok, err := filepath.Match(glob, name)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, name)
		}
	}
	return names, nil
}
