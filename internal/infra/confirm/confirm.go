// Package confirm implements domain.Confirmer with an interactive prompt.
package confirm

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

// Prompt asks yes/no questions on the terminal.
type Prompt struct {
	affirmative string
	negative    string
}

// NewPrompt creates a Prompt with Indonesian button labels.
func NewPrompt() *Prompt {
	return &Prompt{affirmative: "Ya", negative: "Batal"}
}

// Confirm shows prompt and returns the answer. Aborting (Ctrl+C or Esc)
// counts as declining.
func (p *Prompt) Confirm(ctx context.Context, prompt string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative(p.affirmative).
			Negative(p.negative).
			Value(&ok),
	))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return ok, nil
}

// Static answers a fixed value without prompting (e.g. for --yes).
type Static bool

// Confirm returns the fixed answer.
func (s Static) Confirm(context.Context, string) (bool, error) {
	return bool(s), nil
}

var (
	_ domain.Confirmer = (*Prompt)(nil)
	_ domain.Confirmer = Static(false)
)
