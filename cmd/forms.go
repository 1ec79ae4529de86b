package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// errNoTerminal is returned when a form would be needed but stdin is not
// interactive.
var errNoTerminal = errors.New("missing arguments and stdin is not a terminal")

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// runForm runs f, treating a user abort as a clean exit.
func runForm(f *huh.Form) (bool, error) {
	if !interactive() {
		return false, errNoTerminal
	}
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("form: %w", err)
	}
	return true, nil
}
