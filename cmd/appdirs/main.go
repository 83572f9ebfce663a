// Package main is the entry point for the appdirs CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/appdirs/cmd/appdirs/commands"
	apperrors "github.com/thoreinstein/appdirs/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *apperrors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(apperrors.ExitUser)
	}
}
