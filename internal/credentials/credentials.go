// Package credentials resolves the provider API key from configuration or,
// when absent, from an interactive masked prompt.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Accepted API key length bounds.
const (
	MinKeyLength = 3
	MaxKeyLength = 200
)

const maxPromptAttempts = 3

// Validate checks an API key against the accepted length bounds.
func Validate(key string) error {
	if len(key) < MinKeyLength {
		return fmt.Errorf("API key too short (minimum %d characters)", MinKeyLength)
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("API key too long (maximum %d characters)", MaxKeyLength)
	}
	return nil
}

// Resolve returns the configured API key, or prompts for one when the
// configured value is blank. The configured value should already have
// ${ENV_VAR} references expanded.
func Resolve(configured string) (string, error) {
	if key := strings.TrimSpace(configured); key != "" {
		if err := Validate(key); err != nil {
			return "", err
		}
		return key, nil
	}
	return promptMasked()
}

// promptMasked reads the key from the terminal without echoing it.
func promptMasked() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no API key configured and stdin is not a terminal")
	}

	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		fmt.Fprint(os.Stderr, "OpenAI API key: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		key := strings.TrimSpace(string(raw))
		if err := Validate(key); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		return key, nil
	}

	return "", errors.New("no valid API key entered")
}
