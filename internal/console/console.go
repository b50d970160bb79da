// Package console implements the confirmed-input prompting the interactive
// exercises use. Prompts read from and write to injected streams so tests
// can script them.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrAborted is returned when the user chooses to abort at a
	// try-again-or-abort prompt.
	ErrAborted = errors.New("console: aborted by user")
	// ErrMaxAttempts is returned when confirmation attempts run out.
	ErrMaxAttempts = errors.New("console: maximum retries exceeded")
)

const defaultMaxAttempts = 5

// Console prompts for and confirms user input.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// MaxAttempts bounds how many times a confirmed prompt is retried.
	MaxAttempts int
}

// New returns a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:          bufio.NewReader(in),
		out:         out,
		MaxAttempts: defaultMaxAttempts,
	}
}

// Default returns a console over stdin and stdout.
func Default() *Console {
	return New(os.Stdin, os.Stdout)
}

// readLine displays the prompt and returns one trimmed line of input.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("console: read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// BinaryChoice prompts for one of two possible answers.
func (c *Console) BinaryChoice(prompt, first, second string) (string, error) {
	choice, err := c.readLine(prompt)
	if err != nil {
		return "", err
	}
	lowered := strings.ToLower(choice)
	if lowered != first && lowered != second {
		return "", fmt.Errorf("console: value %q is not one of %q or %q", choice, first, second)
	}
	return lowered, nil
}

// YesNo asks a yes-or-no question.
func (c *Console) YesNo(prompt string) (bool, error) {
	answer, err := c.BinaryChoice(prompt+" (y/n) ", "y", "n")
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// TryAgainOrAbort asks whether to retry an operation. It returns ErrAborted
// when the user opts out.
func (c *Console) TryAgainOrAbort() error {
	choice, err := c.BinaryChoice("(t)ry again or (a)bort? ", "t", "a")
	if err != nil {
		return err
	}
	if choice == "a" {
		return ErrAborted
	}
	return nil
}

// ConfirmedString prompts for a value and asks the user to confirm it.
func (c *Console) ConfirmedString(prompt string) (string, error) {
	for attempt := 0; attempt < c.MaxAttempts; attempt++ {
		value, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}
		ok, err := c.YesNo(fmt.Sprintf("You entered %s. Is this correct?", value))
		if err != nil {
			return "", err
		}
		if ok {
			return value, nil
		}
	}
	return "", ErrMaxAttempts
}

// ConfirmedFloat prompts for a real number and asks the user to confirm it.
// On invalid input the user may try again or abort.
func (c *Console) ConfirmedFloat(prompt string) (float64, error) {
	for attempt := 0; attempt < c.MaxAttempts; attempt++ {
		raw, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintf(c.out, "ERROR: %s is not a valid real number.\n", raw)
			if err := c.TryAgainOrAbort(); err != nil {
				return 0, err
			}
			continue
		}
		ok, err := c.YesNo(fmt.Sprintf("You entered %g. Is this correct?", value))
		if err != nil {
			return 0, err
		}
		if ok {
			return value, nil
		}
	}
	return 0, ErrMaxAttempts
}

// ConfirmedList prompts for a comma-separated list of real numbers and asks
// the user to confirm it. On invalid input or a list longer than maxLen the
// user may try again or abort; a maxLen of 0 means unbounded.
func (c *Console) ConfirmedList(prompt string, maxLen int) ([]float64, error) {
	for attempt := 0; attempt < c.MaxAttempts; attempt++ {
		raw, err := c.readLine(prompt)
		if err != nil {
			return nil, err
		}
		values, parseErr := parseList(raw)
		if parseErr != nil {
			fmt.Fprintf(c.out, "ERROR: %s is not a valid list of real numbers.\n", raw)
			if err := c.TryAgainOrAbort(); err != nil {
				return nil, err
			}
			continue
		}
		if maxLen > 0 && len(values) > maxLen {
			fmt.Fprintf(c.out, "ERROR: lists may hold at most %d values.\n", maxLen)
			if err := c.TryAgainOrAbort(); err != nil {
				return nil, err
			}
			continue
		}
		ok, err := c.YesNo(fmt.Sprintf("You entered %v. Is this correct?", values))
		if err != nil {
			return nil, err
		}
		if ok {
			return values, nil
		}
	}
	return nil, ErrMaxAttempts
}

func parseList(raw string) ([]float64, error) {
	var values []float64
	for _, cell := range strings.Split(raw, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ConfirmedInt prompts for an integer and asks the user to confirm it.
func (c *Console) ConfirmedInt(prompt string) (int, error) {
	raw, err := c.ConfirmedString(prompt)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("console: %q is not an integer", raw)
	}
	return value, nil
}

// ChooseFromList displays a numbered menu and returns the chosen value.
func (c *Console) ChooseFromList(prompt string, values []string) (string, error) {
	for attempt := 0; attempt < c.MaxAttempts; attempt++ {
		fmt.Fprintln(c.out, prompt)
		for i, v := range values {
			fmt.Fprintf(c.out, "%d) %s\n", i+1, v)
		}

		raw, err := c.readLine("Enter a number: ")
		if err != nil {
			return "", err
		}
		ok, err := c.YesNo(fmt.Sprintf("You entered %s. Is this correct?", raw))
		if err != nil {
			return "", err
		}

		num, convErr := strconv.Atoi(raw)
		if convErr != nil {
			fmt.Fprintf(c.out, "ERROR: %s is an invalid number.\n", raw)
			if err := c.TryAgainOrAbort(); err != nil {
				return "", err
			}
			continue
		}

		if ok {
			if num < 1 || num > len(values) {
				fmt.Fprintf(c.out, "ERROR: %d is an invalid option.\n", num)
				if err := c.TryAgainOrAbort(); err != nil {
					return "", err
				}
				continue
			}
			return values[num-1], nil
		}
	}
	return "", ErrMaxAttempts
}

// ExistingFileName prompts until the user names a file that exists.
func (c *Console) ExistingFileName(prompt string) (string, error) {
	for attempt := 0; attempt < c.MaxAttempts; attempt++ {
		name, err := c.ConfirmedString(prompt)
		if err != nil {
			return "", err
		}
		if _, statErr := os.Stat(name); statErr == nil {
			return name, nil
		}
		fmt.Fprintf(c.out, "ERROR: file %s does not exist.\n", name)
		if err := c.TryAgainOrAbort(); err != nil {
			return "", err
		}
	}
	return "", ErrMaxAttempts
}
