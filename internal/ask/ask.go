// Package ask implements the interactive questionnaire primitives: free-text
// questions, numbered multiple choice, and yes/no confirmation.
package ask

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed reports that standard input reached EOF while an answer was
// still needed. Callers treat this as fatal rather than re-prompting forever
// in piped or scripted contexts.
var ErrInputClosed = errors.New("input closed before an answer was given")

// Asker reads answers from an input stream and writes prompts to an output
// stream. It holds no answer state; collected answers live in project.Info.
type Asker struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates an Asker bound to the given streams.
func New(in io.Reader, out io.Writer) *Asker {
	return &Asker{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Question asks for a free-text answer. Blank input returns def when a
// default exists. A required question with no default re-prompts on blank
// input until something is entered or input closes.
func (a *Asker) Question(prompt, def string, required bool) (string, error) {
	for {
		a.printPrompt(prompt, def)

		answer, err := a.readLine()
		if err != nil {
			return "", err
		}

		if answer == "" {
			if def != "" {
				return def, nil
			}
			if required {
				fmt.Fprintln(a.out, "  This field is required.")
				continue
			}
			return "", nil
		}
		return answer, nil
	}
}

// MultipleChoice prints a 1-indexed list of choices and returns the selected
// choice. Blank input returns def when def is one of the choices. Out-of-range
// or non-numeric input re-prompts. The returned value is always an element of
// choices.
func (a *Asker) MultipleChoice(prompt string, choices []string, def string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("no choices supplied")
	}

	for {
		fmt.Fprintf(a.out, "%s\n", prompt)
		for i, choice := range choices {
			marker := " "
			if choice == def {
				marker = "*"
			}
			fmt.Fprintf(a.out, " %s %d. %s\n", marker, i+1, choice)
		}
		fmt.Fprint(a.out, "Select: ")

		answer, err := a.readLine()
		if err != nil {
			return "", err
		}

		if answer == "" && def != "" {
			for _, choice := range choices {
				if choice == def {
					return def, nil
				}
			}
		}

		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(a.out, "  Please enter a number from the list.")
			continue
		}
		if n < 1 || n > len(choices) {
			fmt.Fprintf(a.out, "  Please enter a number between 1 and %d.\n", len(choices))
			continue
		}
		return choices[n-1], nil
	}
}

// YesNo asks a yes/no question. Blank input returns def. Accepts y/yes/n/no
// in any case; anything else re-prompts.
func (a *Asker) YesNo(prompt string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	for {
		fmt.Fprintf(a.out, "%s %s ", prompt, hint)

		answer, err := a.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(a.out, "  Please answer y or n.")
		}
	}
}

// printPrompt renders a free-text prompt, showing the default when present.
func (a *Asker) printPrompt(prompt, def string) {
	if def != "" {
		fmt.Fprintf(a.out, "%s [%s]: ", prompt, def)
		return
	}
	fmt.Fprintf(a.out, "%s: ", prompt)
}

// readLine reads one trimmed line. EOF with no pending data maps to
// ErrInputClosed; a final unterminated line is still returned as an answer.
func (a *Asker) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				return trimmed, nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
