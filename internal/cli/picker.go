package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ErrPickAborted is returned when the user leaves the picker without
// choosing.
var ErrPickAborted = errors.New("no context selected")

// lineReader is the subset of *readline.Instance the picker uses.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Picker asks the user to choose one context name.
type Picker struct {
	out       io.Writer
	newReader func(names []string) (lineReader, error)
}

// NewPicker creates a picker that prints to out and reads from the
// terminal, completing context names on TAB.
func NewPicker(out io.Writer) *Picker {
	return &Picker{out: out, newReader: newReadlineReader}
}

func newReadlineReader(names []string) (lineReader, error) {
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "Select context (number or name, empty to cancel): ",
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		HistoryLimit:    -1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	return rl, nil
}

// Pick lists names, marking current and any recent names, and returns the
// chosen name. Recent names are listed first.
func (p *Picker) Pick(names []string, current string, recent []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no contexts available")
	}

	ordered := pickOrder(names, recent)
	isRecent := make(map[string]bool, len(recent))
	for _, name := range recent {
		isRecent[name] = true
	}

	for i, name := range ordered {
		marker := " "
		if name == current {
			marker = text.FgGreen.Sprint("*")
		}
		line := fmt.Sprintf("%s %2d) %s", marker, i+1, name)
		if isRecent[name] {
			line += text.FgHiBlack.Sprint(" (recent)")
		}
		fmt.Fprintln(p.out, line)
	}

	rl, err := p.newReader(ordered)
	if err != nil {
		return "", err
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrPickAborted
		}
		if err != nil {
			return "", fmt.Errorf("readline error: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			return "", ErrPickAborted
		}
		if choice, ok := resolveChoice(ordered, input); ok {
			return choice, nil
		}
		fmt.Fprintf(p.out, "Invalid selection %q, enter a number between 1 and %d or a context name.\n", input, len(ordered))
	}
}

// pickOrder puts the recent names that exist first, then the rest in their
// original order.
func pickOrder(names, recent []string) []string {
	exists := make(map[string]bool, len(names))
	for _, name := range names {
		exists[name] = true
	}

	ordered := make([]string, 0, len(names))
	placed := make(map[string]bool, len(names))
	for _, name := range recent {
		if exists[name] && !placed[name] {
			ordered = append(ordered, name)
			placed[name] = true
		}
	}
	for _, name := range names {
		if !placed[name] {
			ordered = append(ordered, name)
			placed[name] = true
		}
	}
	return ordered
}

func resolveChoice(ordered []string, input string) (string, bool) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(ordered) {
			return ordered[n-1], true
		}
	}
	for _, name := range ordered {
		if name == input {
			return name, true
		}
	}
	return "", false
}
