// Package prompt implements the blocking, line-oriented questions asked by
// create-rspack. Each call writes a question, reads one line, and returns the
// answer directly.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rspack-contrib/create-rspack/internal/ui"
)

// ErrCancelled is returned when input ends before an answer is given.
var ErrCancelled = errors.New("prompt cancelled")

// Choice is one option of a Select prompt.
type Choice struct {
	Title string // shown to the user
	Value string // returned when chosen
}

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
	styles ui.Styles
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		w:      w,
		styles: ui.New(w),
	}
}

// Styles returns the styles bound to the prompt writer.
func (p *Prompter) Styles() ui.Styles { return p.styles }

// Text asks for free-form input. The line is returned as typed (without the
// line terminator); callers apply their own defaulting and normalization.
// initial is only displayed as a hint.
func (p *Prompter) Text(message, initial string) (string, error) {
	fmt.Fprintf(p.w, "%s %s", p.styles.Choice.Render("?"), p.styles.Question.Render(message))
	if initial != "" {
		fmt.Fprintf(p.w, " %s", p.styles.Hint.Render("("+initial+")"))
	}
	fmt.Fprint(p.w, " ")

	return p.readLine()
}

// Select asks the user to pick one of choices and returns its Value. An empty
// answer picks choices[initial]; a number in range or an exact Value picks
// that choice. Anything else is reported and the question is asked again.
func (p *Prompter) Select(message string, choices []Choice, initial int) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("%s: no choices", message)
	}
	if initial < 0 || initial >= len(choices) {
		initial = 0
	}

	fmt.Fprintf(p.w, "%s %s\n", p.styles.Choice.Render("?"), p.styles.Question.Render(message))
	for i, c := range choices {
		marker := "  "
		if i == initial {
			marker = p.styles.Choice.Render("❯ ")
		}
		fmt.Fprintf(p.w, "%s%d) %s\n", marker, i+1, c.Title)
	}

	for {
		fmt.Fprintf(p.w, "Enter number [1-%d] %s ", len(choices), p.styles.Hint.Render("("+strconv.Itoa(initial+1)+")"))

		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		idx, ok := matchChoice(strings.TrimSpace(line), choices, initial)
		if ok {
			return choices[idx].Value, nil
		}
		fmt.Fprintln(p.w, p.styles.Warning.Render(
			fmt.Sprintf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(choices))))
	}
}

// matchChoice resolves an answer to a choice index.
func matchChoice(answer string, choices []Choice, initial int) (int, bool) {
	if answer == "" {
		return initial, true
	}
	if num, err := strconv.Atoi(answer); err == nil {
		if num >= 1 && num <= len(choices) {
			return num - 1, true
		}
		return 0, false
	}
	for i, c := range choices {
		if c.Value == answer {
			return i, true
		}
	}
	return 0, false
}

// readLine reads one line. End of input with nothing typed cancels the prompt;
// a final unterminated line is still accepted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			fmt.Fprintln(p.w)
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
