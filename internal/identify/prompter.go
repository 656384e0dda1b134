package identify

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Nomadcxx/jellyname/internal/ui"
)

// Answer is a user's response to a candidate confirmation.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	AnswerSkip
)

// Prompter supplies the interactive answers the engine needs. Injecting it
// keeps the engine testable with scripted responses.
type Prompter interface {
	// Confirm asks a yes/no question, re-prompting until the answer is
	// one of y/n.
	Confirm(question string) bool

	// ConfirmCandidate asks whether a catalog candidate matches an item,
	// re-prompting until the answer is one of y/n/s.
	ConfirmCandidate(item, title, date, mediaType string) Answer

	// Ask poses a free-text question and returns the trimmed reply. An
	// exhausted input stream returns an error so callers stop prompting
	// a reader that can never answer.
	Ask(question string) (string, error)
}

// ConsolePrompter reads answers from an input stream, normally stdin.
type ConsolePrompter struct {
	reader *bufio.Reader
}

// NewConsolePrompter returns a Prompter reading from stdin.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{reader: bufio.NewReader(os.Stdin)}
}

// NewConsolePrompterFrom returns a Prompter reading from r.
func NewConsolePrompterFrom(r io.Reader) *ConsolePrompter {
	return &ConsolePrompter{reader: bufio.NewReader(r)}
}

func (p *ConsolePrompter) readLine() string {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		// Treat a closed stdin as a refusal rather than spinning on the
		// re-prompt loops.
		return "n"
	}
	return strings.ToLower(strings.TrimSpace(line))
}

func (p *ConsolePrompter) Confirm(question string) bool {
	for {
		fmt.Printf("%s (y/n)? ", question)
		response := p.readLine()
		switch response {
		case "y":
			return true
		case "n":
			return false
		}
		fmt.Println(ui.Warning(fmt.Sprintf("Invalid response of %q.", response)))
	}
}

func (p *ConsolePrompter) ConfirmCandidate(item, title, date, mediaType string) Answer {
	styledType := ui.Movie(mediaType)
	if mediaType == "tv" {
		styledType = ui.TVShow(mediaType)
	}

	for {
		fmt.Printf("\nFor %s\n", ui.Path(item))
		fmt.Printf("Is %q %q %s correct? (y/n/s) ", title, date, styledType)
		response := p.readLine()
		switch response {
		case "y":
			return AnswerYes
		case "n":
			return AnswerNo
		case "s":
			fmt.Println("Skipping")
			return AnswerSkip
		}
		fmt.Println(ui.Warning(fmt.Sprintf("Invalid response of %q.", response)))
	}
}

func (p *ConsolePrompter) Ask(question string) (string, error) {
	fmt.Print(question)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("input closed: %w", err)
	}
	return strings.TrimSpace(line), nil
}
