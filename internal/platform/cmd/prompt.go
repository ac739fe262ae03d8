package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when stdin closes before an answer is read.
var ErrNoInput = errors.New("no input")

// Prompter asks questions on one stream and reads line answers from another.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), writer: out}
}

// Ask writes label and returns the next input line without its line ending.
// A final line without a newline is still returned.
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := io.WriteString(p.writer, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ValueOrAsk returns value when it is not blank and prompts otherwise.
func (p *Prompter) ValueOrAsk(value, label string) (string, error) {
	if strings.TrimSpace(value) != "" {
		return value, nil
	}
	return p.Ask(label)
}
