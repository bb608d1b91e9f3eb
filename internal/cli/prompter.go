package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter reads mining thresholds interactively. Thresholds are entered
// as percentages between 0 and 100 and returned as fractions; invalid
// input is re-asked rather than treated as an error.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter over the given reader and writer,
// defaulting to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// MinSupport prompts for the minimum support percentage.
func (p *Prompter) MinSupport() (float64, error) {
	return p.percentage("Enter the minimum support (as a percentage between 0 and 100)")
}

// MinConfidence prompts for the minimum confidence percentage.
func (p *Prompter) MinConfidence() (float64, error) {
	return p.percentage("Enter the minimum confidence (as a percentage between 0 and 100)")
}

func (p *Prompter) percentage(prompt string) (float64, error) {
	for {
		if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
			return 0, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		atEOF := err == io.EOF

		value, parseErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		switch {
		case parseErr != nil:
			if _, err := fmt.Fprintln(p.writer, FormatWarning("Invalid input. Please enter a number.")); err != nil {
				return 0, fmt.Errorf("failed to write warning: %w", err)
			}
		case value < 0 || value > 100:
			if _, err := fmt.Fprintln(p.writer, FormatWarning("Please enter a value between 0 and 100.")); err != nil {
				return 0, fmt.Errorf("failed to write warning: %w", err)
			}
		default:
			return value / 100, nil
		}

		if atEOF {
			return 0, fmt.Errorf("input ended before a valid percentage was entered: %w", io.ErrUnexpectedEOF)
		}
	}
}
