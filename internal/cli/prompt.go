package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter reads line-oriented input and writes prompts. All menus share one
// instance so buffered input is never split between readers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given reader and writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Printf writes formatted output to the prompter's writer.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Line prints the prompt and reads one trimmed line. Returns io.EOF when
// input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Int reads lines until one parses as an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			p.Printf("Please enter a number\n")
			continue
		}
		return n, nil
	}
}

// Int64 reads lines until one parses as a 64-bit integer.
func (p *Prompter) Int64(prompt string) (int64, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			p.Printf("Please enter a number\n")
			continue
		}
		return n, nil
	}
}

// Decimal reads lines until one parses as a decimal number.
func (p *Prompter) Decimal(prompt string) (decimal.Decimal, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return decimal.Zero, err
		}

		d, err := decimal.NewFromString(line)
		if err != nil {
			p.Printf("Please enter a number\n")
			continue
		}
		return d, nil
	}
}

// YesNo reads a y/n answer. Anything other than y or Y counts as no.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "y"), nil
}
