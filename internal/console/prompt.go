package console

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prints the label and returns one trimmed input line. The
// second return is false once input is exhausted.
func (c *Console) readLine(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

// promptRequired re-prompts until the input is non-blank, per the contract
// that the console never hands blank required fields to the core.
func (c *Console) promptRequired(label string) (string, bool) {
	for {
		v, ok := c.readLine(label)
		if !ok {
			return "", false
		}
		if v != "" {
			return v, true
		}
		fmt.Fprintln(c.out, "This field is required.")
	}
}

// promptInt re-prompts until the input parses as a whole number.
func (c *Console) promptInt(label string) (int, bool) {
	for {
		v, ok := c.readLine(label)
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
		fmt.Fprintln(c.out, "Enter a whole number.")
	}
}

// promptOptionalInt returns nil for blank input, otherwise re-prompts
// until the input parses.
func (c *Console) promptOptionalInt(label string) (*int, bool) {
	for {
		v, ok := c.readLine(label)
		if !ok {
			return nil, false
		}
		if v == "" {
			return nil, true
		}
		if n, err := strconv.Atoi(v); err == nil {
			return &n, true
		}
		fmt.Fprintln(c.out, "Enter a whole number or leave blank.")
	}
}

// promptFloat re-prompts until the input parses as a number.
func (c *Console) promptFloat(label string) (float64, bool) {
	for {
		v, ok := c.readLine(label)
		if !ok {
			return 0, false
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
		fmt.Fprintln(c.out, "Enter a number.")
	}
}
