package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/squaresum/cycle"
)

// ErrEmptyInput indicates a verify input without any vertex.
var ErrEmptyInput = errors.New("cli: no vertices in input")

func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [file|-]",
		Short: "Check a sequence for the square-sum path and cycle properties",
		Long: `Verify reads integers separated by whitespace or commas (a run checkpoint
line is accepted as is; only the bracketed part is read) and reports whether
they form a square-sum Hamiltonian path and cycle on 1..n.

Exits non-zero if the input is not even a path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return c.verify(r)
		},
	}
}

func (c *CLI) verify(r io.Reader) error {
	seq, err := parseSequence(r)
	if err != nil {
		return err
	}
	s, err := cycle.New(seq)
	if err != nil {
		return err
	}

	path := s.IsPath()
	closed := path && s.IsCycle()
	if _, err = fmt.Fprintf(c.out, "n=%d path=%t cycle=%t\n", s.Len(), path, closed); err != nil {
		return err
	}
	if !path {
		return s.Validate()
	}
	return nil
}

// parseSequence reads integers separated by whitespace, commas or
// parentheses. If the input contains '[', only the text between the first
// '[' and the following ']' is read.
func parseSequence(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)
	if open := strings.IndexByte(text, '['); open >= 0 {
		text = text[open+1:]
		if end := strings.IndexByte(text, ']'); end >= 0 {
			text = text[:end]
		}
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '(', ')':
			return true
		}
		return false
	})
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}

	seq := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("cli: vertex %d: %w", i, err)
		}
		seq[i] = v
	}
	return seq, nil
}
