// Package host implements the built-in functions predeclared in every
// program's global scope: Write, WriteLine, ReadNumber and ReadText. Their
// identifiers and signatures are fixed; only the underlying io.Writer and
// io.Reader are supplied by the embedder.
package host

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/nutmeg/internal/value"
)

// IO bundles the standard streams the built-ins read and write through.
type IO struct {
	Out io.Writer
	in  *bufio.Reader
}

// New wraps out and in for use as the host's standard streams.
func New(out io.Writer, in io.Reader) *IO {
	return &IO{Out: out, in: bufio.NewReader(in)}
}

// Write prints its argument with no trailing newline.
func (h *IO) Write(args []value.Value) (value.Value, error) {
	fmt.Fprint(h.Out, args[0].String())
	return value.Void, nil
}

// WriteLine prints its argument followed by a newline.
func (h *IO) WriteLine(args []value.Value) (value.Value, error) {
	fmt.Fprintln(h.Out, args[0].String())
	return value.Void, nil
}

// ReadNumber blocks for one whitespace-delimited token from the input
// stream and parses it as a number.
func (h *IO) ReadNumber(args []value.Value) (value.Value, error) {
	tok, err := h.readToken()
	if err != nil {
		return value.Void, err
	}
	n, err := parseFloat(tok)
	if err != nil {
		return value.Void, err
	}
	return value.Number(n), nil
}

// ReadText blocks for one whitespace-delimited token from the input
// stream and returns it verbatim.
func (h *IO) ReadText(args []value.Value) (value.Value, error) {
	tok, err := h.readToken()
	if err != nil {
		return value.Void, err
	}
	return value.String(tok), nil
}

// readToken skips leading whitespace then reads up to (excluding) the next
// run of whitespace or EOF.
func (h *IO) readToken() (string, error) {
	var r rune
	var err error

	for {
		r, _, err = h.in.ReadRune()
		if err != nil {
			return "", err
		}
		if !isSpace(r) {
			break
		}
	}

	var sb []rune
	sb = append(sb, r)
	for {
		r, _, err = h.in.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isSpace(r) {
			break
		}
		sb = append(sb, r)
	}
	return string(sb), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
