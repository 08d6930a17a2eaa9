// Package input reads numeric rows from command-line arguments and streams.
//
// A row is a list of numbers separated by whitespace or commas. In a stream
// every non-blank line is one row; lines starting with '#' are comments.
// "nan", "inf" and "-inf" are accepted.
package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/textplot/pkg/errors"
)

// maxLineSize caps a single input line.
const maxLineSize = 4 * 1024 * 1024

// ParseRow parses one row of numbers.
func ParseRow(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, isSeparator)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInputParse, "'%s' is not a number", f).
				WithDetail("token", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseArgs joins command-line arguments into a single row.
func ParseArgs(args []string) ([]float64, error) {
	return ParseRow(strings.Join(args, " "))
}

// ReadRows reads one row per line from r.
func ReadRows(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := ParseRow(text)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInputParse, "line %d", line).WithDetail("line", line)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputParse, "failed to read input")
	}
	return rows, nil
}

// Flatten concatenates rows into one.
func Flatten(rows [][]float64) []float64 {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	out := make([]float64, 0, n)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
