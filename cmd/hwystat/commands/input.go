package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// openInput returns the file named by args[0], or stdin when args is empty
// or names "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("opening input: %w", err)
	}
	return f, args[0], nil
}

// maxInputLine bounds the length of one input line. A whole series often
// arrives as a single comma-separated line.
const maxInputLine = 256 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	return sc
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
}

// parseValue accepts anything strconv.ParseFloat does plus "NA" and the
// empty string as NaN.
func parseValue(field string) (float64, error) {
	switch strings.ToLower(field) {
	case "", "na", "null":
		return strconv.ParseFloat("NaN", 64)
	}
	return strconv.ParseFloat(field, 64)
}

// readSeries reads every value in r as one series. Lines starting with #
// are comments.
func readSeries(r io.Reader) ([]float64, error) {
	var out []float64
	sc := newLineScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range splitFields(line) {
			v, err := parseValue(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return out, nil
}

// readColumns reads two columns, one row per line.
func readColumns(r io.Reader) (x, y []float64, err error) {
	sc := newLineScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: want 2 columns, got %d", lineNo, len(fields))
		}
		xv, err := parseValue(fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		yv, err := parseValue(fields[1])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}
	return x, y, nil
}
