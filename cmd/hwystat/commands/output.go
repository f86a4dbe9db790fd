package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// field is one named result in command output.
type field struct {
	name  string
	value any
}

// writeFields prints fields as aligned "name value" lines, or as one JSON
// object in field order. Non-finite floats become the JSON strings "NaN",
// "+Inf" and "-Inf".
func (a *app) writeFields(w io.Writer, fields []field) error {
	if a.cfg.Format == "json" {
		return writeJSON(w, fields)
	}
	p := message.NewPrinter(language.English)
	for _, f := range fields {
		switch v := f.value.(type) {
		case float64:
			p.Fprintf(w, "%-8s %s\n", f.name, strconv.FormatFloat(v, 'g', a.cfg.Precision, 64))
		case int:
			p.Fprintf(w, "%-8s %d\n", f.name, v)
		default:
			p.Fprintf(w, "%-8s %v\n", f.name, v)
		}
	}
	return nil
}

// writeValues prints one value per line, or a JSON array.
func (a *app) writeValues(w io.Writer, values []float64) error {
	if a.cfg.Format == "json" {
		out := make([]any, len(values))
		for i, v := range values {
			out[i] = jsonFloat(v)
		}
		return json.NewEncoder(w).Encode(out)
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'g', a.cfg.Precision, 64)); err != nil {
			return err
		}
	}
	return nil
}

func jsonFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}

func writeJSON(w io.Writer, fields []field) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.name)
		if err != nil {
			return err
		}
		value := f.value
		if v, ok := value.(float64); ok {
			value = jsonFloat(v)
		}
		val, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", f.name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}
