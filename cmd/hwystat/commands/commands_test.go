package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ajroetker/hwystat/hwy"
)

// execute runs a fresh command tree with args and stdin and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func executeJSON(t *testing.T, stdin string, args ...string) map[string]any {
	t.Helper()
	out, err := execute(t, stdin, append(args, "--format", "json")...)
	if err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	return got
}

func TestDescribe(t *testing.T) {
	got := executeJSON(t, "2 4 4 4\n5,5,7,9\n", "describe", "--bias")
	want := map[string]any{
		"count": 8.0, "valid": 8.0, "sum": 40.0, "mean": 5.0, "var": 4.0,
		"std": 2.0, "min": 2.0, "max": 9.0, "argmin": 0.0, "argmax": 7.0,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s: got %v, want %v", k, got[k], v)
		}
	}
}

func TestDescribeNaN(t *testing.T) {
	got := executeJSON(t, "# prices\n1\nNaN\n3\nNA\n", "describe")
	if got["count"] != 4.0 || got["valid"] != 2.0 || got["mean"] != 2.0 {
		t.Errorf("got %v", got)
	}
}

func TestDescribeEmpty(t *testing.T) {
	got := executeJSON(t, "", "describe")
	if got["min"] != "+Inf" || got["max"] != "-Inf" || got["mean"] != "NaN" {
		t.Errorf("got %v", got)
	}
	if got["argmin"] != -1.0 {
		t.Errorf("argmin: got %v, want -1", got["argmin"])
	}
}

func TestDescribeText(t *testing.T) {
	out, err := execute(t, "1 2 3", "describe", "--precision", "3")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"count    3", "mean     2", "kurt"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.txt")
	if err := os.WriteFile(path, []byte("10\n20\n30\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got := executeJSON(t, "", "describe", path)
	if got["mean"] != 20.0 {
		t.Errorf("mean: got %v, want 20", got["mean"])
	}
}

func TestDescribeLongLine(t *testing.T) {
	const n = 20000
	values := make([]string, n)
	for i := range values {
		values[i] = strconv.Itoa(1000 + i%100)
	}
	// 20000 values on one comma-separated line, past bufio's default token size.
	got := executeJSON(t, strings.Join(values, ",")+"\n", "describe")
	if got["count"] != float64(n) || got["mean"] != 1049.5 {
		t.Errorf("got count %v mean %v, want %d and 1049.5", got["count"], got["mean"], n)
	}
}

func TestDescribeStdinWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.txt")
	if err := os.WriteFile(path, []byte("10 20"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "1 2 3", "describe", "--format", "json", "-", path)
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 2 {
		t.Errorf("got %d lines, want 2:\n%s", len(lines), out)
	}
}

func TestDescribeManyFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i, content := range []string{"1 2 3", "10 20 30 40", "5"} {
		path := filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	out, err := execute(t, "", append([]string{"describe", "--format", "json", "--workers", "2"}, paths...)...)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	wantMeans := []float64{2, 25, 5}
	for i, line := range lines {
		var got map[string]any
		if err := json.Unmarshal([]byte(line), &got); err != nil {
			t.Fatal(err)
		}
		if got["file"] != paths[i] || got["mean"] != wantMeans[i] {
			t.Errorf("line %d: got %v", i, got)
		}
	}
}

func TestPair(t *testing.T) {
	input := "1,2\n2,4\n3,6\n4,8\n5,10\n6,12\n7,14\n8,16\n9,18\nNaN,3\n"
	got := executeJSON(t, input, "pair")
	if got["count"] != 10.0 || got["corr"] != 1.0 || got["beta"] != 2.0 {
		t.Errorf("got %v", got)
	}
}

func TestEMA(t *testing.T) {
	got := executeJSON(t, "1 2 3 4 6", "ema", "-n", "3")
	if got["ema"] != 4.5 {
		t.Errorf("ema: got %v, want 4.5", got["ema"])
	}
}

func TestTransform(t *testing.T) {
	out, err := execute(t, "0 1 2 3 4 5 6 7 8 10", "transform", "--func", "exp2")
	if err != nil {
		t.Fatal(err)
	}
	want := "1\n2\n4\n8\n16\n32\n64\n128\n256\n1024\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestTransformPowJSON(t *testing.T) {
	out, err := execute(t, "0 1 2 -1", "transform", "-f", "pow", "--base", "10", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var got []float64
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 10, 100, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pow10[%d]: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInfoWidth(t *testing.T) {
	before := hwy.CurrentWidth()
	got := executeJSON(t, "", "info", "--width", "16")
	if got["width"] != 16.0 || got["lanes"] != 2.0 {
		t.Errorf("got %v", got)
	}
	if hwy.CurrentWidth() != before {
		t.Errorf("width not restored: got %d, want %d", hwy.CurrentWidth(), before)
	}
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("HWYSTAT_WIDTH", "32")
	got := executeJSON(t, "", "info")
	if got["lanes"] != 4.0 {
		t.Errorf("lanes: got %v, want 4", got["lanes"])
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
	}{
		{"bad value", "1 x 3", []string{"describe"}, "line 1"},
		{"missing file", "", []string{"describe", "/nonexistent/series"}, "opening input"},
		{"bad columns", "1 2 3\n", []string{"pair"}, "want 2 columns"},
		{"unknown func", "1", []string{"transform", "-f", "sin"}, "unknown function"},
		{"bad base", "1", []string{"transform", "-f", "pow", "--base", "-2"}, "base must be positive"},
		{"bad window", "1", []string{"ema", "-n", "0"}, "window must be positive"},
		{"bad width", "", []string{"info", "--width", "24"}, "width"},
		{"bad format", "", []string{"info", "--format", "xml"}, "format"},
		{"stdin twice", "1 2", []string{"describe", "-", "-"}, "only once"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
