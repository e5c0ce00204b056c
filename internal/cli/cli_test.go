package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/shapealign/pkg/cache"
	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
	"github.com/matzehuels/shapealign/pkg/slide"
)

const threeShapes = `{
  "shapes": [
    {"id": "A", "left": 700, "top": 10, "width": 50, "height": 50, "label": "email icon"},
    {"id": "B", "left": 100, "top": 200, "width": 50, "height": 50},
    {"id": "C", "left": 400, "top": 90, "width": 50, "height": 50}
  ]
}`

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.out, c.data = &out, &out
	return c, &out
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func lefts(t *testing.T, path string) map[string]float64 {
	t.Helper()
	s, err := slide.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error: %v", path, err)
	}
	out := make(map[string]float64, len(s.Shapes))
	for _, sh := range s.Shapes {
		out[sh.ID] = sh.Left
	}
	return out
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, explicit, want string
	}{
		{"slide.json", "", "slide.arranged.json"},
		{"deck/slide3.json", "", "deck/slide3.arranged.json"},
		{"slide", "", "slide.arranged"},
		{"slide.json", "out.json", "out.json"},
		{"slide.json", "-", "-"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.explicit); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.explicit, got, tt.want)
		}
	}
}

func TestOutputPathIn(t *testing.T) {
	if got := outputPathIn("", "deck/a.json"); got != filepath.Join("deck", "a.arranged.json") {
		t.Errorf("outputPathIn(\"\", deck/a.json) = %q", got)
	}
	if got := outputPathIn("out", "deck/a.json"); got != filepath.Join("out", "a.arranged.json") {
		t.Errorf("outputPathIn(out, deck/a.json) = %q", got)
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"12,7,9", []string{"12", "7", "9"}},
		{" a , b ,, c ", []string{"a", "b", "c"}},
		{"a,a", []string{"a", "a"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := parseOrder(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseOrder(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestArrangeCommand(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "arrange", input, "--order", "A,ghost,B,C", "--mode", "horizontal_distribute"); err != nil {
		t.Fatalf("arrange error: %v", err)
	}

	got := lefts(t, outputPath(input, ""))
	want := map[string]float64{"A": 40, "B": 455, "C": 870}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lefts = %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "no shape with id ghost") {
		t.Errorf("output does not mention the skipped id:\n%s", out)
	}
}

func TestArrangeDirectiveFile(t *testing.T) {
	c, _ := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)
	directive := writeTemp(t, "d.json", `{"order":["C","B","A"],"alignment":"horizontal_distribute","explanation":"reverse"}`)
	output := filepath.Join(t.TempDir(), "out.json")

	if err := execute(c, "arrange", input, "-d", directive, "-o", output); err != nil {
		t.Fatalf("arrange error: %v", err)
	}
	got := lefts(t, output)
	if got["C"] != 40 || got["B"] != 455 || got["A"] != 870 {
		t.Errorf("lefts = %v", got)
	}
}

func TestArrangeCanvasFlagsWin(t *testing.T) {
	c, _ := newTestCLI(t)
	input := writeTemp(t, "slide.json", strings.Replace(threeShapes, `"shapes"`, `"canvas": {"width": 720, "height": 540, "margin": 36}, "shapes"`, 1))

	err := execute(c, "arrange", input, "--order", "A,B", "--mode", "horizontal_distribute",
		"--canvas-width", "200", "--margin", "0")
	if err != nil {
		t.Fatalf("arrange error: %v", err)
	}
	got := lefts(t, outputPath(input, ""))
	if got["A"] != 0 || got["B"] != 150 {
		t.Errorf("lefts = %v, want A=0 B=150", got)
	}
}

func TestArrangeNoticeWritesNothing(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "arrange", input, "--order", "A,ghost", "--mode", "horizontal_distribute"); err != nil {
		t.Fatalf("a notice must not fail the command: %v", err)
	}
	if _, err := os.Stat(outputPath(input, "")); !os.IsNotExist(err) {
		t.Errorf("output written for a skipped arrangement (stat err %v)", err)
	}
	if !strings.Contains(out.String(), "Nothing arranged") {
		t.Errorf("output missing notice:\n%s", out)
	}
}

func TestArrangeRepeatedSingleShape(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "arrange", input, "--order", "A,A", "--mode", "horizontal_distribute"); err != nil {
		t.Fatalf("a notice must not fail the command: %v", err)
	}
	if _, err := os.Stat(outputPath(input, "")); !os.IsNotExist(err) {
		t.Errorf("output written for one repeated shape (stat err %v)", err)
	}
	if !strings.Contains(out.String(), "Nothing arranged") {
		t.Errorf("output missing notice:\n%s", out)
	}
}

func TestArrangeStrict(t *testing.T) {
	c, _ := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	err := execute(c, "arrange", input, "--order", "x,y", "--mode", "horizontal_distribute", "--strict")
	if err == nil {
		t.Fatal("expected an error with --strict and no matching ids")
	}
}

func TestArrangeRequiresDirective(t *testing.T) {
	c, _ := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "arrange", input); err == nil {
		t.Fatal("expected an error without --directive or --order")
	}
}

func TestArrangeToStdout(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "arrange", input, "--order", "A,B,C", "-m", "horizontal_distribute", "-o", "-"); err != nil {
		t.Fatalf("arrange error: %v", err)
	}
	s, err := slide.Read(out)
	if err != nil {
		t.Fatalf("stdout is not a snapshot: %v", err)
	}
	if b, _ := s.Find("B"); b.Left != 455 {
		t.Errorf("B left = %v, want 455", b.Left)
	}
}

func TestAlignCommandDryRun(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "align", input, "--mode", "horizontal_center", "--dry-run"); err != nil {
		t.Fatalf("align error: %v", err)
	}
	if _, err := os.Stat(outputPath(input, "")); !os.IsNotExist(err) {
		t.Error("--dry-run wrote a file")
	}
	if !strings.Contains(out.String(), "horizontal_center") {
		t.Errorf("output missing mode:\n%s", out)
	}
}

func TestAlignCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "align", input, "--mode", "horizontal_distribute"); err != nil {
		t.Fatalf("align error: %v", err)
	}
	// Current left order is B, C, A.
	got := lefts(t, outputPath(input, ""))
	want := map[string]float64{"B": 40, "C": 455, "A": 870}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lefts = %v, want %v", got, want)
	}
}

func TestBatchCommand(t *testing.T) {
	c, out := newTestCLI(t)
	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	var inputs []string
	for _, name := range []string{"one.json", "two.json"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(threeShapes), 0o644); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, path)
	}

	args := append([]string{"batch"}, inputs...)
	args = append(args, "--mode", "horizontal_distribute", "--out-dir", outDir, "--jobs", "2")
	if err := execute(c, args...); err != nil {
		t.Fatalf("batch error: %v\n%s", err, out)
	}
	for _, name := range []string{"one.arranged.json", "two.arranged.json"} {
		if got := lefts(t, filepath.Join(outDir, name)); got["B"] != 40 {
			t.Errorf("%s: lefts = %v", name, got)
		}
	}
}

func TestBatchCommandReportsFailures(t *testing.T) {
	c, _ := newTestCLI(t)
	good := writeTemp(t, "good.json", threeShapes)
	bad := writeTemp(t, "bad.json", `{"shapes":[{"id":"a","width":-1}]}`)

	err := execute(c, "batch", good, bad, "--mode", "vertical_center")
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Fatalf("batch error = %v, want 1 of 2 failed", err)
	}
	if _, err := os.Stat(outputPath(good, "")); err != nil {
		t.Errorf("good slide not written: %v", err)
	}
}

func TestBatchCommandOutputCollision(t *testing.T) {
	c, _ := newTestCLI(t)
	root := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	var inputs []string
	for _, sub := range []string{"a", "b"} {
		path := filepath.Join(root, sub, "s.json")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(threeShapes), 0o644); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, path)
	}

	args := append([]string{"batch"}, inputs...)
	err := execute(c, append(args, "--mode", "vertical_center", "--out-dir", outDir)...)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("batch error = %v, want INVALID_INPUT", err)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("output dir created despite collision: %v", err)
	}
}

func TestCheckOutputs(t *testing.T) {
	tests := []struct {
		name    string
		outDir  string
		inputs  []string
		wantErr bool
	}{
		{"distinct names", "out", []string{"a/one.json", "b/two.json"}, false},
		{"same name next to inputs", "", []string{"a/s.json", "b/s.json"}, false},
		{"same name into one dir", "out", []string{"a/s.json", "b/s.json"}, true},
		{"same input twice", "", []string{"s.json", "./s.json"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOutputs(tt.outDir, tt.inputs)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkOutputs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLabelCommand(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)
	labels := writeTemp(t, "labels.json", `{"labeled_shapes":[
		{"id":"B","label":"phone icon","description":"green handset"},
		{"id":"Z","label":"ghost","description":"not there"}]}`)

	if err := execute(c, "label", input, "--labels", labels); err != nil {
		t.Fatalf("label error: %v", err)
	}
	s, err := slide.ReadFile(outputPath(input, ""))
	if err != nil {
		t.Fatal(err)
	}
	if b, _ := s.Find("B"); b.Label != "phone icon" {
		t.Errorf("B label = %q", b.Label)
	}
	if sh, _ := s.Find("C"); sh.Label != slide.UnknownLabel {
		t.Errorf("C label = %q, want %q", sh.Label, slide.UnknownLabel)
	}
	if !strings.Contains(out.String(), `"Z"`) {
		t.Errorf("output does not report the unmatched label:\n%s", out)
	}
}

func TestPreviewCommandDOT(t *testing.T) {
	c, _ := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)
	output := filepath.Join(t.TempDir(), "slide.dot")

	if err := execute(c, "preview", input, "-f", "dot", "-o", output, "--ids"); err != nil {
		t.Fatalf("preview error: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "graph slide {") {
		t.Errorf("not a DOT graph:\n%s", data)
	}
	if !strings.Contains(string(data), `"A"`) {
		t.Errorf("DOT missing shape A:\n%s", data)
	}
}

func TestPreviewRejectsFormat(t *testing.T) {
	c, _ := newTestCLI(t)
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "preview", input, "-f", "gif"); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	c, out := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "cfg", "config.toml")

	if err := execute(c, "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}

	if !strings.Contains(out.String(), path) {
		t.Errorf("config init output does not name the file:\n%s", out)
	}

	c2, out2 := newTestCLI(t)
	if err := execute(c2, "--config", path, "config", "show"); err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out2.String(), "[canvas]") || !strings.Contains(out2.String(), path) {
		t.Errorf("config show output:\n%s", out2)
	}
}

func TestConfigFileSetsCanvas(t *testing.T) {
	c, _ := newTestCLI(t)
	cfg := writeTemp(t, "config.toml", "[canvas]\nwidth = 300\nheight = 300\nmargin = 0\n")
	input := writeTemp(t, "slide.json", threeShapes)

	if err := execute(c, "--config", cfg, "arrange", input, "--order", "A,B", "-m", "horizontal_distribute"); err != nil {
		t.Fatalf("arrange error: %v", err)
	}
	if got := lefts(t, outputPath(input, "")); got["B"] != 250 {
		t.Errorf("B left = %v, want 250 on a 300pt canvas", got["B"])
	}
}

func TestBadConfigFails(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"unknown key", "[canvas]\nwidht = 300\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			cfg := writeTemp(t, "config.toml", tt.config)
			input := writeTemp(t, "slide.json", threeShapes)

			err := execute(c, "--config", cfg, "align", input, "-m", "vertical_center")
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("error = %v, want INVALID_CONFIG", err)
			}
			if _, err := os.Stat(outputPath(input, "")); !os.IsNotExist(err) {
				t.Errorf("output written despite bad config: %v", err)
			}
		})
	}
}

func TestModeListModel(t *testing.T) {
	m := NewModeListModel("Align")
	if len(m.Modes) != len(layout.Modes) {
		t.Fatalf("got %d modes, want %d", len(m.Modes), len(layout.Modes))
	}

	step := func(m ModeListModel, key string) ModeListModel {
		next, _ := m.Update(keyMsg(key))
		return next.(ModeListModel)
	}

	m = step(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first mode: %d", m.Cursor)
	}
	m = step(step(m, "down"), "j")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}
	for range layout.Modes {
		m = step(m, "down")
	}
	if m.Cursor != len(layout.Modes)-1 {
		t.Errorf("cursor moved past the last mode: %d", m.Cursor)
	}
	m = step(m, "k")

	m = step(m, "enter")
	if m.Selected != layout.Modes[len(layout.Modes)-2] {
		t.Errorf("Selected = %q", m.Selected)
	}
	if !strings.Contains(m.View(), string(layout.HorizontalDistribute)) {
		t.Error("View() does not list the modes")
	}
}

func TestModeListModelQuit(t *testing.T) {
	next, cmd := NewModeListModel("Align").Update(keyMsg("q"))
	if next.(ModeListModel).Selected != "" {
		t.Error("quitting must not select a mode")
	}
	if cmd == nil {
		t.Error("quitting should return tea.Quit")
	}
}

func TestMoveTable(t *testing.T) {
	before := &slide.Slide{Shapes: []slide.Shape{
		{Rect: layout.Rect{ID: "a", Left: 10, Top: 20, Width: 5, Height: 5}, Label: "email icon"},
		{Rect: layout.Rect{ID: "b", Left: 30, Top: 20, Width: 5, Height: 5}},
	}}
	after := before.Clone()
	after.Shapes[0].Left = 40

	got := moveTable(before, after)
	for _, want := range []string{"email icon", "10.0, 20.0", "40.0, 20.0", "30.0, 20.0"} {
		if !strings.Contains(got, want) {
			t.Errorf("moveTable() missing %q:\n%s", want, got)
		}
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestCacheCommands(t *testing.T) {
	c, out := newTestCLI(t)
	if err := execute(c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear on an empty cache: %v", err)
	}
	if !strings.Contains(out.String(), "Cache is empty") {
		t.Errorf("output:\n%s", out)
	}

	dir, err := cache.Dir()
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(context.Background(), "k", []byte("<svg/>"), 0); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := execute(c, "cache", "clear"); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 1 cached previews") {
		t.Errorf("output:\n%s", out)
	}

	out.Reset()
	if err := execute(c, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != dir {
		t.Errorf("cache path = %q, want %q", out.String(), dir)
	}
}

func TestCompletionCommand(t *testing.T) {
	c, out := newTestCLI(t)
	if err := execute(c, "completion", "bash"); err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out.String(), "shapealign") {
		t.Error("bash completion does not mention the program")
	}
}

func TestCompleteModes(t *testing.T) {
	got, _ := completeModes(nil, nil, "")
	if len(got) != len(layout.Modes) {
		t.Fatalf("got %d completions, want %d", len(got), len(layout.Modes))
	}
	if !strings.HasPrefix(got[0], string(layout.Modes[0])+"\t") {
		t.Errorf("completion %q lacks a description", got[0])
	}
}
