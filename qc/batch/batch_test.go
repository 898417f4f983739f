package batch

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ankurkotwal/quotecard/qc/common"
	"github.com/ankurkotwal/quotecard/qc/render"
	"github.com/google/go-cmp/cmp"
)

func testParams() render.Params {
	return render.Params{
		RenderSpec: render.RenderSpec{
			Width:          300,
			Height:         300,
			Background:     color.Black,
			Text:           color.White,
			BorderColour:   color.White,
			Padding:        30,
			LineSpacing:    10,
			FontPath:       "missing.ttf",
			AuthorFontSize: 20,
		},
		AuthorText: "Author",
		FontSize:   40,
		Format:     "png",
	}
}

func writeSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.txt")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplitQuotes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"delimited", "Hello\n---\nWorld\n---\n  \n---\nFoo", []string{"Hello", "World", "Foo"}},
		{"multiline quote", "line one\nline two\n---\nnext", []string{"line one\nline two", "next"}},
		{"crlf", "a\r\nb\r\n---\r\nc\r\n", []string{"a\nb", "c"}},
		{"leading delimiter", "---\nonly\n---", []string{"only"}},
		{"inline delimiter", "a---b", []string{"a", "b"}},
		{"empty", "   \n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitQuotes(tt.content)); diff != "" {
				t.Errorf("SplitQuotes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadQuotes(t *testing.T) {
	path := writeSource(t, "\ufeffFirst\n---\nSecond")
	quotes, err := ReadQuotes(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"First", "Second"}, quotes); diff != "" {
		t.Errorf("ReadQuotes() mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadQuotes(filepath.Join(t.TempDir(), "missing.txt"))
	var serr *SourceError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected *SourceError, got %v", err)
	}
	if !strings.Contains(serr.Error(), "not found") {
		t.Errorf("Unexpected message %q", serr.Error())
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(0, "png"); got != "quote_1.png" {
		t.Errorf("Filename() = %s", got)
	}
	if got := Filename(9, "jpg"); got != "quote_10.jpg" {
		t.Errorf("Filename() = %s", got)
	}
}

func TestDriver_Render(t *testing.T) {
	source := writeSource(t, "Hello\n---\nWorld\n---\n  \n---\nFoo")
	outDir := filepath.Join(t.TempDir(), "images")
	var progress bytes.Buffer
	log := common.NewLog()
	d := NewDriver(testParams(), nil, log, &progress)

	summary, err := d.Render(source, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Total != 3 || summary.Succeeded != 3 || len(summary.Failed) != 0 {
		t.Errorf("Unexpected summary %+v", summary)
	}
	for i := 1; i <= 3; i++ {
		path := filepath.Join(outDir, Filename(i-1, "png"))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected %s: %v", path, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "quote_4.png")); !os.IsNotExist(err) {
		t.Error("Expected blank segment to be skipped")
	}

	out := progress.String()
	for _, want := range []string{"Quote 1/3", "Quote 3/3", "100.0%", "Complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in progress output %q", want, out)
		}
	}
	var found, created bool
	for _, e := range log.Entries {
		found = found || e.Msg == "Found 3 quotes in the file."
		created = created || strings.HasPrefix(e.Msg, "Successfully created 3/3 quote images")
	}
	if !found || !created {
		t.Errorf("Expected summary messages, got %v", log.Entries)
	}
}

func TestDriver_RenderIsolatesFailures(t *testing.T) {
	source := writeSource(t, "One\n---\nTwo\n---\nThree")
	outDir := t.TempDir()
	// quote_2.png can't be replaced
	os.MkdirAll(filepath.Join(outDir, "quote_2.png", "child"), 0755)

	d := NewDriver(testParams(), nil, common.NewLog(), nil)
	summary, err := d.Render(source, outDir)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Succeeded != 2 {
		t.Errorf("Expected 2 successes, got %d", summary.Succeeded)
	}
	if diff := cmp.Diff([]int{2}, summary.Failed); diff != "" {
		t.Errorf("Failed mismatch (-want +got):\n%s", diff)
	}
}

func TestDriver_RenderInvalidParams(t *testing.T) {
	source := writeSource(t, "One\n---\nTwo")
	params := testParams()
	params.Padding = 150

	d := NewDriver(params, nil, common.NewLog(), nil)
	summary, err := d.Render(source, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if summary.Succeeded != 0 || len(summary.Failed) != 2 {
		t.Errorf("Expected every quote to fail, got %+v", summary)
	}
}

func TestRender_Count(t *testing.T) {
	log := common.NewLog()
	source := writeSource(t, "a\n---\nb")
	if n := Render(source, t.TempDir(), testParams(), log); n != 2 {
		t.Errorf("Render() = %d, want 2", n)
	}
	if n := Render(filepath.Join(t.TempDir(), "missing.txt"), t.TempDir(), testParams(), log); n != 0 {
		t.Errorf("Render() = %d, want 0", n)
	}
	if n := Render(writeSource(t, "---\n\n---"), t.TempDir(), testParams(), log); n != 0 {
		t.Errorf("Render() = %d, want 0", n)
	}
}

func TestRender_NilLogger(t *testing.T) {
	source := writeSource(t, "a\n---\nb")
	if n := Render(source, t.TempDir(), testParams(), nil); n != 2 {
		t.Errorf("Render() = %d, want 2", n)
	}
	d := NewDriver(testParams(), nil, nil, nil)
	if d.Log == nil {
		t.Fatal("Expected a default logger")
	}
	if _, err := d.Render(source, t.TempDir()); err != nil {
		t.Errorf("Render() error %v", err)
	}
}

func TestRender_OutputFolderError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	os.WriteFile(blocker, []byte("x"), 0644)
	d := NewDriver(testParams(), nil, common.NewLog(), nil)
	if _, err := d.Render(writeSource(t, "a"), filepath.Join(blocker, "out")); err == nil {
		t.Error("Expected an error creating the output folder")
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)
	p.Length = 10
	p.Update(1, 4, "Quote 2/4")
	if !strings.Contains(buf.String(), "25.0% Quote 2/4") {
		t.Errorf("Unexpected progress %q", buf.String())
	}
	if strings.HasSuffix(buf.String(), "\n") {
		t.Error("Expected no newline before completion")
	}
	p.Update(4, 4, "Complete")
	if !strings.HasSuffix(buf.String(), "100.0% Complete\n") {
		t.Errorf("Unexpected progress %q", buf.String())
	}

	var nilProgress *Progress
	nilProgress.Update(1, 2, "") // Must not panic
	if Percent(1, 3) != "33.3" || Percent(0, 0) != "0.0" {
		t.Error("Unexpected percentages")
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, Summary{Total: 3, Succeeded: 2, Failed: []int{2}, Overflowed: []int{3}}, "out")
	out := buf.String()
	for _, want := range []string{"2/3", "'out'", "failed: [2]", "overflowing: [3]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestDriver_Watch(t *testing.T) {
	source := writeSource(t, "first")
	outDir := t.TempDir()
	d := NewDriver(testParams(), nil, common.NewLog(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runs := make(chan Summary, 4)
	done := make(chan error, 1)
	go func() {
		done <- d.Watch(ctx, source, outDir, Hooks{
			AfterRun: func(s Summary, _ error) { runs <- s },
		})
	}()

	select {
	case s := <-runs:
		if s.Succeeded != 1 {
			t.Fatalf("Expected 1 image on the first run, got %+v", s)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Timed out waiting for the first run")
	}

	if err := os.WriteFile(source, []byte("first\n---\nsecond"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case s := <-runs:
		if s.Succeeded != 2 {
			t.Errorf("Expected 2 images after the change, got %+v", s)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Timed out waiting for a re-run")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch didn't stop")
	}
}
