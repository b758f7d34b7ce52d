package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"lumen/internal/diag"
	"lumen/internal/source"
)

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<p title=\"unterminated>\n")
	fileID := fs.AddVirtual("/home/user/site/src/test.lumen", content)
	fs.SetBaseDir("/home/user/site")

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: fileID, Start: 9, End: 23}, "unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/site/src/test.lumen:1:10"},
		{"relative", PathModeRelative, "src/test.lumen:1:10"},
		{"basename", PathModeBasename, "test.lumen:1:10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()
			for _, want := range []string{tt.contains, "ERROR", "LEX1002", "unterminated string literal"} {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in:\n%s", want, out)
				}
			}
		})
	}
}

func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()
	tests := []struct {
		path string
		want string
	}{
		{"test.lumen", "test.lumen:1:9"},
		{"/very/long/absolute/path/to/some/nested/directory/file.lumen", "file.lumen:1:9"},
	}
	for _, tt := range tests {
		id := fs.AddVirtual(tt.path, []byte("let x = 42\n"))
		bag := diag.NewBag(1)
		bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: id, Start: 8, End: 10}, "w"))

		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("path %s: got\n%s", tt.path, buf.String())
		}
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	src := "page Home {\n  <div>{count</div>\n}\n"
	id := fs.AddVirtual("home.lumen", []byte(src))
	start := uint32(strings.Index(src, "</div>"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: start, End: start + 6}, "expected '}', found '</'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	want := "home.lumen:2:14: ERROR SYN2001: expected '}', found '</'\n" +
		" 1 | page Home {\n" +
		" 2 |   <div>{count</div>\n" +
		"   |              ^~~~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	src := "<p>日本 {x</p>"
	id := fs.AddVirtual("w.lumen", []byte(src))
	start := uint32(strings.Index(src, "{"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: start, End: start + 1}, "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	// "<p>" is 3 columns, each CJK rune 2, plus a space.
	if want := "   |" + " " + strings.Repeat(" ", 8) + "^"; lines[2] != want {
		t.Fatalf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lumen", []byte("component A { state { a: number = 1, a: number = 2 } <p/> }\n"))

	d := diag.NewError(diag.SynDuplicateName, source.Span{File: id, Start: 37, End: 38}, "duplicate name \"a\"").
		WithNote(source.Span{File: id, Start: 22, End: 23}, "first declared here")
	bag := diag.NewBag(1)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, PathMode: PathModeBasename})
	if !strings.Contains(buf.String(), "note: test.lumen:1:23 first declared here") {
		t.Fatalf("expected note with location, got:\n%s", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.lumen", []byte("x\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: 0, End: 1}, "bad"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("escape codes without Color: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("no escape codes with Color: %q", colored.String())
	}
}
