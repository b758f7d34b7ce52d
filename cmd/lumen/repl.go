package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"lumen/internal/codegen"
	"lumen/internal/diagfmt"
	"lumen/internal/driver"
	"lumen/internal/lexer"
	"lumen/internal/parser"
)

const (
	historyFile = ".lumen_history"
	promptMain  = "lumen> "
	promptCont  = "  ...> "
	replBanner  = "lumen REPL. Ctrl+C cancels input, Ctrl+D exits. Type :help for commands."
	replHelp    = `
REPL commands:
  :help             Show this help
  :quit / :exit     Exit the REPL
  :load <file>      Compile a file and print its JSX
  :runtime [name]   Show or set the module that provides useState
  :ast              Toggle printing the syntax tree
  :reset            Clear the compile cache

Input starting with '<' is compiled as a single element; anything else
must be a complete program.
`
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compile lumen snippets interactively",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	replCmd.Flags().StringP("eval", "e", "", "compile the given snippet and exit")
	replCmd.Flags().String("runtime", "", "module that provides useState")
}

// replSession holds the state shared by all inputs of one REPL run.
type replSession struct {
	cmd     *cobra.Command
	out     io.Writer
	opts    driver.Options
	cache   *driver.MemCache
	showAST bool
	n       int
}

func newReplSession(cmd *cobra.Command) (*replSession, error) {
	s, err := loadSettings(cmd, ".")
	if err != nil {
		return nil, err
	}
	cache := driver.NewMemCache(64)
	return &replSession{
		cmd:   cmd,
		out:   cmd.OutOrStdout(),
		cache: cache,
		opts: driver.Options{
			Codegen:        s.codegen,
			MaxDiagnostics: maxDiagnostics(cmd),
			Cache:          cache,
		},
	}, nil
}

func runREPL(cmd *cobra.Command, _ []string) error {
	session, err := newReplSession(cmd)
	if err != nil {
		return err
	}
	if code, _ := cmd.Flags().GetString("eval"); code != "" {
		if !session.eval(code) {
			return errReported
		}
		return nil
	}

	fmt.Fprintln(session.out, replBanner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(session.out)
			break
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if session.command(trimmed) {
				break
			}
			continue
		}
		session.eval(code)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return nil
}

// command runs one ':' command and reports whether the REPL should exit.
func (s *replSession) command(line string) (exit bool) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":quit", ":exit":
		return true
	case ":reset":
		s.cache = driver.NewMemCache(64)
		s.opts.Cache = s.cache
		fmt.Fprintln(s.out, "cache cleared.")
	case ":ast":
		s.showAST = !s.showAST
		fmt.Fprintf(s.out, "syntax tree output %s.\n", onOff(s.showAST))
	case ":runtime":
		if len(fields) < 2 {
			runtime := s.opts.Codegen.Runtime
			if runtime == "" {
				runtime = codegen.DefaultRuntime
			}
			fmt.Fprintln(s.out, runtime)
			return false
		}
		s.opts.Codegen.Runtime = fields[1]
		fmt.Fprintf(s.out, "runtime set to %q.\n", fields[1])
	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(s.out, "usage: :load <file>")
			return false
		}
		s.load(fields[1])
	default:
		fmt.Fprintln(s.out, "unknown command. Type :help for help.")
	}
	return false
}

func (s *replSession) load(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.out, "cannot read %s: %v\n", path, err)
		return
	}
	s.compileProgram(filepath.Base(path), src)
}

// eval compiles one input and reports whether it succeeded.
func (s *replSession) eval(code string) bool {
	s.n++
	trimmed := strings.TrimSpace(code)
	if strings.HasPrefix(trimmed, "<") {
		res, err := driver.CompileElement(fmt.Sprintf("<repl %d>", s.n), []byte(trimmed), s.opts.Codegen, s.opts.MaxDiagnostics)
		if err != nil {
			_ = printDiagnostics(s.cmd, res.Bag, res.FileSet)
			return false
		}
		fmt.Fprintln(s.out, res.Output)
		return true
	}
	return s.compileProgram(fmt.Sprintf("<repl %d>", s.n), []byte(code))
}

func (s *replSession) compileProgram(name string, src []byte) bool {
	res, err := driver.CompileSourceContext(s.cmd.Context(), name, src, s.opts)
	if err != nil {
		if res != nil {
			_ = printDiagnostics(s.cmd, res.Bag, res.FileSet)
		} else {
			fmt.Fprintln(s.out, err)
		}
		return false
	}
	if s.showAST && res.Program != nil {
		if err := diagfmt.FormatASTTree(s.out, res.Program, res.FileSet); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}
	fmt.Fprint(s.out, res.Output)
	return true
}

// readByParseProbe reads lines until the buffer lexes and parses, or
// until the error is one more input cannot fix.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		if !looksIncomplete(probe(trimmed)) {
			return src, true
		}
	}
}

// probe lexes and parses src the way eval will compile it.
func probe(src string) error {
	if strings.HasPrefix(src, "<") {
		_, err := driver.CompileElement("probe", []byte(src), codegen.Options{}, 1)
		return err
	}
	_, err := driver.CompileSource("probe", []byte(src), driver.Options{MaxDiagnostics: 1})
	return err
}

// looksIncomplete reports whether err only says that input ended early.
func looksIncomplete(err error) bool {
	var le *lexer.LexError
	if errors.As(err, &le) {
		return le.Kind == lexer.ErrUnterminatedString || le.Kind == lexer.ErrUnterminatedComment
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return pe.Found == "end of file"
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
