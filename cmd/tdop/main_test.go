package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.tdop")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const program = "if a > b:\n    print a\nelse:\n    print b\n"

func TestRenderCmd(t *testing.T) {
	want := "if (a>b){\n    print a;\n}else {\n    print b;\n}\n"

	got, err := run(t, "", "render", writeProgram(t, program))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("file: got %q, want %q", got, want)
	}

	got, err = run(t, program, "render")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("stdin: got %q, want %q", got, want)
	}

	outFile := filepath.Join(t.TempDir(), "out.txt")
	if _, err := run(t, program, "render", "-o", outFile); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("-o: got %q, want %q", data, want)
	}
}

func TestRenderCmdConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "tdop.toml")
	if err := os.WriteFile(cfg, []byte("[render]\nindent = \"  \"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "while x:\n    print x\n", "--config", cfg, "render")
	if err != nil {
		t.Fatal(err)
	}
	if want := "while (x) {\n  print x;\n}\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCmdError(t *testing.T) {
	path := writeProgram(t, "x = 1\nif x\n    print x\n")
	_, err := run(t, "", "render", path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "prog.tdop:2") {
		t.Errorf("error %q does not point at line 2", err)
	}
}

func TestParseCmd(t *testing.T) {
	path := writeProgram(t, "a = b * c\n")

	tests := []struct {
		format string
		want   string
	}{
		{"tree", "(= (NAME a) (* (NAME b) (NAME c)))\n"},
		{"json", `"kind": "AssignExpr"`},
		{"yaml", "kind: AssignExpr"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := run(t, "", "parse", "-f", tt.format, path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q does not contain %q", got, tt.want)
			}
		})
	}

	if _, err := run(t, "", "parse", "-f", "xml", path); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTokensCmd(t *testing.T) {
	got, err := run(t, "", "tokens", writeProgram(t, "x = 42\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := "1 NAME \"x\"\n1 =\n1 NUMBER \"42\"\n1 NEWLINE\n2 END\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGrammarCmd(t *testing.T) {
	got, err := run(t, "", "grammar")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"KIND", "while", "nud,led"} {
		if !strings.Contains(got, want) {
			t.Errorf("symbol table does not contain %q:\n%s", want, got)
		}
	}

	got, err = run(t, "", "grammar", "--check")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "ok") {
		t.Errorf("got %q", got)
	}

	bad := filepath.Join(t.TempDir(), "bad.ebnf")
	if err := os.WriteFile(bad, []byte("Tokens = { Token } .\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "", "grammar", "--check", bad); err == nil {
		t.Error("expected verification error for incomplete grammar")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	list := errorList{errors.New("first"), errors.New("second")}
	printError(&buf, fmt.Errorf("verify grammar: %w", list))

	out := buf.String()
	if strings.Count(out, "error:") != 2 {
		t.Errorf("expected one line per error, got %q", out)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("missing entries in %q", out)
	}

	buf.Reset()
	printError(&buf, errors.New("plain"))
	if !strings.Contains(buf.String(), "plain") {
		t.Errorf("got %q", buf.String())
	}
}

type errorList []error

func (l errorList) Error() string { return fmt.Sprintf("%d errors", len(l)) }
