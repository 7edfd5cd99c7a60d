package lang

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dhamidi/tdop/lang/parser"
)

func TestTranslate(t *testing.T) {
	src := "if a > b:\n    print a\nelse:\n    print b\n"
	got, err := Translate(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	want := "if (a>b){\n    print a;\n}else {\n    print b;\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTranslateOptions(t *testing.T) {
	src := "while x:\n    print x\n"
	for _, buffer := range []int{0, 1, 64} {
		got, err := Translate(context.Background(), []byte(src),
			WithBuffer(buffer), WithIndent("  "), WithTimeout(time.Second))
		if err != nil {
			t.Fatalf("buffer %d: %v", buffer, err)
		}
		if want := "while (x) {\n  print x;\n}"; got != want {
			t.Errorf("buffer %d: got %q, want %q", buffer, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		want any
	}{
		{"missing colon", "x = 1\nif x\n    print x\n", 2, new(*parser.UnexpectedTokenError)},
		{"lexer error", "x = 1\ny = $\n", 2, new(*parser.IllegalTokenError)},
		{"no prefix", "print\n", 1, new(*parser.NoPrefixMeaningError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(tt.src), WithFile("prog.tdop"))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.As(err, tt.want) {
				t.Errorf("error %v (%T) is not %T", err, err, tt.want)
			}
			if line, ok := parser.ErrorLine(err); !ok || line != tt.line {
				t.Errorf("ErrorLine = %d, %v; want %d", line, ok, tt.line)
			}
			if !strings.Contains(err.Error(), "prog.tdop") {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}
}

func TestParseWithRegistry(t *testing.T) {
	reg := parser.DefaultGrammar().Build()
	stmts, err := Parse(context.Background(), []byte("a = b * c\n"), WithRegistry(reg))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := stmts.String(), "(= (NAME a) (* (NAME b) (NAME c)))"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
