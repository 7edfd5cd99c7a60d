package format

import (
	"strings"
	"testing"

	"github.com/dhamidi/tdop/lang/lexer"
	"github.com/dhamidi/tdop/lang/parser"
	"github.com/dhamidi/tdop/lang/token"
)

func parse(t *testing.T, src string) *parser.Statements {
	t.Helper()
	l, err := lexer.New([]byte(src), "test.tdop")
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	ch := make(chan token.Token, len(tokens))
	for _, tok := range tokens {
		ch <- tok
	}
	close(ch)
	stmts, err := parser.New(ch).Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return stmts
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"expression", "a = b + 1\n", "a=b+1;"},
		{"literals", "x = 1.5\ny = \"hi\"\n", "x=1.5;\ny=\"hi\";"},
		{"unary", "x = -a + +b\n", "x=-a++b;"},
		{"chained assignment", "a = b = c\n", "a=b=c;"},
		{"print", "print a * 2\n", "print a*2;"},
		{"break continue", "break\ncontinue\n", "break;\ncontinue;"},
		{
			"if",
			"if a < b:\n    print a\n",
			"if (a<b){\n    print a;\n}",
		},
		{
			"if else",
			"if a > b:\n    print a\nelse:\n    print b\n",
			"if (a>b){\n    print a;\n}else {\n    print b;\n}",
		},
		{
			"while",
			"while i < 10:\n    i = i * 2\n    continue\n",
			"while (i<10) {\n    i=i*2;\n    continue;\n}",
		},
		{
			"nested",
			"while a:\n    if b:\n        break\n    else:\n        print c\nprint d\n",
			"while (a) {\n    if (b){\n        break;\n    }else {\n        print c;\n    }\n}\nprint d;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(parse(t, tt.input))
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderWithIndent(t *testing.T) {
	got, err := Render(parse(t, "while x:\n    if y:\n        print z\n"), WithIndent("\t"))
	if err != nil {
		t.Fatal(err)
	}
	want := "while (x) {\n\tif (y){\n\t\tprint z;\n\t}\n}"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderBalanced(t *testing.T) {
	src := `x = 0
while x < 10:
    if x > 5:
        print x
        if x > 8:
            break
    else:
        continue
    x = x + 1
print "done"
`
	out, err := Render(parse(t, src))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "{") != strings.Count(out, "}") {
		t.Errorf("unbalanced braces in:\n%s", out)
	}
	if strings.Count(out, "(") != strings.Count(out, ")") {
		t.Errorf("unbalanced parens in:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "{") && !strings.HasSuffix(line, "}") {
			t.Errorf("line %q is not terminated", line)
		}
	}
}

type bogusNode struct{}

func (bogusNode) Kind() parser.NodeKind { return parser.NodeKind(-1) }
func (bogusNode) Line() int             { return 0 }
func (bogusNode) String() string        { return "(bogus)" }

func TestRenderUnknownNode(t *testing.T) {
	_, err := Render(&parser.Statements{List: []parser.Node{bogusNode{}}})
	if err == nil {
		t.Fatal("expected error for unsupported node")
	}
}

func TestRenderPostfix(t *testing.T) {
	stmts := &parser.Statements{List: []parser.Node{
		&parser.ExprStmt{X: &parser.PostfixExpr{
			Op: token.Token{Kind: "!"},
			X:  &parser.Literal{Token: token.Token{Kind: token.Name, Literal: "n"}},
		}},
	}}
	got, err := Render(stmts)
	if err != nil {
		t.Fatal(err)
	}
	if got != "n!;" {
		t.Errorf("got %q, want %q", got, "n!;")
	}
}
