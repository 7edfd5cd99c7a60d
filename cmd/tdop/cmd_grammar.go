package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tdop/lang/lexer"
	"github.com/dhamidi/tdop/lang/parser"
)

func newGrammarCmd(a *app) *cobra.Command {
	var check bool
	var source bool

	cmd := &cobra.Command{
		Use:   "grammar [ebnf-file]",
		Short: "Show the operator table or check a token grammar",
		Long: `Show the operator table of the parser.

With --check, verify the token grammar instead: the given EBNF file, or the
built-in grammar when no file is given. With --source, print the built-in
token grammar.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if source {
				_, err := out.Write(lexer.DefaultGrammarSource())
				return err
			}

			if check || len(args) > 0 {
				name := "built-in token grammar"
				var err error
				if len(args) > 0 {
					name = args[0]
					g, loadErr := lexer.LoadGrammar(name)
					if loadErr != nil {
						return loadErr
					}
					err = lexer.VerifyGrammar(g)
				} else {
					g, loadErr := lexer.DefaultGrammar()
					if loadErr != nil {
						return loadErr
					}
					err = lexer.VerifyGrammar(g)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: ok\n", name)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tLBP\tPREFIX\tROLES")
			for _, sym := range parser.DefaultRegistry().Symbols() {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", sym.Kind, sym.LBP, sym.PrefixBP, strings.Join(sym.Roles(), ","))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the token grammar")
	cmd.Flags().BoolVar(&source, "source", false, "print the built-in token grammar")

	return cmd
}
