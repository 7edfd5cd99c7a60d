package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tdop/lang/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	var grammarFile string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "List the tokens the lexer produces for a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			var l *lexer.Lexer
			if grammarFile != "" {
				grammar, err := lexer.LoadGrammar(grammarFile)
				if err != nil {
					return err
				}
				if err := lexer.VerifyGrammar(grammar); err != nil {
					return err
				}
				l = lexer.NewWithGrammar(grammar, source, filename)
			} else {
				l, err = lexer.New(source, filename)
				if err != nil {
					return err
				}
			}

			tokens, lexErr := l.Tokenize()
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return lexErr
		},
	}

	cmd.Flags().StringVar(&grammarFile, "grammar", "", "lex with this EBNF token grammar instead of the built-in one")

	return cmd
}
