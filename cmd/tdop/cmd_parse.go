package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tdop/format"
	"github.com/dhamidi/tdop/lang"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a program and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			source, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			var encoder format.Encoder
			out := cmd.OutOrStdout()
			switch outputFormat {
			case "tree":
				encoder = format.NewTreeEncoder(out)
			case "json":
				encoder = format.NewASTJSONEncoder(out)
			case "yaml":
				encoder = format.NewASTYAMLEncoder(out)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			program, err := lang.Parse(cmd.Context(), source, a.langOptions(filename)...)
			if err != nil {
				return err
			}

			if err := encoder.Encode(program); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			if outputFormat == "json" {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json, yaml)")

	return cmd
}
