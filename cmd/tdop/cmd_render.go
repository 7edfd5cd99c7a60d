package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tdop/lang"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Translate a program into brace-delimited source",
		Long: `Translate a program into brace-delimited, semicolon-terminated source.

If no file is provided, the program is read from stdin.
Use -o to write the result to a file instead of stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			filename := "<stdin>"

			if len(args) == 0 {
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			text, err := lang.Translate(cmd.Context(), source, a.langOptions(filename)...)
			if err != nil {
				return err
			}
			if text != "" {
				text += "\n"
			}

			if output != "" {
				return os.WriteFile(output, []byte(text), 0644)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to this file")

	return cmd
}
