package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/tdop/lang"
	"github.com/dhamidi/tdop/workspace"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := workspace.New(
				lang.WithTimeout(a.config.Parser.Timeout.Duration),
				lang.WithBuffer(a.config.Parser.Buffer),
			)
			server := workspace.NewLSPServer(version, ws)
			return server.RunStdio()
		},
	}
}
