package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tdop/format"
	"github.com/dhamidi/tdop/lang"
	"github.com/dhamidi/tdop/workspace"
)

func newWatchCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Re-render programs whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			ws := workspace.New(
				lang.WithTimeout(a.config.Parser.Timeout.Duration),
				lang.WithBuffer(a.config.Parser.Buffer),
			)
			w := workspace.NewFileWatcher(ws, args, func(path string, f *workspace.File, err error) {
				switch {
				case err != nil:
					printError(errOut, err)
				case f.ParseErr != nil:
					printError(errOut, f.ParseErr)
				default:
					var sb strings.Builder
					r := format.NewRenderer(&sb, format.WithIndent(a.config.Render.Indent))
					if err := r.Render(f.Program); err != nil {
						printError(errOut, err)
						return
					}
					fmt.Fprintf(out, "// %s\n%s\n", path, sb.String())
				}
			})
			w.SetPollInterval(interval)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w.Start()
			<-ctx.Done()
			w.Stop()
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", workspace.DefaultPollInterval, "poll interval")

	return cmd
}
