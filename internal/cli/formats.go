package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const formatsDoc = "# Output lines\n\n" +
	"| Operation | Sink | Line |\n" +
	"|---|---|---|\n" +
	"| start | out | `<indent><name> - Started ... ` |\n" +
	"| end | out | `<indent><name> - Done - <ms> (ms)` |\n" +
	"| end, not started | err | `-- Sorry, \"<name>\" was not started.` |\n" +
	"| log | out | `-- <message>` |\n" +
	"| error | err | `-- <message>` |\n\n" +
	"`<indent>` is three spaces per open timer, or nothing with `--tabify=false`.\n" +
	"A start line is written before the depth grows; a done line after it shrinks.\n\n" +
	"# Script verbs\n\n" +
	"`start <name>`, `end <name>`, `log <message>`, `error <message>`. Lines starting with `#` are comments.\n"

func newFormatsCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "Describe the output line formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), formatsDoc)
				return nil
			}
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(formatsDoc)
			if err != nil {
				// fall back to the markdown source
				out = formatsDoc
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	return cmd
}
