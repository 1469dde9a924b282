package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"steplog/internal/webui/server"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [message|tabify]",
		Short:     "Print the JSON Schema of a serve request body",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: server.SchemaNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "message"
			if len(args) == 1 {
				name = args[0]
			}
			sch, err := server.Schema(name)
			if err != nil {
				return err
			}
			b, err := server.MarshalSchema(sch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
