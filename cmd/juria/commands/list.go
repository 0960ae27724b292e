package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your uploaded documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := wire.Documents.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("no documents found")
				return nil
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
