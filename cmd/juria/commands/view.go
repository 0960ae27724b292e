package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"juria/internal/domain"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <name>",
		Short: "Print a document's original and translated text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := wire.Documents.Fetch(cmd.Context(), domain.DocumentName(args[0]))
			if err != nil {
				return err
			}
			fmt.Println("--- Original ---")
			fmt.Println(doc.Original)
			fmt.Println()
			fmt.Println("--- Translated ---")
			fmt.Println(doc.Translated)
			return nil
		},
	}
}
