package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"juria/internal/domain"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <name> <file.pdf>",
		Short: "Upload a PDF document under the given name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, path := args[0], args[1]

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := wire.Documents.Upload(cmd.Context(), domain.DocumentName(name), filepath.Base(path), data); err != nil {
				return err
			}
			fmt.Printf("Uploaded %s\n", name)
			return nil
		},
	}
}
