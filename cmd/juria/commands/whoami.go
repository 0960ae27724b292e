package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the logged-in username",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := requireUser()
			if err != nil {
				return err
			}
			fmt.Println(user)
			return nil
		},
	}
}
