package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account on the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)
			email, err := promptLine(reader, "Email")
			if err != nil {
				return err
			}
			username, err := promptLine(reader, "Username")
			if err != nil {
				return err
			}
			password, err := promptPassword("Password")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password")
			if err != nil {
				return err
			}

			if err := wire.Auth.Register(cmd.Context(), email, username, password, confirm); err != nil {
				return err
			}
			fmt.Println("Registered. You can now log in.")
			return nil
		},
	}
}
