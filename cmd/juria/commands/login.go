package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)
			username, err := promptLine(reader, "Username")
			if err != nil {
				return err
			}
			password, err := promptPassword("Password")
			if err != nil {
				return err
			}

			if err := wire.Auth.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", username)
			return nil
		},
	}
}
