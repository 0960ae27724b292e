package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"juria/internal/domain"
)

// chat <name>: interactive question loop about one document. The transcript
// lives only for the duration of the command.
func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <name>",
		Short: "Ask questions about a document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireUser(); err != nil {
				return err
			}

			conv := wire.Chat.Open(domain.DocumentName(args[0]))
			fmt.Printf("Chatting about %s (empty line to quit)\n", conv.Document())

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("you> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					break
				}

				reply, err := conv.Send(cmd.Context(), line)
				if err != nil {
					// keep the loop alive; the user can just re-send
					fmt.Fprintln(os.Stderr, "error:", err)
					continue
				}
				fmt.Printf("juria> %s\n", reply.Text)
			}
			return scanner.Err()
		},
	}
}
