package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"juria/internal/app"
	"juria/internal/domain"
)

var (
	homeDir string
	baseURL string
	verbose bool

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "juria",
		Short:        "Legal document translation client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.FromEnv()
			if err != nil {
				return err
			}
			if homeDir != "" {
				cfg.Home = homeDir
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			cfg.Verbose = verbose

			if cfg.BasicUser == "" || cfg.BasicPass == "" {
				return fmt.Errorf("backend credential not configured: set JURIA_BASIC_USER and JURIA_BASIC_PASS (a .env file works)")
			}

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&homeDir, "home", "", "app dir (default ~/.juria)")
	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "webhook base URL")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		registerCmd(), loginCmd(), logoutCmd(), whoamiCmd(),
		uploadCmd(), listCmd(), viewCmd(), chatCmd(),
	)
	return root.Execute()
}

// requireUser gates authenticated commands on a stored session.
func requireUser() (string, error) {
	user, ok := wire.Sessions.CurrentUser()
	if !ok {
		return "", domain.ErrNotLoggedIn
	}
	return user, nil
}
