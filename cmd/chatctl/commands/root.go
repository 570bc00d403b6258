package commands

import (
	"github.com/spf13/cobra"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/client"
	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/internal/config"
)

var (
	roomID   int64
	familyID int64

	app *client.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "chatctl",
		Short: "Diagnostics CLI for the encrypted family messaging core",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetClientConfigFromEnv()
			if err != nil {
				return err
			}
			app, err = client.NewApp(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
	}

	root.PersistentFlags().Int64Var(&familyID, "family", 0, "family id")
	_ = root.MarkPersistentFlagRequired("family")

	root.AddCommand(secretCmd(), encryptCmd(), decryptCmd(), sendCmd(), historyCmd())
	return root.Execute()
}
