package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// history: login, fetch and decrypt a room's message history.
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Fetch and decrypt a room's message history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			outcomes, err := app.History(cmd.Context(), roomID, familyID)
			if err != nil {
				return err
			}
			for _, o := range outcomes {
				fmt.Printf("[%s] %s: %s\n", o.CreatedAt.Format("2006-01-02 15:04"), o.Sender, o.DisplayText())
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&roomID, "room", 0, "room id")
	cmd.Flags().StringVar(&email, "email", "", "backend account email")
	cmd.Flags().StringVar(&password, "password", "", "backend account password")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
