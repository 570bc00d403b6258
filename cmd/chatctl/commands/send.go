package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	email    string
	password string
)

// send <message>: login, encrypt and post one message to a room.
func sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Encrypt and post one message to a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			msg, err := app.Send(cmd.Context(), roomID, familyID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("sent message %d\n", msg.ID)
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
