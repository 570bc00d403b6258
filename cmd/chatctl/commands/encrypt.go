package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SteveRoss2023/KewlKidsOrgMobile-sub002/models"
)

// encrypt <message>: seal one message for a room and print the payload.
func encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt one message for a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := app.Encrypt(cmd.Context(), roomID, familyID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("ciphertext: %s\niv: %s\n", payload.Ciphertext, payload.IV)
			return nil
		},
	}
	cmd.Flags().Int64Var(&roomID, "room", 0, "room id")
	_ = cmd.MarkFlagRequired("room")
	return cmd
}

// decrypt <ciphertext> <iv>: open one payload with the room key.
func decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext> <iv>",
		Short: "Decrypt one base64 payload with the room key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := app.Receive(cmd.Context(), familyID, models.Message{
				Room:       roomID,
				Ciphertext: args[0],
				IV:         args[1],
			})
			if !outcome.Decrypted {
				return fmt.Errorf("payload did not decrypt with the room key")
			}
			fmt.Println(outcome.Text)
			return nil
		},
	}
	cmd.Flags().Int64Var(&roomID, "room", 0, "room id")
	_ = cmd.MarkFlagRequired("room")
	return cmd
}
