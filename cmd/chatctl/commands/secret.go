package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// secret show / secret rotate: inspect or rotate the family secret.
func secretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Inspect or rotate the family secret",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the family secret (base64)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := app.Secret(cmd.Context(), familyID, false)
			if err != nil {
				return err
			}
			fmt.Println(secret.Encoded)
			return nil
		},
	}

	rotate := &cobra.Command{
		Use:   "rotate",
		Short: "Regenerate the family secret and drop cached room keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := app.Secret(cmd.Context(), familyID, true)
			if err != nil {
				return err
			}
			fmt.Println(secret.Encoded)
			return nil
		},
	}

	cmd.AddCommand(show, rotate)
	return cmd
}
