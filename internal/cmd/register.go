package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/api"
	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/token"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		rawRole, _ := cmd.Flags().GetString("role")

		role, ok := token.ParseRole(rawRole)
		if !ok {
			return errors.Wrapf(errors.ErrUnsupported, "role %q", rawRole)
		}

		if err := current.client.Register(cmd.Context(), api.Registration{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     role,
		}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cuenta creada. Iniciá sesión con 'rfclient login'.")
		return nil
	},
}

func init() {
	registerCmd.Flags().String("name", "", "display name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("role", string(token.RoleClient), "account role")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}
