package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		remember, _ := cmd.Flags().GetBool("remember")

		return current.session.Login(cmd.Context(), session.Credentials{
			Email:    email,
			Password: password,
		}, remember)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out everywhere this storage is shared",
	Run: func(cmd *cobra.Command, args []string) {
		current.session.Logout()
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	loginCmd.Flags().Bool("remember", true, "restore the session on later runs")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd, logoutCmd)
}
