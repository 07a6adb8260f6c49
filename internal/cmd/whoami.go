package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/users"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current profile and subscription state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd); err != nil {
			return err
		}

		profile, err := current.client.Profile(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s <%s> (%s)\n", profile.Name, profile.Email, profile.Role)
		switch profile.SubscriptionStatus() {
		case users.SubscriptionExpired:
			fmt.Fprintf(out, "Suscripción vencida el %s\n", profile.SubscriptionExpiry.Format("2006-01-02"))
		case users.SubscriptionExpiringSoon:
			fmt.Fprintf(out, "Suscripción por vencer: %s\n", profile.SubscriptionExpiry.Format("2006-01-02"))
		case users.SubscriptionActive:
			fmt.Fprintf(out, "Suscripción activa hasta %s\n", profile.SubscriptionExpiry.Format("2006-01-02"))
		default:
			fmt.Fprintln(out, "Sin suscripción registrada")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
