package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rfonline/rfclient/internal/errors"
	"github.com/rfonline/rfclient/token"
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Pay for a subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleClient); err != nil {
			return err
		}

		months, _ := cmd.Flags().GetInt("months")
		method, _ := cmd.Flags().GetString("method")
		out := cmd.OutOrStdout()

		switch method {
		case "mercadopago":
			pref, err := current.client.CreateMercadoPagoPreference(cmd.Context(), months)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Abrí este enlace para pagar: %s\n", pref.InitPoint)
		case "paypal":
			order, err := current.client.CreatePayPalOrder(cmd.Context(), months)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Aprobá la orden en: %s\n", order.ApproveURL)
			fmt.Fprintf(out, "Luego capturala con 'rfclient pay capture %s'\n", order.ID)
		default:
			return errors.Wrapf(errors.ErrUnsupported, "payment method %q", method)
		}
		return nil
	},
}

var payCaptureCmd = &cobra.Command{
	Use:   "capture <order-id>",
	Short: "Capture an approved PayPal order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireRoles(cmd, token.RoleClient); err != nil {
			return err
		}
		if err := current.client.CapturePayPalOrder(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Pago acreditado.")
		return nil
	},
}

func init() {
	payCmd.Flags().Int("months", 1, "months of subscription to pay for")
	payCmd.Flags().String("method", "mercadopago", "payment method: mercadopago or paypal")

	payCmd.AddCommand(payCaptureCmd)
	rootCmd.AddCommand(payCmd)
}
