package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
)

var forgotEmail string

var forgotCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset link",
	Long: `Asks the server to email a password reset link. The acknowledgement reads
the same whether or not the address is registered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email := forgotEmail
		if email == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--email is required in non-interactive mode")
			}
			var err error
			if email, err = pterm.DefaultInteractiveTextInput.Show("Email"); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		message, err := cfg.Provider.AnonymousSDK().RequestPasswordReset(ctx, email)
		if err != nil {
			return err
		}
		if message == "" {
			message = "If this email exists, a reset link has been sent."
		}
		pterm.Info.Println(message)
		return nil
	},
}

func init() {
	forgotCmd.Flags().StringVar(&forgotEmail, "email", "", "Account email")
}
