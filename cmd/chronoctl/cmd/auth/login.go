package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Chrono's Diary",
	Long: `Authenticates with username and password and stores the session locally.

Credentials can be passed with --username/--password for scripting; in an
interactive terminal missing values are prompted for, with the password
masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		username := loginUsername
		password := loginPassword
		if username == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--username is required in non-interactive mode")
			}
			var err error
			username, err = pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
		}
		if password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--password is required in non-interactive mode")
			}
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		result, err := cfg.Provider.AnonymousSDK().Login(ctx, username, password)
		if err != nil {
			return err
		}

		session := sdk.Session{
			Token:    result.AccessToken,
			UserID:   result.ID,
			Username: result.Username,
		}
		if err := cfg.Provider.Store().Save(session); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		cfg.Provider.Refresh()

		pterm.Success.Printf("Logged in as %s\n", session.Username)
		if expiry, ok := sdk.TokenExpiry(session.Token); ok {
			pterm.Info.Printf("Session expires at %s\n", expiry.Format(time.RFC1123))
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Account username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
