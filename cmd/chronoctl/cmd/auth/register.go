package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var (
	registerUsername string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		username, email, password := registerUsername, registerEmail, registerPassword
		if !cfg.NonInteractive {
			var err error
			if username == "" {
				if username, err = pterm.DefaultInteractiveTextInput.Show("Username"); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = pterm.DefaultInteractiveTextInput.Show("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password"); err != nil {
					return err
				}
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		message, err := cfg.Provider.AnonymousSDK().Register(ctx, username, email, password)
		if err != nil {
			switch {
			case errors.Is(err, sdk.ErrDuplicateUsername):
				return fmt.Errorf("that username is already taken, try another one")
			case errors.Is(err, sdk.ErrDuplicateEmail):
				return fmt.Errorf("that email is already registered, try another one")
			}
			return err
		}

		if message == "" {
			message = "Account created"
		}
		pterm.Success.Println(message)
		pterm.Info.Println("You can now run `chronoctl auth login`")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Desired username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
}
