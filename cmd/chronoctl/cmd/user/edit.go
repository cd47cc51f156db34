package user

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
	editUsername string
	editEmail    string
	editPassword string
)

var editCmd = &cobra.Command{
	Use:   "edit [<user-id>]",
	Short: "Edit a user profile",
	Long: `Updates a profile. Without an argument your own profile is edited; editing
another user requires the ADMIN role.

Fields left unset keep their current value; the password in particular is
only sent when --password is given. Changing your own username invalidates
the stored session and you must log in again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if !session.Authenticated() {
			return fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
		}

		targetID := session.UserID
		if len(args) == 1 {
			targetID = args[0]
		}
		editingSelf := targetID == session.UserID

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if !editingSelf {
			if err := cfg.Provider.RequireAdmin(ctx); err != nil {
				return err
			}
		}

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		current, err := apiClient.GetUser(ctx, targetID)
		if err != nil {
			if errors.Is(err, sdk.ErrNotFound) {
				return fmt.Errorf("user %s not found", targetID)
			}
			return fmt.Errorf("failed to load current profile: %w", err)
		}

		input := sdk.UpdateUserInput{
			Username: current.Username,
			Email:    current.Email,
		}
		if cmd.Flags().Changed("username") {
			input.Username = editUsername
		}
		if cmd.Flags().Changed("email") {
			input.Email = editEmail
		}
		if cmd.Flags().Changed("password") {
			if editPassword == "" {
				return fmt.Errorf("%w: an empty password is not allowed; omit --password to keep the current one", sdk.ErrValidation)
			}
			input.Password = &editPassword
		}

		updated, err := apiClient.UpdateUser(ctx, targetID, input)
		if err != nil {
			switch {
			case errors.Is(err, sdk.ErrConflict):
				return fmt.Errorf("username or email is already taken")
			case errors.Is(err, sdk.ErrUnauthorized):
				return fmt.Errorf("not authorized: your session may have expired or you lack permission")
			}
			return fmt.Errorf("failed to update profile: %w", err)
		}

		pterm.Success.Printf("Updated profile for %s\n", updated.Username)

		if editingSelf {
			usernameChanged := updated.Username != session.Username
			if usernameChanged {
				// The backend ties session validity to the stored identity;
				// a renamed principal must authenticate again.
				if err := cfg.Provider.Store().Clear(); err != nil {
					return fmt.Errorf("profile updated but clearing the stale session failed: %w", err)
				}
				cfg.Provider.Refresh()
				pterm.Warning.Println("Your username changed; the stored session was cleared. Please run `chronoctl auth login` again.")
				return nil
			}
			session.Username = updated.Username
			if err := cfg.Provider.Store().Save(session); err != nil {
				pterm.Warning.Printf("Could not refresh the stored session: %v\n", err)
			}
			cfg.Provider.Refresh()
		}
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editUsername, "username", "", "New username")
	editCmd.Flags().StringVar(&editEmail, "email", "", "New email")
	editCmd.Flags().StringVar(&editPassword, "password", "", "New password (omit to keep the current one)")
}
