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

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user (admin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		targetID := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := cfg.Provider.RequireAdmin(ctx); err != nil {
			return err
		}

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		label := targetID
		if target, err := apiClient.GetUser(ctx, targetID); err == nil {
			label = fmt.Sprintf("%q (%s)", target.Username, targetID)
		}

		if !deleteYes {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
			}
			confirmed, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete user %s? This cannot be undone", label))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted")
				return nil
			}
		}

		if err := apiClient.DeleteUser(ctx, targetID); err != nil {
			if errors.Is(err, sdk.ErrUnauthorized) {
				return fmt.Errorf("the server refused the delete: %w", err)
			}
			return fmt.Errorf("failed to delete user: %w", err)
		}

		pterm.Success.Printf("Deleted user %s\n", label)

		// Re-fetch so the reported state is the server's, not a guess.
		users, err := apiClient.ListUsers(ctx)
		if err != nil {
			pterm.Warning.Printf("User deleted, but refreshing the user list failed: %v\n", err)
			return nil
		}
		pterm.Info.Printf("%d users remain\n", len(users))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
}
