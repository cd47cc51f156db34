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

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := cfg.Provider.RequireAdmin(ctx); err != nil {
			return err
		}

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		users, err := apiClient.ListUsers(ctx)
		if err != nil {
			// A shape mismatch is a data problem, not an outage; report it
			// and render the empty list instead of failing the view.
			if errors.Is(err, sdk.ErrUnexpectedShape) {
				pterm.Warning.Printf("Server returned an unrecognized user list format: %v\n", err)
				fmt.Println("No users to display.")
				return nil
			}
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		renderUserTable(users)
		return nil
	},
}
