package user

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var promoteCmd = &cobra.Command{
	Use:   "promote <user-id>",
	Short: "Toggle the ADMIN role on a user (admin)",
	Long: `Grants the ADMIN role to a regular user, or revokes it from an
administrator. The updated role list is re-read from the server.`,
	Args: cobra.ExactArgs(1),
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

		updated, err := apiClient.ToggleAdmin(ctx, targetID)
		if err != nil {
			return fmt.Errorf("failed to toggle admin role: %w", err)
		}

		if updated.IsAdmin() {
			pterm.Success.Printf("%s is now an administrator\n", updated.Username)
		} else {
			pterm.Success.Printf("%s is no longer an administrator\n", updated.Username)
		}
		renderUserTable([]sdk.UserRecord{*updated})
		return nil
	},
}
