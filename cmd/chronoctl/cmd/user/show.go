package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var showCmd = &cobra.Command{
	Use:   "show [<user-id>]",
	Short: "Show a user's profile",
	Long:  `Shows a user record. Without an argument your own profile is shown.`,
	Args:  cobra.MaximumNArgs(1),
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

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if targetID != session.UserID {
			if err := cfg.Provider.RequireAdmin(ctx); err != nil {
				return err
			}
		}

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		target, err := apiClient.GetUser(ctx, targetID)
		if err != nil {
			if errors.Is(err, sdk.ErrNotFound) {
				return fmt.Errorf("user %s not found", targetID)
			}
			return fmt.Errorf("failed to fetch user: %w", err)
		}

		renderUserTable([]sdk.UserRecord{*target})
		return nil
	},
}
