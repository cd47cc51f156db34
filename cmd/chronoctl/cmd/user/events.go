package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/viewctx"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var eventsCmd = &cobra.Command{
	Use:   "events <user-id>",
	Short: "View another user's events (admin)",
	Long: `Lists another user's events and leaves a one-shot hint so the next
` + "`chronoctl event list`" + ` in this directory shows the same user.`,
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

		target, err := apiClient.GetUser(ctx, targetID)
		if err != nil {
			if errors.Is(err, sdk.ErrNotFound) {
				return fmt.Errorf("user %s not found", targetID)
			}
			return fmt.Errorf("failed to fetch user: %w", err)
		}

		events, err := apiClient.ListEvents(ctx, targetID)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		pterm.DefaultSection.Printf("%s's Events\n", target.Username)
		if len(events) == 0 {
			fmt.Println("No events found for this user.")
		} else {
			renderDayGroups(events)
		}

		hint := &viewctx.ViewedUser{
			Version:   viewctx.ViewFileVersion,
			UserID:    target.ID,
			Username:  target.Username,
			ServerURL: cfg.ServerURL,
			CreatedAt: time.Now(),
		}
		if err := viewctx.Write(hint); err != nil {
			pterm.Warning.Printf("Could not save the viewed-user hint: %v\n", err)
		} else {
			pterm.Info.Printf("Saved viewed-user hint; the next `chronoctl event list` here shows %s's events\n", target.Username)
		}
		return nil
	},
}
