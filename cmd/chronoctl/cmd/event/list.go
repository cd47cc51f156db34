package event

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/viewctx"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var listUserID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events grouped by day",
	Long: `Lists events, most recent day first.

By default your own events are shown. Administrators can pass --user to list
another user's events; a pending "view events" hint left by
` + "`chronoctl user events`" + ` is consumed the same way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if !session.Authenticated() {
			return fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
		}

		targetID := listUserID
		targetName := ""

		if targetID == "" {
			viewed, err := viewctx.Read()
			switch {
			case err != nil:
				pterm.Warning.Printf("Ignoring corrupted %s file: %v\n", viewctx.ViewFileName, err)
			case viewed != nil && viewed.ServerURL != "" && viewed.ServerURL != cfg.ServerURL:
				// A hint written against another backend must not redirect
				// a listing here. Leave it for its own server context.
				pterm.Warning.Printf("Ignoring %s hint for %s: it was written for %s, not %s\n",
					viewctx.ViewFileName, viewed.Username, viewed.ServerURL, cfg.ServerURL)
			case viewed != nil:
				targetID = viewed.UserID
				targetName = viewed.Username
				// The hint is one-shot; consume it.
				if err := viewctx.Clear(); err != nil {
					pterm.Warning.Printf("Could not clear %s file: %v\n", viewctx.ViewFileName, err)
				}
			}
		}
		if targetID == "" {
			targetID = session.UserID
			targetName = session.Username
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		viewingOwn := targetID == session.UserID
		if !viewingOwn {
			if err := cfg.Provider.RequireAdmin(ctx); err != nil {
				return err
			}
			if targetName == "" {
				if target, err := apiClient.GetUser(ctx, targetID); err == nil {
					targetName = target.Username
				} else {
					targetName = "unknown user"
				}
			}
		}

		events := sdk.NewEventSet(apiClient, targetID)
		if err := events.Refresh(ctx); err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		if viewingOwn {
			pterm.DefaultSection.Println("My Events")
		} else {
			pterm.DefaultSection.Printf("%s's Events\n", targetName)
		}

		if events.Len() == 0 {
			if viewingOwn {
				fmt.Println("You have no scheduled events.")
			} else {
				fmt.Println("No events found for this user.")
			}
			return nil
		}
		renderGroupedEvents(events.Events())
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listUserID, "user", "", "List events for another user id (admin only)")
}
