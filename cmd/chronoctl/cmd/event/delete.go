package event

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
	Use:   "delete <event-id>",
	Short: "Delete an event",
	Long: `Deletes an event after confirmation. The local listing only drops the
event once the server has confirmed the delete.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		eventID := args[0]

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if !session.Authenticated() {
			return fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
		}

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		events := sdk.NewEventSet(apiClient, session.UserID)
		if err := events.Refresh(ctx); err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}

		target, known := events.Find(eventID)
		label := eventID
		if known {
			label = fmt.Sprintf("%q (%s)", target.Title, eventID)
		}

		if !deleteYes {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
			}
			confirmed, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete event %s? This cannot be undone", label))
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted")
				return nil
			}
		}

		if err := events.Delete(ctx, eventID); err != nil {
			if errors.Is(err, sdk.ErrNotFound) {
				pterm.Warning.Printf("Event %s no longer exists on the server\n", eventID)
				return nil
			}
			return fmt.Errorf("failed to delete event: %w", err)
		}

		pterm.Success.Printf("Deleted event %s\n", label)
		pterm.Info.Printf("%d events remain\n", events.Len())
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
}
