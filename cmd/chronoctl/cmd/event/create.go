package event

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
	createTitle       string
	createDescription string
	createLocation    string
	createStart       string
	createEnd         string
	createInvites     []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	Long: `Creates a calendar event you own. The end time must be after the start
time; that rule is checked before anything is sent. Invited users receive a
pending invitation they can accept or decline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if !session.Authenticated() {
			return fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
		}

		start, err := sdk.ParseEventTime(createStart)
		if err != nil {
			return err
		}
		end, err := sdk.ParseEventTime(createEnd)
		if err != nil {
			return err
		}

		input := sdk.CreateEventInput{
			Title:             createTitle,
			Description:       createDescription,
			Location:          createLocation,
			StartTime:         start,
			EndTime:           end,
			InvitedUserEmails: createInvites,
		}
		if err := sdk.ValidateEventInput(input); err != nil {
			return err
		}

		apiClient, err := cfg.Provider.SDK()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		created, err := apiClient.CreateEvent(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		pterm.Success.Printf("Created event %q (%s)\n", created.Title, created.ID)
		if len(createInvites) > 0 {
			pterm.Info.Printf("Invited: %v\n", createInvites)
		}

		// The collection changed; re-fetch rather than guessing the new shape.
		events := sdk.NewEventSet(apiClient, session.UserID)
		if err := events.Refresh(ctx); err != nil {
			pterm.Warning.Printf("Event created, but refreshing the event list failed: %v\n", err)
			return nil
		}
		pterm.Info.Printf("You now have %d events\n", events.Len())
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Event title (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Event description")
	createCmd.Flags().StringVar(&createLocation, "location", "", "Event location")
	createCmd.Flags().StringVar(&createStart, "start", "", "Start time (required)")
	createCmd.Flags().StringVar(&createEnd, "end", "", "End time (required)")
	createCmd.Flags().StringArrayVar(&createInvites, "invite", nil, "Email of a user to invite. Repeatable")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("start")
	_ = createCmd.MarkFlagRequired("end")
}
