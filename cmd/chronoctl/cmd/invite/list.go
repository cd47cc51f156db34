package invite

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your invitations",
	Long: `Lists pending invitations by default, with the notification count shown
as on the calendar bell: one notification per event title, however many
invitations share it. Pass --all to include resolved invitations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		invitations, _, err := loadSets(ctx, cfg)
		if err != nil {
			return err
		}

		shown := invitations.Pending()
		if listAll {
			shown = invitations.Invitations()
		}

		pterm.DefaultSection.Printf("Invitations (%d pending notifications)\n", invitations.NotificationCount())
		if len(shown) == 0 {
			fmt.Println("No invitations to show.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEVENT\tFROM\tSTATUS")
		for _, invitation := range shown {
			from := invitation.InvitingUserName
			if from == "" {
				from = invitation.InvitingUserID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", invitation.ID, invitation.EventTitle, from, invitation.Status)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include accepted and declined invitations")
}

// respond resolves one pending invitation and reports the refreshed state.
func respond(cmd *cobra.Command, invitationID string, status sdk.InvitationStatus) error {
	cfg := config.MustFromContext(cmd.Context())

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	invitations, events, err := loadSets(ctx, cfg)
	if err != nil {
		return err
	}

	updated, err := invitations.Respond(ctx, invitationID, status, events)
	if err != nil {
		return err
	}

	if status == sdk.InvitationAccepted {
		pterm.Success.Printf("Accepted invitation to %q\n", updated.EventTitle)
		pterm.Info.Printf("You now have %d events\n", events.Len())
	} else {
		pterm.Success.Printf("Declined invitation to %q\n", updated.EventTitle)
	}
	pterm.Info.Printf("%d pending notifications remain\n", invitations.NotificationCount())
	return nil
}
