package invite

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/cmd/chronoctl/internal/config"
	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

// InviteCmd is the parent command for invitation operations
var InviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Manage event invitations",
	Long:  `Commands for listing and responding to event invitations.`,
}

func init() {
	InviteCmd.AddCommand(listCmd)
	InviteCmd.AddCommand(acceptCmd)
	InviteCmd.AddCommand(declineCmd)
}

// loadSets builds the invitation and event caches for the logged-in user.
func loadSets(ctx context.Context, cfg *config.GlobalConfig) (*sdk.InvitationSet, *sdk.EventSet, error) {
	session, err := cfg.Provider.Session()
	if err != nil {
		return nil, nil, err
	}
	if !session.Authenticated() {
		return nil, nil, fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
	}

	apiClient, err := cfg.Provider.SDK()
	if err != nil {
		return nil, nil, err
	}

	invitations := sdk.NewInvitationSet(apiClient, session.UserID)
	if err := invitations.Refresh(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	events := sdk.NewEventSet(apiClient, session.UserID)
	return invitations, events, nil
}
