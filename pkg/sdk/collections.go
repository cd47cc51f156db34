package sdk

import (
	"context"
	"fmt"
)

// EventSet is a view-owned cache of one user's events. Views render from the
// cache and keep it honest with the refresh-after-mutation discipline: every
// successful create triggers Refresh, and the only permitted local patch is
// the post-delete splice in Delete.
type EventSet struct {
	client *Client
	userID string
	events []EventRecord
}

// NewEventSet constructs an empty set for the given user. Call Refresh before
// the first render.
func NewEventSet(client *Client, userID string) *EventSet {
	return &EventSet{client: client, userID: userID}
}

// Refresh replaces the cached collection with a full re-fetch.
func (s *EventSet) Refresh(ctx context.Context) error {
	events, err := s.client.ListEvents(ctx, s.userID)
	if err != nil {
		return err
	}
	s.events = events
	return nil
}

// Events returns the cached collection, most recent start time first.
func (s *EventSet) Events() []EventRecord {
	return s.events
}

// Len returns the cached collection size.
func (s *EventSet) Len() int { return len(s.events) }

// Find returns the cached event with the given id.
func (s *EventSet) Find(eventID string) (EventRecord, bool) {
	for _, event := range s.events {
		if event.ID == eventID {
			return event, true
		}
	}
	return EventRecord{}, false
}

// Delete removes the event remotely and, only once that call has succeeded,
// splices it out of the cache. A failed delete leaves the cache untouched.
func (s *EventSet) Delete(ctx context.Context, eventID string) error {
	if err := s.client.DeleteEvent(ctx, eventID); err != nil {
		return err
	}
	s.remove(eventID)
	return nil
}

func (s *EventSet) remove(eventID string) {
	kept := s.events[:0]
	for _, event := range s.events {
		if event.ID != eventID {
			kept = append(kept, event)
		}
	}
	s.events = kept
}

// InvitationSet is a view-owned cache of one user's invitations.
type InvitationSet struct {
	client      *Client
	userID      string
	invitations []InvitationRecord
}

// NewInvitationSet constructs an empty set for the given user.
func NewInvitationSet(client *Client, userID string) *InvitationSet {
	return &InvitationSet{client: client, userID: userID}
}

// Refresh replaces the cached collection with a full re-fetch.
func (s *InvitationSet) Refresh(ctx context.Context) error {
	invitations, err := s.client.ListInvitations(ctx, s.userID)
	if err != nil {
		return err
	}
	s.invitations = invitations
	return nil
}

// Invitations returns the cached collection.
func (s *InvitationSet) Invitations() []InvitationRecord {
	return s.invitations
}

// Pending returns the cached invitations still awaiting a response.
func (s *InvitationSet) Pending() []InvitationRecord {
	var pending []InvitationRecord
	for _, invitation := range s.invitations {
		if invitation.Status == InvitationPending {
			pending = append(pending, invitation)
		}
	}
	return pending
}

// Find returns the cached invitation with the given id.
func (s *InvitationSet) Find(invitationID string) (InvitationRecord, bool) {
	for _, invitation := range s.invitations {
		if invitation.ID == invitationID {
			return invitation, true
		}
	}
	return InvitationRecord{}, false
}

// NotificationCount counts distinct event titles with pending invitations.
// Several pending invitations to the same event produce one notification.
func (s *InvitationSet) NotificationCount() int {
	titles := map[string]struct{}{}
	for _, invitation := range s.Pending() {
		titles[invitation.EventTitle] = struct{}{}
	}
	return len(titles)
}

// Respond resolves a pending invitation and then re-fetches both the
// invitation collection and, when events is non-nil, the event collection.
// Accepting an invitation adds an event to the accepting user's events, so
// the two collections move together.
func (s *InvitationSet) Respond(ctx context.Context, invitationID string, status InvitationStatus, events *EventSet) (*InvitationRecord, error) {
	invitation, ok := s.Find(invitationID)
	if !ok {
		return nil, fmt.Errorf("%w: invitation %s is not in the current list", ErrNotFound, invitationID)
	}
	if invitation.Status != InvitationPending {
		return nil, fmt.Errorf("%w: invitation %s was already %s", ErrValidation, invitationID, invitation.Status)
	}

	updated, err := s.client.UpdateInvitationStatus(ctx, invitation.ID, invitation.EventID, invitation.UserID, status)
	if err != nil {
		return nil, err
	}

	if err := s.Refresh(ctx); err != nil {
		return updated, err
	}
	if events != nil {
		if err := events.Refresh(ctx); err != nil {
			return updated, err
		}
	}
	return updated, nil
}
