package sdk

import "time"

// AdminRoleName is the role name granting administrative rights.
const AdminRoleName = "ADMIN"

// Role is a named authorization role attached to a user.
type Role struct {
	Name string `json:"name"`
}

// UserRecord describes a registered user as returned by the backend.
type UserRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Roles    []Role `json:"roles"`
}

// IsAdmin reports whether the user's role list contains the ADMIN role.
// Authorization is always re-derived from a fresh record; callers must not
// persist the result across role changes.
func (u UserRecord) IsAdmin() bool {
	for _, role := range u.Roles {
		if role.Name == AdminRoleName {
			return true
		}
	}
	return false
}

// EventRecord describes a calendar event.
type EventRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Location    string    `json:"location"`
	OwnerID     string    `json:"ownerId"`
}

// InvitationStatus is the lifecycle state of an event invitation.
// PENDING transitions once, to either ACCEPTED or DECLINED.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// InvitationRecord describes an invitation of a user to an event.
type InvitationRecord struct {
	ID               string           `json:"id"`
	EventID          string           `json:"eventId"`
	EventTitle       string           `json:"eventTitle"`
	UserID           string           `json:"userId"`
	InvitingUserID   string           `json:"invitingUserId"`
	InvitingUserName string           `json:"invitingUserName"`
	Status           InvitationStatus `json:"status"`
}

// LoginResult carries the credentials returned by a successful login.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	ID          string `json:"id"`
	Username    string `json:"username"`
}

// CreateEventInput is the payload for creating an event.
type CreateEventInput struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	Location          string    `json:"location"`
	InvitedUserEmails []string  `json:"invitedUserEmails"`
}

// UpdateUserInput is the payload for updating a user profile.
// Password is a pointer so that an unchanged password is omitted from the
// request entirely; the backend treats an empty string as a real password.
type UpdateUserInput struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
}
