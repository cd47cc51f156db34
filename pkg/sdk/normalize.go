package sdk

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// collectionEnvelope matches the wrapper objects the backend uses
// interchangeably around collections and single records.
type collectionEnvelope struct {
	Data  json.RawMessage `json:"data"`
	Users json.RawMessage `json:"users"`
}

// NormalizeUserList decodes a user collection response. The backend returns
// one of three shapes depending on revision: a bare array, {"data": [...]},
// or {"users": [...]}. All three normalize to the same ordered sequence.
// Any other shape yields an empty sequence and ErrUnexpectedShape.
func NormalizeUserList(raw json.RawMessage) ([]UserRecord, error) {
	body, err := unwrapCollection(raw)
	if err != nil {
		return nil, err
	}
	var users []UserRecord
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return users, nil
}

// normalizeEventList decodes an event collection, tolerating both the bare
// array and the {"data": [...]} envelope.
func normalizeEventList(raw json.RawMessage) ([]EventRecord, error) {
	body, err := unwrapCollection(raw)
	if err != nil {
		return nil, err
	}
	var events []EventRecord
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return events, nil
}

// normalizeInvitationList decodes an invitation collection the same way.
func normalizeInvitationList(raw json.RawMessage) ([]InvitationRecord, error) {
	body, err := unwrapCollection(raw)
	if err != nil {
		return nil, err
	}
	var invitations []InvitationRecord
	if err := json.Unmarshal(body, &invitations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	return invitations, nil
}

// normalizeUser decodes a single-user response, which is either a bare object
// or wrapped in {"data": {...}}.
func normalizeUser(raw json.RawMessage) (*UserRecord, error) {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}
	if body[0] == '{' {
		var envelope collectionEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 {
			body = bytes.TrimSpace(envelope.Data)
		}
	}
	var user UserRecord
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if user.ID == "" && user.Username == "" {
		return nil, fmt.Errorf("%w: user record missing id and username", ErrUnexpectedShape)
	}
	return &user, nil
}

// unwrapCollection locates the array payload within a response body.
func unwrapCollection(raw json.RawMessage) (json.RawMessage, error) {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrUnexpectedShape)
	}
	if body[0] == '[' {
		return body, nil
	}
	if body[0] == '{' {
		var envelope collectionEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
		}
		if inner := bytes.TrimSpace(envelope.Data); len(inner) > 0 && inner[0] == '[' {
			return inner, nil
		}
		if inner := bytes.TrimSpace(envelope.Users); len(inner) > 0 && inner[0] == '[' {
			return inner, nil
		}
	}
	return nil, fmt.Errorf("%w: expected a collection or a data/users envelope", ErrUnexpectedShape)
}
