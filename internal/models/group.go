package models

import "slices"

// GroupType selects how a group travels.
type GroupType string

const (
	// GroupTypeDestination groups travel together to a fixed destination.
	GroupTypeDestination GroupType = "destination"

	// GroupTypeFollow groups track a designated leader.
	GroupTypeFollow GroupType = "follow"
)

// Valid reports whether t is a known group type.
func (t GroupType) Valid() bool {
	return t == GroupTypeDestination || t == GroupTypeFollow
}

// RequestStatusPending is the only status ever written for a request.
const RequestStatusPending = "pending"

// Group represents a trip party.
type Group struct {
	// ID is assigned by the store on insert.
	ID int64

	// Name is the display name of the group (e.g., "Paris Trip").
	Name string

	// Code is the 6-character join code: 3 uppercase letters then 3 digits.
	Code string

	// Type is either destination or follow.
	Type GroupType

	// DestinationID is set only for destination-type groups.
	DestinationID *int64

	// LeaderID is the user the group follows. For destination-type groups
	// it is the creator.
	LeaderID string

	// Members holds user IDs. The creator is always a member at creation.
	// Invitees are not members until they join.
	Members []string

	// CreatorID is the user who created the group.
	CreatorID string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// Requests are the pending invitations recorded on the group.
	Requests []Request
}

// Request is a pending invitation of a user into a group.
type Request struct {
	UserID    string
	InvitedAt int64
	Status    string
}

// HasMember reports whether userID is in the member list.
func (g *Group) HasMember(userID string) bool {
	return slices.Contains(g.Members, userID)
}
