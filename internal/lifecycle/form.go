package lifecycle

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mmynk/tripmate/internal/models"
)

// Form is the editable state of one create/join screen. It is owned by the
// screen (or request) that hosts the flow and passed to Manager operations.
// The zero value is not ready for use; call NewForm.
type Form struct {
	GroupName string
	GroupType models.GroupType

	// Destination is free text from the search box. DestinationID wins when set.
	Destination       string
	DestinationID     int64
	DestinationCoords *models.Coordinates

	MemberSearch string
	LeaderSearch string
	Leader       *models.User
	Members      []models.User

	JoinCode string

	FocusedField          string
	ShowMemberSuggestions bool
	ShowLeaderSuggestions bool
}

// NewForm returns a form with every field at its default.
func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset clears every field. Group type goes back to destination.
func (f *Form) Reset() {
	*f = Form{GroupType: models.GroupTypeDestination}
}

// AddMember adds u to the invite list unless already present, and clears the member search.
func (f *Form) AddMember(u models.User) {
	if !slices.ContainsFunc(f.Members, func(m models.User) bool { return m.ID == u.ID }) {
		f.Members = append(f.Members, u)
	}
	f.MemberSearch = ""
	f.ShowMemberSuggestions = false
}

// RemoveMember drops the user with the given ID from the invite list.
func (f *Form) RemoveMember(userID string) {
	f.Members = slices.DeleteFunc(f.Members, func(m models.User) bool { return m.ID == userID })
}

// SelectLeader picks u as the leader of a follow group.
func (f *Form) SelectLeader(u models.User) {
	f.Leader = &u
	f.LeaderSearch = u.Username
	f.ShowLeaderSuggestions = false
}

// MemberIDs returns the IDs of the added members in order.
func (f *Form) MemberIDs() []string {
	ids := make([]string, len(f.Members))
	for i, m := range f.Members {
		ids[i] = m.ID
	}
	return ids
}

// Validate checks the fields CreateGroup needs.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.GroupName) == "" {
		return ErrNameRequired
	}
	switch f.GroupType {
	case models.GroupTypeDestination:
		_, err := f.destinationRef()
		return err
	case models.GroupTypeFollow:
		if f.Leader == nil || f.Leader.ID == "" {
			return ErrLeaderRequired
		}
		return nil
	default:
		return ErrInvalidGroupType
	}
}

// destinationRef resolves the destination of a destination-type group.
// Free text is accepted only if it parses as an integer ID.
func (f *Form) destinationRef() (*int64, error) {
	if f.GroupType != models.GroupTypeDestination {
		return nil, nil
	}
	if f.DestinationID > 0 {
		id := f.DestinationID
		return &id, nil
	}
	text := strings.TrimSpace(f.Destination)
	if text == "" {
		return nil, ErrDestinationRequired
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id <= 0 {
		return nil, ErrInvalidDestination
	}
	return &id, nil
}
