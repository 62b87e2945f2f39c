package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/tripmate/internal/models"
)

func TestFormReset(t *testing.T) {
	f := NewForm()
	require.Equal(t, models.GroupTypeDestination, f.GroupType)

	f.GroupName = "Paris Trip"
	f.GroupType = models.GroupTypeFollow
	f.Destination = "Paris"
	f.DestinationID = 12
	f.DestinationCoords = &models.Coordinates{Latitude: 1, Longitude: 2}
	f.MemberSearch = "bo"
	f.LeaderSearch = "al"
	f.SelectLeader(models.User{ID: "a", Username: "alice"})
	f.AddMember(models.User{ID: "b"})
	f.JoinCode = "ABC123"
	f.FocusedField = "name"
	f.ShowMemberSuggestions = true
	f.ShowLeaderSuggestions = true

	f.Reset()
	require.Equal(t, NewForm(), f)

	f.Reset()
	require.Equal(t, NewForm(), f)
}

func TestFormMembers(t *testing.T) {
	f := NewForm()
	f.MemberSearch = "b"
	f.ShowMemberSuggestions = true

	f.AddMember(models.User{ID: "b"})
	f.AddMember(models.User{ID: "c"})
	f.AddMember(models.User{ID: "b"})
	require.Equal(t, []string{"b", "c"}, f.MemberIDs())
	require.Empty(t, f.MemberSearch)
	require.False(t, f.ShowMemberSuggestions)

	f.RemoveMember("b")
	require.Equal(t, []string{"c"}, f.MemberIDs())
}

func TestFormValidate(t *testing.T) {
	leader := &models.User{ID: "l"}
	tests := []struct {
		name string
		form Form
		want error
	}{
		{name: "missing name", form: Form{GroupType: models.GroupTypeDestination, DestinationID: 1}, want: ErrNameRequired},
		{name: "blank name", form: Form{GroupName: "  ", GroupType: models.GroupTypeDestination, DestinationID: 1}, want: ErrNameRequired},
		{name: "destination without destination", form: Form{GroupName: "Trip", GroupType: models.GroupTypeDestination}, want: ErrDestinationRequired},
		{name: "destination from numeric text", form: Form{GroupName: "Trip", GroupType: models.GroupTypeDestination, Destination: "42"}},
		{name: "destination from non-numeric text", form: Form{GroupName: "Trip", GroupType: models.GroupTypeDestination, Destination: "Paris"}, want: ErrInvalidDestination},
		{name: "follow without leader", form: Form{GroupName: "Trip", GroupType: models.GroupTypeFollow}, want: ErrLeaderRequired},
		{name: "follow with leader", form: Form{GroupName: "Trip", GroupType: models.GroupTypeFollow, Leader: leader}},
		{name: "unknown type", form: Form{GroupName: "Trip", GroupType: "boat"}, want: ErrInvalidGroupType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
		})
	}
}
