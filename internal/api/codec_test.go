package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecEmptyBody(t *testing.T) {
	var req ListGroupsRequest
	require.NoError(t, Codec{}.Unmarshal(nil, &req))

	var join JoinGroupRequest
	require.NoError(t, Codec{}.Unmarshal([]byte(`{"code":"ABC123"}`), &join))
	require.Equal(t, "ABC123", join.Code)
}

func TestCodecFieldNames(t *testing.T) {
	dest := int64(4)
	data, err := Codec{}.Marshal(&Group{ID: 1, Code: "ABC123", DestinationID: &dest, Members: []string{"a"}})
	require.NoError(t, err)
	require.Contains(t, string(data), `"group_members":["a"]`)
	require.Contains(t, string(data), `"destination_id":4`)
	require.NotContains(t, string(data), `"request"`)
}
