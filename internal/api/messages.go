package api

// Group mirrors models.Group on the wire.
type Group struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Type          string    `json:"type"`
	DestinationID *int64    `json:"destination_id,omitempty"`
	LeaderID      string    `json:"leader_id"`
	Members       []string  `json:"group_members"`
	CreatorID     string    `json:"creator_id"`
	CreatedAt     int64     `json:"created_at"`
	Requests      []Request `json:"request,omitempty"`
}

type Request struct {
	UserID    string `json:"user_id"`
	InvitedAt int64  `json:"invite_date"`
	Status    string `json:"status"`
}

// User is the public profile; password hashes never leave the server.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type Notification struct {
	GroupID   int64 `json:"group_id"`
	InvitedAt int64 `json:"invite_date"`
	IsLeader  bool  `json:"is_leader"`
}

// Delivery reports one invitation notification. Error is empty on success.
type Delivery struct {
	UserID string `json:"user_id"`
	Error  string `json:"error,omitempty"`
}

type Destination struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Rating       float64  `json:"rating"`
	Images       []string `json:"images"`
	PrimaryImage string   `json:"primary_image"`
}

type Place struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Rating    float64  `json:"rating"`
	PhotoRefs []string `json:"photo_refs,omitempty"`
}

// Auth

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Groups

type CreateGroupRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// DestinationID wins over Destination, which must otherwise hold a numeric ID.
	DestinationID int64  `json:"destination_id,omitempty"`
	Destination   string `json:"destination,omitempty"`

	LeaderID  string   `json:"leader_id,omitempty"`
	MemberIDs []string `json:"member_ids,omitempty"`
}

type CreateGroupResponse struct {
	Group      *Group     `json:"group"`
	Status     string     `json:"status"`
	Deliveries []Delivery `json:"deliveries,omitempty"`
	Groups     []*Group   `json:"groups"`

	// MapPath is opened by the client MapDelayMs after the response arrives.
	MapPath    string `json:"map_path"`
	MapDelayMs int64  `json:"map_delay_ms"`
}

type JoinGroupRequest struct {
	Code string `json:"code"`
}

type JoinGroupResponse struct {
	Group         *Group   `json:"group"`
	AlreadyMember bool     `json:"already_member"`
	Groups        []*Group `json:"groups"`
	MapPath       string   `json:"map_path"`
	MapDelayMs    int64    `json:"map_delay_ms"`
}

type InviteMemberRequest struct {
	GroupID  int64  `json:"group_id"`
	UserID   string `json:"user_id"`
	IsLeader bool   `json:"is_leader,omitempty"`
}

type InviteMemberResponse struct {
	Status   string   `json:"status"`
	Delivery Delivery `json:"delivery"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type GetGroupRequest struct {
	GroupID int64 `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

// Users

type SearchUsersRequest struct {
	Query      string   `json:"query"`
	ExcludeIDs []string `json:"exclude_ids,omitempty"`
}

type SearchUsersResponse struct {
	Users []*User `json:"users"`
}

type ListNotificationsRequest struct{}

type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type SaveTripRequest struct {
	DestinationID int64 `json:"destination_id"`
	Saved         bool  `json:"saved"`
}

type SaveTripResponse struct {
	SavedTrips []int64 `json:"savedtrips"`
}

type ListSavedTripsRequest struct{}

type ListSavedTripsResponse struct {
	SavedTrips []int64 `json:"savedtrips"`
}

// Destinations

type GetDestinationRequest struct {
	ID int64 `json:"id"`
}

type GetDestinationResponse struct {
	Destination *Destination `json:"destination"`
}

type SearchPlacesRequest struct {
	Query string `json:"query"`
}

type SearchPlacesResponse struct {
	Places []Place `json:"places"`
}

type ResolveDestinationRequest struct {
	Place Place `json:"place"`
}

type ResolveDestinationResponse struct {
	DestinationID int64 `json:"destination_id"`
	Created       bool  `json:"created"`
}

type SetDestinationImagesRequest struct {
	ID           int64    `json:"id"`
	Images       []string `json:"images"`
	PrimaryImage string   `json:"primary_image,omitempty"`
}

type SetDestinationImagesResponse struct {
	Destination *Destination `json:"destination"`
}
