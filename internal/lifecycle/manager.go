// Package lifecycle implements group creation, joining and invitation on top of
// the data gateway.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/tripmate/internal/groupcode"
	"github.com/mmynk/tripmate/internal/metrics"
	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/notify"
	"github.com/mmynk/tripmate/internal/storage"
)

const (
	// maxCodeAttempts bounds the retries when a generated code is already taken.
	maxCodeAttempts = 5

	// DefaultNavigationDelay lets the screen transition finish before the map opens.
	DefaultNavigationDelay = 300 * time.Millisecond
)

// GroupStore is the part of the data gateway the manager writes through.
type GroupStore interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)
	GetGroupByCode(ctx context.Context, code string) (*models.Group, error)
	ListGroupsForMember(ctx context.Context, userID string) ([]models.Group, error)
	AddGroupMember(ctx context.Context, groupID int64, userID string) (bool, error)
	AddGroupRequest(ctx context.Context, groupID int64, req models.Request) error
}

// Notifier delivers invitation notifications and reports per-invitee results.
type Notifier interface {
	Dispatch(ctx context.Context, groupID int64, invites []notify.Invite) []notify.Result
}

// Directory is the cached user list used for leader and member search.
type Directory interface {
	Ensure(ctx context.Context) error
	Filter(query, currentUserID string, exclude []string) []models.User
}

// Identity supplies the current user's ID, or "" when nobody is signed in.
type Identity interface {
	CurrentUserID(ctx context.Context) string
}

// IdentityFunc adapts a function to Identity.
type IdentityFunc func(ctx context.Context) string

func (f IdentityFunc) CurrentUserID(ctx context.Context) string {
	return f(ctx)
}

// Navigator opens the map view of a group.
type Navigator interface {
	ShowGroupMap(groupID int64)
}

// Manager orchestrates the group lifecycle. It holds no per-user state; form
// state lives in the Form passed to each call.
type Manager struct {
	store     GroupStore
	notifier  Notifier
	directory Directory
	identity  Identity

	navigator Navigator
	navDelay  time.Duration

	now     func() time.Time
	newCode func() string
}

// NewManager creates a Manager.
func NewManager(store GroupStore, notifier Notifier, directory Directory, identity Identity) *Manager {
	return &Manager{
		store:     store,
		notifier:  notifier,
		directory: directory,
		identity:  identity,
		navDelay:  DefaultNavigationDelay,
		now:       time.Now,
		newCode:   groupcode.Generate,
	}
}

// WithNavigator attaches nav; successful create and join open the group map
// after delay.
func (m *Manager) WithNavigator(nav Navigator, delay time.Duration) *Manager {
	m.navigator = nav
	m.navDelay = delay
	return m
}

// CreateResult is the outcome of CreateGroup.
type CreateResult struct {
	Group *models.Group

	// Status is StatusSucceeded or StatusPartiallySucceeded.
	Status Status

	// Deliveries has one entry per pending invitation.
	Deliveries []notify.Result

	// Groups is the caller's refreshed group list.
	Groups []models.Group
}

// JoinResult is the outcome of JoinGroup.
type JoinResult struct {
	Group         *models.Group
	AlreadyMember bool
	Groups        []models.Group
}

// InviteResult is the outcome of InviteMember.
type InviteResult struct {
	Status   Status
	Delivery notify.Result
}

// CreateGroup validates form, inserts the group with the caller as its only
// member, records and notifies pending invitations, resets form and refreshes
// the caller's groups.
func (m *Manager) CreateGroup(ctx context.Context, form *Form) (*CreateResult, error) {
	const op = "create"

	userID := m.identity.CurrentUserID(ctx)
	if userID == "" {
		m.transition(op, StatusFailed)
		return nil, ErrNotAuthenticated
	}

	m.transition(op, StatusValidating)
	if err := form.Validate(); err != nil {
		m.transition(op, StatusFailed)
		return nil, err
	}
	destID, err := form.destinationRef()
	if err != nil {
		m.transition(op, StatusFailed)
		return nil, err
	}

	leaderID := userID
	if form.GroupType == models.GroupTypeFollow {
		leaderID = form.Leader.ID
	}

	invitedAt := m.now().Unix()
	invites := pendingInvites(userID, leaderID, form.MemberIDs(), invitedAt)

	group := &models.Group{
		Name:          strings.TrimSpace(form.GroupName),
		Type:          form.GroupType,
		DestinationID: destID,
		LeaderID:      leaderID,
		Members:       []string{userID},
		CreatorID:     userID,
		CreatedAt:     invitedAt,
		Requests:      make([]models.Request, len(invites)),
	}
	for i, inv := range invites {
		group.Requests[i] = models.Request{UserID: inv.UserID, InvitedAt: invitedAt, Status: models.RequestStatusPending}
	}

	m.transition(op, StatusSubmitting)
	if err := m.insertWithFreshCode(ctx, group); err != nil {
		if errors.Is(err, storage.ErrUnknownDestination) {
			m.transition(op, StatusFailed)
			return nil, ErrInvalidDestination
		}
		slog.Error("CreateGroup failed", "user_id", userID, "error", err)
		m.transition(op, StatusFailed)
		return nil, &BackendError{Err: err}
	}

	slog.Info("Group created",
		"group_id", group.ID,
		"code", group.Code,
		"type", group.Type,
		"invites", len(invites),
	)

	var deliveries []notify.Result
	if len(invites) > 0 {
		deliveries = m.notifier.Dispatch(ctx, group.ID, invites)
	}

	status := StatusSucceeded
	if failed := notify.Failed(deliveries); len(failed) > 0 {
		status = StatusPartiallySucceeded
		slog.Warn("Group created with undelivered invitations",
			"group_id", group.ID,
			"failed", len(failed),
			"total", len(deliveries),
		)
	}
	m.transition(op, status)

	form.Reset()
	groups := m.refresh(ctx, userID)
	m.scheduleNavigation(group.ID)

	return &CreateResult{
		Group:      group,
		Status:     status,
		Deliveries: deliveries,
		Groups:     groups,
	}, nil
}

// JoinGroup adds the caller to the group with the given code. Joining a group
// the caller already belongs to changes nothing and still succeeds.
func (m *Manager) JoinGroup(ctx context.Context, code string) (*JoinResult, error) {
	const op = "join"

	userID := m.identity.CurrentUserID(ctx)
	if userID == "" {
		m.transition(op, StatusFailed)
		return nil, ErrNotAuthenticated
	}

	m.transition(op, StatusValidating)
	code = groupcode.Normalize(code)
	if !groupcode.Valid(code) {
		m.transition(op, StatusFailed)
		return nil, ErrInvalidCode
	}

	m.transition(op, StatusSubmitting)
	group, err := m.store.GetGroupByCode(ctx, code)
	if err != nil {
		m.transition(op, StatusFailed)
		return nil, mapStoreError(err)
	}

	already := group.HasMember(userID)
	if !already {
		added, err := m.store.AddGroupMember(ctx, group.ID, userID)
		if err != nil {
			slog.Error("JoinGroup failed", "group_id", group.ID, "user_id", userID, "error", err)
			m.transition(op, StatusFailed)
			return nil, mapStoreError(err)
		}
		// A concurrent join by the same user can win the insert.
		already = !added
		if added {
			group.Members = append(group.Members, userID)
		}
	}

	slog.Info("Group joined", "group_id", group.ID, "user_id", userID, "already_member", already)
	m.transition(op, StatusSucceeded)

	groups := m.refresh(ctx, userID)
	m.scheduleNavigation(group.ID)

	return &JoinResult{Group: group, AlreadyMember: already, Groups: groups}, nil
}

// InviteMember records a pending request for userID on an existing group and
// notifies them.
func (m *Manager) InviteMember(ctx context.Context, groupID int64, userID string, isLeader bool) (*InviteResult, error) {
	const op = "invite"

	m.transition(op, StatusSubmitting)
	group, err := m.store.GetGroup(ctx, groupID)
	if err != nil {
		m.transition(op, StatusFailed)
		return nil, mapStoreError(err)
	}
	if group.HasMember(userID) {
		m.transition(op, StatusFailed)
		return nil, ErrAlreadyMember
	}

	invitedAt := m.now().Unix()
	req := models.Request{UserID: userID, InvitedAt: invitedAt, Status: models.RequestStatusPending}
	if err := m.store.AddGroupRequest(ctx, groupID, req); err != nil {
		slog.Error("InviteMember failed", "group_id", groupID, "user_id", userID, "error", err)
		m.transition(op, StatusFailed)
		return nil, mapStoreError(err)
	}

	results := m.notifier.Dispatch(ctx, groupID, []notify.Invite{
		{UserID: userID, InvitedAt: invitedAt, IsLeader: isLeader},
	})

	result := &InviteResult{Status: StatusSucceeded, Delivery: notify.Result{UserID: userID}}
	if len(results) > 0 {
		result.Delivery = results[0]
	}
	if result.Delivery.Err != nil {
		result.Status = StatusPartiallySucceeded
	}
	m.transition(op, result.Status)
	return result, nil
}

// Reset clears form. It is safe to call any number of times.
func (m *Manager) Reset(form *Form) {
	form.Reset()
}

// LeaderCandidates filters the directory with the form's leader search text.
func (m *Manager) LeaderCandidates(ctx context.Context, form *Form) ([]models.User, error) {
	return m.candidates(ctx, form.LeaderSearch, form)
}

// MemberCandidates filters the directory with the form's member search text.
func (m *Manager) MemberCandidates(ctx context.Context, form *Form) ([]models.User, error) {
	return m.candidates(ctx, form.MemberSearch, form)
}

func (m *Manager) candidates(ctx context.Context, query string, form *Form) ([]models.User, error) {
	if err := m.directory.Ensure(ctx); err != nil {
		return nil, &BackendError{Err: err}
	}
	return m.directory.Filter(query, m.identity.CurrentUserID(ctx), form.MemberIDs()), nil
}

// insertWithFreshCode assigns a generated code and inserts, drawing a new code
// when the store reports a collision.
func (m *Manager) insertWithFreshCode(ctx context.Context, group *models.Group) error {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		group.Code = m.newCode()
		err := m.store.CreateGroup(ctx, group)
		if !errors.Is(err, storage.ErrCodeTaken) {
			return err
		}
		metrics.IncCodeCollision()
		slog.Warn("Group code collision", "code", group.Code, "attempt", attempt)
	}
	return fmt.Errorf("%w after %d attempts", storage.ErrCodeTaken, maxCodeAttempts)
}

// refresh reloads the caller's groups. A failure is logged, not returned: the
// operation that triggered it has already succeeded.
func (m *Manager) refresh(ctx context.Context, userID string) []models.Group {
	groups, err := m.store.ListGroupsForMember(ctx, userID)
	if err != nil {
		slog.Warn("Group list refresh failed", "user_id", userID, "error", err)
		return nil
	}
	return groups
}

func (m *Manager) scheduleNavigation(groupID int64) {
	if m.navigator == nil {
		return
	}
	nav := m.navigator
	time.AfterFunc(m.navDelay, func() { nav.ShowGroupMap(groupID) })
}

func (m *Manager) transition(op string, s Status) {
	slog.Debug("Group lifecycle transition", "operation", op, "status", s.String())
	switch s {
	case StatusSucceeded, StatusPartiallySucceeded, StatusFailed:
		metrics.ObserveGroupOperation(op, s.String())
	}
}

// pendingInvites lists the leader (if not the creator) and each added member
// (if not the creator), once each.
func pendingInvites(creatorID, leaderID string, memberIDs []string, invitedAt int64) []notify.Invite {
	seen := map[string]bool{creatorID: true}
	var invites []notify.Invite

	if !seen[leaderID] {
		seen[leaderID] = true
		invites = append(invites, notify.Invite{UserID: leaderID, InvitedAt: invitedAt, IsLeader: true})
	}
	for _, id := range memberIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		invites = append(invites, notify.Invite{UserID: id, InvitedAt: invitedAt})
	}
	return invites
}

func mapStoreError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrGroupNotFound
	}
	return &BackendError{Err: err}
}
