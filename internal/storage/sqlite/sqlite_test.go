package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tripmate-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreateUser(t *testing.T, store *SQLiteStore, email, username string) *models.User {
	t.Helper()
	user := models.NewUser(email, username, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup assigns ID and persists members and requests", func(t *testing.T) {
		group := &models.Group{
			Name:      "Paris Trip",
			Code:      "ABC123",
			Type:      models.GroupTypeDestination,
			LeaderID:  "alice",
			CreatorID: "alice",
			Members:   []string{"alice"},
			Requests: []models.Request{
				{UserID: "bob", InvitedAt: 100, Status: models.RequestStatusPending},
				{UserID: "carol", InvitedAt: 100, Status: models.RequestStatusPending},
			},
		}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if group.ID == 0 {
			t.Fatal("Expected group ID to be assigned")
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetGroupByCode(ctx, "ABC123")
		if err != nil {
			t.Fatalf("GetGroupByCode failed: %v", err)
		}
		if got.ID != group.ID || got.Name != "Paris Trip" {
			t.Errorf("got group %d %q, want %d %q", got.ID, got.Name, group.ID, "Paris Trip")
		}
		if len(got.Members) != 1 || got.Members[0] != "alice" {
			t.Errorf("members = %v, want [alice]", got.Members)
		}
		if len(got.Requests) != 2 {
			t.Fatalf("requests = %d, want 2", len(got.Requests))
		}
		if got.Requests[0].UserID != "bob" || got.Requests[0].Status != models.RequestStatusPending {
			t.Errorf("first request = %+v", got.Requests[0])
		}
		if got.DestinationID != nil {
			t.Errorf("DestinationID = %v, want nil", *got.DestinationID)
		}
	})

	t.Run("CreateGroup rejects a duplicate code", func(t *testing.T) {
		group := &models.Group{Name: "Again", Code: "ABC123", Type: models.GroupTypeFollow, LeaderID: "x", CreatorID: "x", Members: []string{"x"}}
		err := store.CreateGroup(ctx, group)
		if !errors.Is(err, storage.ErrCodeTaken) {
			t.Errorf("err = %v, want ErrCodeTaken", err)
		}
	})

	t.Run("CreateGroup rejects an unknown destination", func(t *testing.T) {
		missing := int64(9999)
		group := &models.Group{Name: "Nowhere", Code: "NOW001", Type: models.GroupTypeDestination, DestinationID: &missing, LeaderID: "x", CreatorID: "x", Members: []string{"x"}}
		err := store.CreateGroup(ctx, group)
		if !errors.Is(err, storage.ErrUnknownDestination) {
			t.Errorf("err = %v, want ErrUnknownDestination", err)
		}
		if _, err := store.GetGroupByCode(ctx, "NOW001"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("group was persisted: err = %v", err)
		}
	})

	t.Run("GetGroup returns ErrNotFound for unknown IDs", func(t *testing.T) {
		_, err := store.GetGroup(ctx, 9999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
		_, err = store.GetGroupByCode(ctx, "ZZZ999")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("AddGroupMember is idempotent", func(t *testing.T) {
		group := &models.Group{Name: "Hike", Code: "HIK001", Type: models.GroupTypeFollow, LeaderID: "dan", CreatorID: "dan", Members: []string{"dan"}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		added, err := store.AddGroupMember(ctx, group.ID, "erin")
		if err != nil || !added {
			t.Fatalf("first AddGroupMember = %v, %v; want true, nil", added, err)
		}
		added, err = store.AddGroupMember(ctx, group.ID, "erin")
		if err != nil || added {
			t.Fatalf("second AddGroupMember = %v, %v; want false, nil", added, err)
		}

		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.Members) != 2 {
			t.Errorf("members = %v, want [dan erin]", got.Members)
		}

		groups, err := store.ListGroupsForMember(ctx, "erin")
		if err != nil {
			t.Fatalf("ListGroupsForMember failed: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != group.ID {
			t.Errorf("ListGroupsForMember(erin) = %v", groups)
		}
	})

	t.Run("AddGroupMember on a missing group", func(t *testing.T) {
		_, err := store.AddGroupMember(ctx, 4242, "erin")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("AddGroupRequest appends", func(t *testing.T) {
		group, err := store.GetGroupByCode(ctx, "HIK001")
		if err != nil {
			t.Fatalf("GetGroupByCode failed: %v", err)
		}
		req := models.Request{UserID: "frank", InvitedAt: 5, Status: models.RequestStatusPending}
		if err := store.AddGroupRequest(ctx, group.ID, req); err != nil {
			t.Fatalf("AddGroupRequest failed: %v", err)
		}
		got, _ := store.GetGroup(ctx, group.ID)
		if len(got.Requests) != 1 || got.Requests[0].UserID != "frank" {
			t.Errorf("requests = %v", got.Requests)
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice@example.com", "alice")
	mustCreateUser(t, store, "bob@example.com", "bob")

	t.Run("lookups", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got.ID != alice.ID {
			t.Errorf("ID = %s, want %s", got.ID, alice.ID)
		}
		if _, err := store.GetUserByID(ctx, "nobody"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}

		users, err := store.ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers failed: %v", err)
		}
		if len(users) != 2 || users[0].Username != "alice" {
			t.Errorf("ListUsers = %v", users)
		}
	})

	t.Run("notifications append without dedupe", func(t *testing.T) {
		n := models.Notification{GroupID: 7, InvitedAt: 10, IsLeader: true}
		for i := 0; i < 2; i++ {
			if err := store.AppendNotification(ctx, alice.ID, n); err != nil {
				t.Fatalf("AppendNotification failed: %v", err)
			}
		}
		got, err := store.ListNotifications(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListNotifications failed: %v", err)
		}
		if len(got) != 2 || got[0] != n {
			t.Errorf("notifications = %v", got)
		}

		if err := store.AppendNotification(ctx, "ghost", n); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("saved trips", func(t *testing.T) {
		for _, id := range []int64{3, 1, 3} {
			if err := store.AddSavedTrip(ctx, alice.ID, id); err != nil {
				t.Fatalf("AddSavedTrip failed: %v", err)
			}
		}
		if err := store.RemoveSavedTrip(ctx, alice.ID, 1); err != nil {
			t.Fatalf("RemoveSavedTrip failed: %v", err)
		}
		ids, err := store.ListSavedTrips(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListSavedTrips failed: %v", err)
		}
		if len(ids) != 1 || ids[0] != 3 {
			t.Errorf("saved trips = %v, want [3]", ids)
		}
	})
}

func TestDestinations(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	dest := &models.Destination{
		Name:      "Eiffel Tower",
		Location:  "Paris, France",
		Latitude:  48.8584,
		Longitude: 2.2945,
		Rating:    4.7,
		Images:    []string{"a.jpg"},
	}
	if err := store.CreateDestination(ctx, dest); err != nil {
		t.Fatalf("CreateDestination failed: %v", err)
	}
	if dest.ID == 0 {
		t.Fatal("Expected destination ID to be assigned")
	}

	got, err := store.FindDestinationByCoordinates(ctx, models.Coordinates{Latitude: 48.8584, Longitude: 2.2945})
	if err != nil {
		t.Fatalf("FindDestinationByCoordinates failed: %v", err)
	}
	if got.ID != dest.ID || len(got.Images) != 1 {
		t.Errorf("got %+v", got)
	}

	_, err = store.FindDestinationByCoordinates(ctx, models.Coordinates{Latitude: 48.8584, Longitude: 2.2946})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	if err := store.UpdateDestinationImages(ctx, dest.ID, []string{"b.jpg", "c.jpg"}, "c.jpg"); err != nil {
		t.Fatalf("UpdateDestinationImages failed: %v", err)
	}
	got, err = store.GetDestination(ctx, dest.ID)
	if err != nil {
		t.Fatalf("GetDestination failed: %v", err)
	}
	if got.PrimaryImage != "c.jpg" || len(got.Images) != 2 {
		t.Errorf("images = %v primary = %q", got.Images, got.PrimaryImage)
	}

	if err := store.UpdateDestinationImages(ctx, 999, nil, ""); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
