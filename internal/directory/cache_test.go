package directory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mmynk/tripmate/internal/models"
)

type countingLister struct {
	users []models.User
	err   error
	calls int
}

func (l *countingLister) ListUsers(ctx context.Context) ([]models.User, error) {
	l.calls++
	return l.users, l.err
}

var testUsers = []models.User{
	{ID: "a", Username: "Alice", Email: "alice@example.com"},
	{ID: "b", Username: "bob", Email: "BOB@mail.test"},
	{ID: "c", Username: "Carol", Email: "carol@example.com"},
	{ID: "d", Username: "dave", Email: "dave@elsewhere.org"},
}

func TestEnsureFetchesOnce(t *testing.T) {
	lister := &countingLister{users: testUsers}
	cache := NewCache(lister)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := cache.Ensure(ctx); err != nil {
			t.Fatalf("Ensure failed: %v", err)
		}
	}
	if lister.calls != 1 {
		t.Errorf("ListUsers called %d times, want 1", lister.calls)
	}
	if got := len(cache.Users()); got != len(testUsers) {
		t.Errorf("Users() = %d users, want %d", got, len(testUsers))
	}

	cache.Invalidate()
	if err := cache.Ensure(ctx); err != nil {
		t.Fatalf("Ensure after Invalidate failed: %v", err)
	}
	if lister.calls != 2 {
		t.Errorf("ListUsers called %d times after Invalidate, want 2", lister.calls)
	}
}

func TestEnsureDoesNotRetryAfterFailure(t *testing.T) {
	lister := &countingLister{err: errors.New("boom")}
	cache := NewCache(lister)

	if err := cache.Ensure(context.Background()); err == nil {
		t.Fatal("expected error from first Ensure")
	}
	if err := cache.Ensure(context.Background()); err != nil {
		t.Fatalf("second Ensure = %v, want nil (already attempted)", err)
	}
	if lister.calls != 1 {
		t.Errorf("ListUsers called %d times, want 1", lister.calls)
	}
}

// gatedLister blocks its first ListUsers call until release is closed.
type gatedLister struct {
	mu      sync.Mutex
	users   []models.User
	calls   int
	started chan struct{}
	release chan struct{}
}

func (l *gatedLister) ListUsers(ctx context.Context) ([]models.User, error) {
	l.mu.Lock()
	l.calls++
	first := l.calls == 1
	snapshot := append([]models.User(nil), l.users...)
	l.mu.Unlock()

	if first {
		close(l.started)
		<-l.release
	}
	return snapshot, nil
}

func (l *gatedLister) add(u models.User) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.users = append(l.users, u)
}

func TestInvalidateDuringFetch(t *testing.T) {
	lister := &gatedLister{
		users:   []models.User{{ID: "a", Username: "alice"}},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := NewCache(lister)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- cache.Ensure(ctx) }()
	<-lister.started

	lister.add(models.User{ID: "b", Username: "bob"})
	cache.Invalidate()
	close(lister.release)
	if err := <-done; err != nil {
		t.Fatalf("in-flight Ensure failed: %v", err)
	}

	if err := cache.Ensure(ctx); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if lister.calls != 2 {
		t.Errorf("ListUsers called %d times, want 2", lister.calls)
	}
	if got := cache.Filter("bob", "", nil); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("Filter(bob) = %v, want the user added during the fetch", got)
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		current string
		exclude []string
		want    []string
	}{
		{name: "matches username ignoring case", query: "ALI", want: []string{"a"}},
		{name: "matches email ignoring case", query: "mail.TEST", want: []string{"b"}},
		{name: "shared substring", query: "example", want: []string{"a", "c"}},
		{name: "excludes current user", query: "example", current: "a", want: []string{"c"}},
		{name: "excludes added members", query: "", current: "a", exclude: []string{"b", "d"}, want: []string{"c"}},
		{name: "no match", query: "zed", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testUsers, tt.query, tt.current, tt.exclude)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter() = %v, want ids %v", got, tt.want)
			}
			for i, u := range got {
				if u.ID != tt.want[i] {
					t.Errorf("result[%d] = %s, want %s", i, u.ID, tt.want[i])
				}
			}
		})
	}
}
