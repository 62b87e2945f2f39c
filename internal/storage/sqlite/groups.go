package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/tripmate/internal/models"
	"github.com/mmynk/tripmate/internal/storage"
)

const groupColumns = "id, name, code, type, destination_id, leader_id, creator_id, created_at"

// CreateGroup inserts the group row, its members and its requests in one transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var destID any
	if group.DestinationID != nil {
		destID = *group.DestinationID
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO groups (name, code, type, destination_id, leader_id, creator_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		group.Name, group.Code, string(group.Type), destID, group.LeaderID, group.CreatorID, group.CreatedAt,
	)
	if isUniqueViolation(err, "groups.code") {
		return storage.ErrCodeTaken
	}
	// destination_id is the only foreign key on groups.
	if isForeignKeyViolation(err) {
		return storage.ErrUnknownDestination
	}
	if err != nil {
		return fmt.Errorf("failed to insert group: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read group id: %w", err)
	}

	for _, member := range group.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO group_members (group_id, user_id, joined_at) VALUES (?, ?, ?)",
			id, member, group.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}

	for _, req := range group.Requests {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO group_requests (group_id, user_id, invited_at, status) VALUES (?, ?, ?, ?)",
			id, req.UserID, req.InvitedAt, req.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group request: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	group.ID = id
	return nil
}

// GetGroup retrieves a group by ID, including members and requests.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID int64) (*models.Group, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+groupColumns+" FROM groups WHERE id = ?", groupID)
	return s.loadGroup(ctx, row)
}

// GetGroupByCode retrieves a group by its exact join code.
func (s *SQLiteStore) GetGroupByCode(ctx context.Context, code string) (*models.Group, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+groupColumns+" FROM groups WHERE code = ?", code)
	return s.loadGroup(ctx, row)
}

// ListGroupsForMember returns the groups userID belongs to, newest first.
func (s *SQLiteStore) ListGroupsForMember(ctx context.Context, userID string) ([]models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name, g.code, g.type, g.destination_id, g.leader_id, g.creator_id, g.created_at
		 FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = ?
		 ORDER BY g.created_at DESC, g.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var groups []models.Group
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		groups = append(groups, *group)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for i := range groups {
		if err := s.loadChildren(ctx, &groups[i]); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

// AddGroupMember inserts the membership row; an existing row is left untouched.
func (s *SQLiteStore) AddGroupMember(ctx context.Context, groupID int64, userID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, joined_at)
		 SELECT id, ?, ? FROM groups WHERE id = ?
		 ON CONFLICT (group_id, user_id) DO NOTHING`,
		userID, time.Now().Unix(), groupID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add group member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		exists, err := s.groupExists(ctx, groupID)
		if err != nil {
			return false, err
		}
		if !exists {
			return false, storage.ErrNotFound
		}
	}
	return n > 0, nil
}

// AddGroupRequest appends a request row to the group.
func (s *SQLiteStore) AddGroupRequest(ctx context.Context, groupID int64, req models.Request) error {
	exists, err := s.groupExists(ctx, groupID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrNotFound
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO group_requests (group_id, user_id, invited_at, status) VALUES (?, ?, ?, ?)",
		groupID, req.UserID, req.InvitedAt, req.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert group request: %w", err)
	}
	return nil
}

func (s *SQLiteStore) groupExists(ctx context.Context, groupID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", groupID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check group: %w", err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGroup(row rowScanner) (*models.Group, error) {
	group := &models.Group{}
	var groupType string
	var destID sql.NullInt64
	err := row.Scan(&group.ID, &group.Name, &group.Code, &groupType, &destID,
		&group.LeaderID, &group.CreatorID, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan group: %w", err)
	}

	group.Type = models.GroupType(groupType)
	if destID.Valid {
		id := destID.Int64
		group.DestinationID = &id
	}
	return group, nil
}

func (s *SQLiteStore) loadGroup(ctx context.Context, row *sql.Row) (*models.Group, error) {
	group, err := scanGroup(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadChildren(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// loadChildren fills Members and Requests.
func (s *SQLiteStore) loadChildren(ctx context.Context, group *models.Group) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id FROM group_members WHERE group_id = ? ORDER BY joined_at, rowid",
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get group members: %w", err)
	}
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan group member: %w", err)
		}
		group.Members = append(group.Members, userID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate group members: %w", err)
	}

	reqRows, err := s.db.QueryContext(ctx,
		"SELECT user_id, invited_at, status FROM group_requests WHERE group_id = ? ORDER BY id",
		group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get group requests: %w", err)
	}
	defer reqRows.Close()

	for reqRows.Next() {
		var req models.Request
		if err := reqRows.Scan(&req.UserID, &req.InvitedAt, &req.Status); err != nil {
			return fmt.Errorf("failed to scan group request: %w", err)
		}
		group.Requests = append(group.Requests, req)
	}
	if err := reqRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate group requests: %w", err)
	}
	return nil
}
