package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"questnotifier/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/goccy/go-json"
	"github.com/lib/pq"
)

// maxZoneBatch caps the number of values in one timezone IN-predicate so a
// single query never carries an unbounded parameter list.
const maxZoneBatch = 30

// batchZones splits the zone list into chunks of at most maxZoneBatch.
func batchZones(zones []string) [][]string {
	var batches [][]string
	for start := 0; start < len(zones); start += maxZoneBatch {
		end := start + maxZoneBatch
		if end > len(zones) {
			end = len(zones)
		}
		batches = append(batches, zones[start:end])
	}
	return batches
}

type User struct {
	ID                  string         `db:"id"`
	FCMTokens           pq.StringArray `db:"fcm_tokens"`
	FCMToken            *string        `db:"fcm_token"`
	NotificationSetting []byte         `db:"notification_setting"`
	BadgeCount          int            `db:"badge_count"`
	TimeZone            string         `db:"time_zone"`
}

var userColumns = []string{
	"id", "fcm_tokens", "fcm_token", "notification_setting", "badge_count", "time_zone",
}

func (u *User) toModel() (*model.User, error) {
	var setting map[string]bool
	if len(u.NotificationSetting) > 0 {
		if err := json.Unmarshal(u.NotificationSetting, &setting); err != nil {
			return nil, fmt.Errorf("failed to decode notification setting: %w", err)
		}
	}

	return &model.User{
		ID:                  u.ID,
		FCMTokens:           u.FCMTokens,
		FCMToken:            u.FCMToken,
		NotificationSetting: setting,
		BadgeCount:          u.BadgeCount,
		TimeZone:            u.TimeZone,
	}, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	query, args, err := squirrel.
		Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user query: %w", err)
	}

	var row User
	err = r.db.GetContext(ctx, &row, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}

	return row.toModel()
}

func (r *Repository) UpdateBadgeCount(ctx context.Context, id string, badge int) error {
	query, args, err := squirrel.
		Update("users").
		Set("badge_count", badge).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build badge update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update badge count: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListDailySummaryUsers returns users in any of the given timezones who have
// the daily summary enabled. The zone filter is issued in batches so a single
// query never carries more than maxZoneBatch IN-values.
func (r *Repository) ListDailySummaryUsers(ctx context.Context, zones []string) ([]*model.User, error) {
	var users []*model.User

	for _, batch := range batchZones(zones) {
		query, args, err := squirrel.
			Select(userColumns...).
			From("users").
			Where(squirrel.Eq{"time_zone": batch}).
			Where("(notification_setting ->> 'dailySummary')::boolean IS TRUE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build summary users query: %w", err)
		}

		var rows []User
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("failed to select summary users: %w", err)
		}

		for i := range rows {
			u, err := rows[i].toModel()
			if err != nil {
				return nil, err
			}
			users = append(users, u)
		}
	}

	return users, nil
}
