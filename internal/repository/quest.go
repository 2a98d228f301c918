package repository

import (
	"context"
	"fmt"
	"time"

	"questnotifier/internal/model"

	"github.com/Masterminds/squirrel"
)

type Quest struct {
	ID             string     `db:"id"`
	Title          string     `db:"title"`
	Category       string     `db:"category"`
	CreatedBy      string     `db:"created_by"`
	AssignedTo     *string    `db:"assigned_to"`
	Status         string     `db:"status"`
	DueDate        *time.Time `db:"due_date"`
	TemplateID     *string    `db:"template_id"`
	LastNotifiedAt *time.Time `db:"last_notified_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

var questColumns = []string{
	"id", "title", "category", "created_by", "assigned_to",
	"status", "due_date", "template_id", "last_notified_at", "created_at",
}

func (q *Quest) toModel() *model.Quest {
	return &model.Quest{
		ID:             q.ID,
		Title:          q.Title,
		Category:       model.Category(q.Category),
		CreatedBy:      q.CreatedBy,
		AssignedTo:     q.AssignedTo,
		Status:         model.QuestStatus(q.Status),
		DueDate:        q.DueDate,
		TemplateID:     q.TemplateID,
		LastNotifiedAt: q.LastNotifiedAt,
		CreatedAt:      q.CreatedAt,
	}
}

func (r *Repository) CreateQuest(ctx context.Context, quest *model.Quest) error {
	query, args, err := squirrel.
		Insert("quests").
		SetMap(map[string]interface{}{
			"id":          quest.ID,
			"title":       quest.Title,
			"category":    string(quest.Category),
			"created_by":  quest.CreatedBy,
			"assigned_to": quest.AssignedTo,
			"status":      string(quest.Status),
			"due_date":    quest.DueDate,
			"template_id": quest.TemplateID,
			"created_at":  quest.CreatedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build quest insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert quest: %w", err)
	}

	return nil
}

// ListDueBetween returns open quests whose due date falls in (from, to].
func (r *Repository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*model.Quest, error) {
	query, args, err := squirrel.
		Select(questColumns...).
		From("quests").
		Where(squirrel.NotEq{"status": []string{
			string(model.StatusCompleted),
			string(model.StatusApproved),
		}}).
		Where(squirrel.Gt{"due_date": from}).
		Where(squirrel.LtOrEq{"due_date": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build due quests query: %w", err)
	}

	var rows []Quest
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select due quests: %w", err)
	}

	quests := make([]*model.Quest, 0, len(rows))
	for i := range rows {
		quests = append(quests, rows[i].toModel())
	}
	return quests, nil
}

// ListAssignedDueBetween returns the user's open quests due within [from, to).
func (r *Repository) ListAssignedDueBetween(ctx context.Context, userID string, from, to time.Time) ([]*model.Quest, error) {
	query, args, err := squirrel.
		Select(questColumns...).
		From("quests").
		Where(squirrel.Eq{"assigned_to": userID}).
		Where(squirrel.NotEq{"status": []string{
			string(model.StatusCompleted),
			string(model.StatusApproved),
		}}).
		Where(squirrel.GtOrEq{"due_date": from}).
		Where(squirrel.Lt{"due_date": to}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assigned quests query: %w", err)
	}

	var rows []Quest
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select assigned quests: %w", err)
	}

	quests := make([]*model.Quest, 0, len(rows))
	for i := range rows {
		quests = append(quests, rows[i].toModel())
	}
	return quests, nil
}

// MarkNotified stamps the quest's deadline-notification marker. The marker is
// written once for the quest's lifetime and never cleared.
func (r *Repository) MarkNotified(ctx context.Context, questID string, at time.Time) error {
	query, args, err := squirrel.
		Update("quests").
		Set("last_notified_at", at).
		Where(squirrel.Eq{"id": questID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build notified update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update quest: %w", err)
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
