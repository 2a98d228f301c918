package repository

import (
	"context"
	"fmt"
	"time"

	"questnotifier/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

const excludedDateLayout = "2006-01-02"

type QuestTemplate struct {
	ID               string         `db:"id"`
	Title            string         `db:"title"`
	Category         string         `db:"category"`
	CreatedBy        string         `db:"created_by"`
	AssignedTo       *string        `db:"assigned_to"`
	StartDate        time.Time      `db:"start_date"`
	RecurringEndDate *time.Time     `db:"recurring_end_date"`
	ExcludedDates    pq.StringArray `db:"excluded_dates"`
	RepeatDays       pq.Int64Array  `db:"repeat_days"`
	RecurringDueTime *time.Time     `db:"recurring_due_time"`
	CreatedAt        time.Time      `db:"created_at"`
}

var templateColumns = []string{
	"id", "title", "category", "created_by", "assigned_to", "start_date",
	"recurring_end_date", "excluded_dates", "repeat_days", "recurring_due_time",
	"created_at",
}

func (t *QuestTemplate) toModel() (*model.QuestTemplate, error) {
	excluded := make([]time.Time, 0, len(t.ExcludedDates))
	for _, raw := range t.ExcludedDates {
		d, err := time.Parse(excludedDateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse excluded date %q: %w", raw, err)
		}
		excluded = append(excluded, d)
	}

	days := make([]int, 0, len(t.RepeatDays))
	for _, d := range t.RepeatDays {
		days = append(days, int(d))
	}

	return &model.QuestTemplate{
		ID:               t.ID,
		Title:            t.Title,
		Category:         model.Category(t.Category),
		CreatedBy:        t.CreatedBy,
		AssignedTo:       t.AssignedTo,
		StartDate:        t.StartDate,
		RecurringEndDate: t.RecurringEndDate,
		ExcludedDates:    excluded,
		RepeatDays:       days,
		RecurringDueTime: t.RecurringDueTime,
		CreatedAt:        t.CreatedAt,
	}, nil
}

func (r *Repository) CreateTemplate(ctx context.Context, template *model.QuestTemplate) error {
	excluded := make(pq.StringArray, 0, len(template.ExcludedDates))
	for _, d := range template.ExcludedDates {
		excluded = append(excluded, d.Format(excludedDateLayout))
	}

	days := make(pq.Int64Array, 0, len(template.RepeatDays))
	for _, d := range template.RepeatDays {
		days = append(days, int64(d))
	}

	query, args, err := squirrel.
		Insert("quest_templates").
		SetMap(map[string]interface{}{
			"id":                 template.ID,
			"title":              template.Title,
			"category":           string(template.Category),
			"created_by":         template.CreatedBy,
			"assigned_to":        template.AssignedTo,
			"start_date":         template.StartDate,
			"recurring_end_date": template.RecurringEndDate,
			"excluded_dates":     excluded,
			"repeat_days":        days,
			"recurring_due_time": template.RecurringDueTime,
			"created_at":         template.CreatedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build template insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert template: %w", err)
	}

	return nil
}

// ListAssigned returns every template that has an assignee.
func (r *Repository) ListAssigned(ctx context.Context) ([]*model.QuestTemplate, error) {
	query, args, err := squirrel.
		Select(templateColumns...).
		From("quest_templates").
		Where("assigned_to IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build templates query: %w", err)
	}

	var rows []QuestTemplate
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select templates: %w", err)
	}

	return templatesToModel(rows)
}

// ListAssignedTo returns the templates assigned to one user.
func (r *Repository) ListAssignedTo(ctx context.Context, userID string) ([]*model.QuestTemplate, error) {
	query, args, err := squirrel.
		Select(templateColumns...).
		From("quest_templates").
		Where(squirrel.Eq{"assigned_to": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user templates query: %w", err)
	}

	var rows []QuestTemplate
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select user templates: %w", err)
	}

	return templatesToModel(rows)
}

func templatesToModel(rows []QuestTemplate) ([]*model.QuestTemplate, error) {
	templates := make([]*model.QuestTemplate, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}
