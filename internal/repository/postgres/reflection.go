package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

var _ model.ReflectionStore = (*ReflectionRepository)(nil)

const reflectionColumns = `id, user_id, prompt, response, week_start_date, created_at`

type ReflectionRepository struct {
	db *Connection
}

func NewReflectionRepository(db *Connection) *ReflectionRepository {
	return &ReflectionRepository{
		db: db,
	}
}

func (r *ReflectionRepository) GetByWeek(ctx context.Context, userID string, weekStart time.Time) (model.WeeklyReflection, error) {
	query := `SELECT ` + reflectionColumns + `
		FROM weekly_reflections
		WHERE user_id = $1 AND week_start_date = $2`

	reflection, err := scanReflection(r.db.QueryRow(ctx, query, userID, weekStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.WeeklyReflection{}, model.ErrNotFound
		}
		return model.WeeklyReflection{}, fmt.Errorf("failed to get reflection by week: %w", err)
	}

	return reflection, nil
}

func (r *ReflectionRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (model.WeeklyReflection, error) {
	query := `SELECT ` + reflectionColumns + `
		FROM weekly_reflections
		WHERE id = $1 AND user_id = $2`

	reflection, err := scanReflection(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.WeeklyReflection{}, model.ErrNotFound
		}
		return model.WeeklyReflection{}, fmt.Errorf("failed to get reflection by id: %w", err)
	}

	return reflection, nil
}

// Create inserts a reflection. A second reflection for the same user and week
// yields model.ErrConflict.
func (r *ReflectionRepository) Create(ctx context.Context, reflection model.WeeklyReflection) (model.WeeklyReflection, error) {
	query := `INSERT INTO weekly_reflections (id, user_id, prompt, response, week_start_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + reflectionColumns

	saved, err := scanReflection(r.db.QueryRow(ctx, query,
		reflection.ID, reflection.UserID, reflection.Prompt, reflection.Response, reflection.WeekStartDate,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.WeeklyReflection{}, model.ErrConflict
		}
		return model.WeeklyReflection{}, fmt.Errorf("failed to create reflection: %w", err)
	}

	return saved, nil
}

func (r *ReflectionRepository) UpdateResponse(ctx context.Context, userID string, id uuid.UUID, response *string) error {
	const query = `UPDATE weekly_reflections SET response = $3 WHERE id = $1 AND user_id = $2`

	cmd, err := r.db.Exec(ctx, query, id, userID, response)
	if err != nil {
		return fmt.Errorf("failed to update reflection response: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *ReflectionRepository) ListByUser(ctx context.Context, userID string) ([]model.WeeklyReflection, error) {
	query := `SELECT ` + reflectionColumns + `
		FROM weekly_reflections
		WHERE user_id = $1
		ORDER BY week_start_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reflections: %w", err)
	}
	defer rows.Close()

	var reflections []model.WeeklyReflection
	for rows.Next() {
		reflection, err := scanReflection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reflection: %w", err)
		}
		reflections = append(reflections, reflection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reflections: %w", err)
	}

	return reflections, nil
}

func scanReflection(row pgx.Row) (model.WeeklyReflection, error) {
	var reflection model.WeeklyReflection
	err := row.Scan(
		&reflection.ID, &reflection.UserID, &reflection.Prompt, &reflection.Response,
		&reflection.WeekStartDate, &reflection.CreatedAt,
	)
	return reflection, err
}
