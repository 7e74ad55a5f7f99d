package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/NapAndCommit/still-figuring-it-out/internal/model"
)

var _ model.LifeAreaStore = (*LifeAreaRepository)(nil)

type LifeAreaRepository struct {
	db *Connection
}

func NewLifeAreaRepository(db *Connection) *LifeAreaRepository {
	return &LifeAreaRepository{
		db: db,
	}
}

func (r *LifeAreaRepository) ListByUser(ctx context.Context, userID string) ([]model.LifeArea, error) {
	const query = `
		SELECT id, user_id, name, current_state, confidence_level, top_question, helper, updated_at
		FROM life_areas
		WHERE user_id = $1
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list life areas: %w", err)
	}
	defer rows.Close()

	var areas []model.LifeArea
	for rows.Next() {
		var (
			area                              model.LifeArea
			currentState, topQuestion, helper *string
			confidence                        *int16
		)
		err := rows.Scan(
			&area.ID, &area.UserID, &area.Name, &currentState, &confidence,
			&topQuestion, &helper, &area.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan life area: %w", err)
		}
		area.CurrentState = deref(currentState)
		area.TopQuestion = deref(topQuestion)
		area.Helper = deref(helper)
		area.Confidence = model.ConfidenceFromOrdinal(confidence)
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list life areas: %w", err)
	}

	return areas, nil
}

// InsertMissing inserts the areas whose name the user does not have yet and
// returns how many were inserted. Existing rows are never touched.
func (r *LifeAreaRepository) InsertMissing(ctx context.Context, userID string, areas []model.LifeArea) (int, error) {
	const query = `
		INSERT INTO life_areas (id, user_id, name, current_state, confidence_level, top_question, helper, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (user_id, name) DO NOTHING`

	if len(areas) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, area := range areas {
		id := area.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		batch.Queue(query,
			id, userID, area.Name, nullIfEmpty(area.CurrentState), area.Confidence.Ordinal(),
			nullIfEmpty(area.TopQuestion), nullIfEmpty(area.Helper),
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range areas {
		cmd, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert life area: %w", err)
		}
		inserted += int(cmd.RowsAffected())
	}

	return inserted, nil
}

func (r *LifeAreaRepository) Update(ctx context.Context, userID string, area model.LifeArea) error {
	const query = `
		UPDATE life_areas
		SET name = $3, current_state = $4, confidence_level = $5, top_question = $6, helper = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`

	cmd, err := r.db.Exec(ctx, query,
		area.ID, userID, area.Name, nullIfEmpty(area.CurrentState), area.Confidence.Ordinal(),
		nullIfEmpty(area.TopQuestion), nullIfEmpty(area.Helper),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrConflict
		}
		return fmt.Errorf("failed to update life area: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
