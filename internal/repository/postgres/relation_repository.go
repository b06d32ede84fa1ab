package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/repository"
)

type relationRepository struct {
	db *sqlx.DB
}

func NewRelationRepository(db *sqlx.DB) repository.RelationRepository {
	return &relationRepository{db: db}
}

const relationColumns = `
	id, mentor_id, mentee_id, action_user_id, state,
	creation_date, start_date, end_date, accept_date, notes, tasks_list_id
`

func (r *relationRepository) GetByID(ctx context.Context, id int64) (*domain.MentorshipRelation, error) {
	query := `SELECT ` + relationColumns + ` FROM mentorship_relations WHERE id = $1`
	if inTx(ctx) {
		query += ` FOR UPDATE`
	}

	var relation domain.MentorshipRelation
	err := conn(ctx, r.db).GetContext(ctx, &relation, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRelationNotFound
		}
		return nil, err
	}
	return &relation, nil
}

func (r *relationRepository) Create(ctx context.Context, relation *domain.MentorshipRelation) error {
	query := `
		INSERT INTO mentorship_relations
			(mentor_id, mentee_id, action_user_id, state,
			 creation_date, start_date, end_date, accept_date, notes, tasks_list_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		relation.MentorID, relation.MenteeID, relation.ActionUserID, relation.State,
		relation.CreationDate, relation.StartDate, relation.EndDate,
		relation.AcceptDate, relation.Notes, relation.TasksListID,
	).Scan(&relation.ID)
}

func (r *relationRepository) Update(ctx context.Context, relation *domain.MentorshipRelation) error {
	query := `
		UPDATE mentorship_relations
		SET mentor_id = $1, mentee_id = $2, action_user_id = $3, state = $4,
		    start_date = $5, end_date = $6, accept_date = $7, notes = $8
		WHERE id = $9
	`
	result, err := conn(ctx, r.db).ExecContext(ctx, query,
		relation.MentorID, relation.MenteeID, relation.ActionUserID, relation.State,
		relation.StartDate, relation.EndDate, relation.AcceptDate, relation.Notes,
		relation.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRelationNotFound
	}
	return nil
}

func (r *relationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.MentorshipRelation, error) {
	query := `
		SELECT ` + relationColumns + `
		FROM mentorship_relations
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY creation_date DESC
	`
	var relations []*domain.MentorshipRelation
	err := conn(ctx, r.db).SelectContext(ctx, &relations, query, userID)
	return relations, err
}
