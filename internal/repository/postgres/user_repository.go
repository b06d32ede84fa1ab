package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, available_to_mentor, need_mentoring, created_at, updated_at
		FROM users WHERE id = $1
	`
	// Inside a workflow transaction the user row is locked so that two
	// concurrent accepts cannot both pass the already-in-relation check.
	if inTx(ctx) {
		query += ` FOR UPDATE`
	}

	var user domain.User
	err := conn(ctx, r.db).GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, available_to_mentor, need_mentoring)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return conn(ctx, r.db).QueryRowContext(ctx, query,
		user.Name, user.Email, user.AvailableToMentor, user.NeedMentoring,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, available_to_mentor = $3, need_mentoring = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at
	`
	err := conn(ctx, r.db).QueryRowContext(ctx, query,
		user.Name, user.Email, user.AvailableToMentor, user.NeedMentoring, user.ID,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	return err
}
