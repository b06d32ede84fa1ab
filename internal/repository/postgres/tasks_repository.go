package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/repository"
)

type tasksListRepository struct {
	db *sqlx.DB
}

func NewTasksListRepository(db *sqlx.DB) repository.TasksListRepository {
	return &tasksListRepository{db: db}
}

func (r *tasksListRepository) Create(ctx context.Context, list *domain.TasksList) error {
	query := `INSERT INTO tasks_lists DEFAULT VALUES RETURNING id, created_at`
	return conn(ctx, r.db).QueryRowContext(ctx, query).Scan(&list.ID, &list.CreatedAt)
}
