package repository

import (
	"context"

	"github.com/progmatch/mentorship-backend/internal/domain"
)

type TasksListRepository interface {
	Create(ctx context.Context, list *domain.TasksList) error
}
