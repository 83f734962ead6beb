package serviceImp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/baobabstack-code/farm-management-system-sub000/entities"
	repo "github.com/baobabstack-code/farm-management-system-sub000/pkg/task/repository"
	"github.com/baobabstack-code/farm-management-system-sub000/pkg/task/service"
)

type taskSvc struct{ r repo.TaskRepository }

func NewTaskService(r repo.TaskRepository) service.TaskService { return &taskSvc{r} }

func (s *taskSvc) Create(ctx context.Context, t *entities.Task) (*entities.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Priority == "" {
		t.Priority = entities.PriorityMedium
	}
	if t.Status == "" {
		t.Status = entities.TaskPending
	}
	switch {
	case t.UserID == "":
		return nil, fmt.Errorf("%w: owner is required", service.ErrInvalidTask)
	case t.Title == "":
		return nil, fmt.Errorf("%w: title is required", service.ErrInvalidTask)
	case t.DueDate.IsZero():
		return nil, fmt.Errorf("%w: due_date is required", service.ErrInvalidTask)
	case !validPriority(t.Priority):
		return nil, fmt.Errorf("%w: unknown priority %q", service.ErrInvalidTask, t.Priority)
	case !validStatus(t.Status):
		return nil, fmt.Errorf("%w: unknown status %q", service.ErrInvalidTask, t.Status)
	}
	t.DueDate = t.DueDate.UTC()
	if err := s.r.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskSvc) List(ctx context.Context, uid string, from, to *time.Time, status entities.TaskStatus) ([]entities.Task, error) {
	if status != "" && !validStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", service.ErrInvalidTask, status)
	}
	return s.r.List(ctx, uid, from, to, status)
}

func (s *taskSvc) Patch(ctx context.Context, id, uid string, status entities.TaskStatus) error {
	if !validStatus(status) {
		return fmt.Errorf("%w: unknown status %q", service.ErrInvalidTask, status)
	}
	return s.r.PatchStatus(ctx, id, uid, status)
}

func validStatus(s entities.TaskStatus) bool {
	switch s {
	case entities.TaskPending, entities.TaskInProgress, entities.TaskCompleted, entities.TaskCancelled:
		return true
	}
	return false
}

func validPriority(p entities.TaskPriority) bool {
	switch p {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh, entities.PriorityUrgent:
		return true
	}
	return false
}
