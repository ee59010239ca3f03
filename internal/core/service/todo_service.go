package service

import (
	"context"
	"time"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

// TodoService implements todo creation, lookup and listing.
type TodoService struct {
	todos    ports.TodoRepository
	managers ports.ManagerRepository
	weather  ports.WeatherProvider
}

func NewTodoService(todos ports.TodoRepository, managers ports.ManagerRepository, weather ports.WeatherProvider) *TodoService {
	return &TodoService{todos: todos, managers: managers, weather: weather}
}

// Create persists a todo owned by the principal. Today's weather is captured
// once at creation time, and the owner is registered as a manager so they
// can comment on their own todo.
func (s *TodoService) Create(ctx context.Context, p domain.Principal, in ports.TodoSaveInput) (*domain.Todo, error) {
	weather, err := s.weather.TodayWeather(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.todos.Create(ctx, &domain.Todo{
		Title:      in.Title,
		Contents:   in.Contents,
		Weather:    weather,
		OwnerID:    p.UserID,
		CreatedAt:  now,
		ModifiedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.managers.Create(ctx, &domain.Manager{
		TodoID:    created.ID,
		UserID:    p.UserID,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *TodoService) Get(ctx context.Context, id string) (*domain.Todo, error) {
	return s.todos.FindByID(ctx, id)
}

func (s *TodoService) List(ctx context.Context, page, size int) ([]domain.Todo, int64, error) {
	if page < 1 {
		page = defaultPage
	}
	if size < 1 || size > maxSize {
		size = defaultSize
	}
	return s.todos.List(ctx, page, size)
}
