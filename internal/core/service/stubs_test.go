package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("u%d", r.nextID)
	}
	clone := *u
	r.users[u.ID] = &clone
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	return r.add(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

type stubTodoRepo struct {
	todos  map[string]*domain.Todo
	nextID int
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[string]*domain.Todo)}
}

func (r *stubTodoRepo) add(t *domain.Todo) *domain.Todo {
	if t.ID == "" {
		r.nextID++
		t.ID = fmt.Sprintf("t%d", r.nextID)
	}
	clone := *t
	r.todos[t.ID] = &clone
	return t
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	return r.add(todo), nil
}

func (r *stubTodoRepo) FindByID(_ context.Context, id string) (*domain.Todo, error) {
	t, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTodoRepo) List(_ context.Context, page, size int) ([]domain.Todo, int64, error) {
	all := make([]domain.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		all = append(all, *t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ModifiedAt.After(all[j].ModifiedAt) })

	start := (page - 1) * size
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

type stubManagerRepo struct {
	managers map[string]*domain.Manager
	nextID   int
}

func newStubManagerRepo() *stubManagerRepo {
	return &stubManagerRepo{managers: make(map[string]*domain.Manager)}
}

func (r *stubManagerRepo) add(m *domain.Manager) *domain.Manager {
	if m.ID == "" {
		r.nextID++
		m.ID = fmt.Sprintf("m%d", r.nextID)
	}
	clone := *m
	r.managers[m.ID] = &clone
	return m
}

func (r *stubManagerRepo) Create(_ context.Context, manager *domain.Manager) (*domain.Manager, error) {
	return r.add(manager), nil
}

func (r *stubManagerRepo) FindByID(_ context.Context, id string) (*domain.Manager, error) {
	m, ok := r.managers[id]
	if !ok {
		return nil, domain.ErrManagerNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubManagerRepo) ListByTodo(_ context.Context, todoID string) ([]domain.Manager, error) {
	var out []domain.Manager
	for _, m := range r.managers {
		if m.TodoID == todoID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubManagerRepo) ExistsByTodoAndUser(_ context.Context, todoID, userID string) (bool, error) {
	for _, m := range r.managers {
		if m.TodoID == todoID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubManagerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.managers[id]; !ok {
		return domain.ErrManagerNotFound
	}
	delete(r.managers, id)
	return nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment.ID == "" {
		r.nextID++
		comment.ID = fmt.Sprintf("c%d", r.nextID)
	}
	clone := *comment
	r.comments[comment.ID] = &clone
	return comment, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) ListByTodo(_ context.Context, todoID string) ([]domain.Comment, error) {
	var out []domain.Comment
	for _, c := range r.comments {
		if c.TodoID == todoID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

type stubWeather struct {
	value string
	err   error
}

func (w *stubWeather) TodayWeather(context.Context) (string, error) {
	return w.value, w.err
}
