package repository

import (
	"context"
	"fmt"
	"strings"

	"gameverse-api/internal/domain"
	"gameverse-api/pkg/sheetstore"
)

// UserHeaders is the fixed column order of the Users table.
var UserHeaders = []string{
	"id", "email", "password", "name", "role", "team_id", "college", "created_at",
}

type userRepository struct {
	store sheetstore.Store
}

// NewUserRepository creates a user repository over the given store.
func NewUserRepository(store sheetstore.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) getAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.store.ReadAll(ctx, sheetstore.TableUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if len(rows) < 2 {
		return []domain.User{}, nil
	}

	users := make([]domain.User, 0, len(rows)-1)
	for _, row := range rows[1:] {
		users = append(users, parseUserRow(row))
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.getAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.getAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	row := []string{
		user.ID,
		user.Email,
		user.Password,
		user.Name,
		string(user.Role),
		user.TeamID,
		user.College,
		user.CreatedAt,
	}
	if err := r.store.Append(ctx, sheetstore.TableUsers, [][]string{row}); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func parseUserRow(row []string) domain.User {
	role := domain.Role(sheetstore.Cell(row, 4))
	if role == "" {
		role = domain.RolePlayer
	}

	return domain.User{
		ID:        sheetstore.Cell(row, 0),
		Email:     sheetstore.Cell(row, 1),
		Password:  sheetstore.Cell(row, 2),
		Name:      sheetstore.Cell(row, 3),
		Role:      role,
		TeamID:    sheetstore.Cell(row, 5),
		College:   sheetstore.Cell(row, 6),
		CreatedAt: sheetstore.Cell(row, 7),
	}
}
