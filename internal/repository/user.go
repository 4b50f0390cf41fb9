package repository

import (
	"context"
	"errors"

	"github.com/UtkarshSachan777/Glow-AI/internal/database"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// ErrDuplicateEmail indicates the email is already registered
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user record
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			email: $email,
			password_hash: $password_hash,
			display_name: $display_name,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"display_name":  user.DisplayName,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	records := unwrapResults(result)
	if len(records) > 0 {
		if data, ok := records[0].(map[string]interface{}); ok {
			user.ID = convertSurrealID(data["id"])
			user.CreatedOn = getTime(data, "created_on")
		}
	}
	return nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseUserResult(result)
}

// GetByID retrieves a user by ID. Returns (nil, nil) when not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseUserResult(result)
}

// TouchLastLogin records a successful login
func (r *UserRepository) TouchLastLogin(ctx context.Context, id string) error {
	query := `UPDATE type::record($id) SET last_login_on = time::now()`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

func (r *UserRepository) parseUserResult(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	user := &model.User{
		ID:           convertSurrealID(data["id"]),
		Email:        getString(data, "email"),
		PasswordHash: getString(data, "password_hash"),
		DisplayName:  getStringPtr(data, "display_name"),
		CreatedOn:    getTime(data, "created_on"),
	}
	if t := getTime(data, "last_login_on"); !t.IsZero() {
		user.LastLoginOn = &t
	}

	return user, nil
}
