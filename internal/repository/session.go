package repository

import (
	"context"
	"errors"

	"github.com/UtkarshSachan777/Glow-AI/internal/database"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// SessionRepository handles session data access
type SessionRepository struct {
	db database.Database
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.Database) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session record
func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	query := `
		CREATE session CONTENT {
			token_hash: $token_hash,
			user_id: $user_id,
			expires_on: $expires_on,
			created_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"token_hash": session.TokenHash,
		"user_id":    session.UserID,
		"expires_on": session.ExpiresOn,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapResults(result)
	if len(records) > 0 {
		if data, ok := records[0].(map[string]interface{}); ok {
			session.ID = convertSurrealID(data["id"])
			session.CreatedOn = getTime(data, "created_on")
		}
	}
	return nil
}

// GetByTokenHash retrieves a session by its token hash.
// Returns (nil, nil) when not found.
func (r *SessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	query := `SELECT * FROM session WHERE token_hash = $token_hash`
	vars := map[string]interface{}{"token_hash": tokenHash}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseSessionResult(result)
}

// Delete removes a session record
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// DeleteExpired removes all sessions past their expiry
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	query := `DELETE session WHERE expires_on < time::now()`
	return r.db.Execute(ctx, query, nil)
}

func (r *SessionRepository) parseSessionResult(result interface{}) (*model.Session, error) {
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

	session := &model.Session{
		ID:        convertSurrealID(data["id"]),
		TokenHash: getString(data, "token_hash"),
		ExpiresOn: getTime(data, "expires_on"),
		CreatedOn: getTime(data, "created_on"),
	}
	if userID, ok := data["user_id"]; ok && userID != nil {
		id := convertSurrealID(userID)
		if id != "" {
			session.UserID = &id
		}
	}

	return session, nil
}
