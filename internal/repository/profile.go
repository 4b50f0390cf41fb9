package repository

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/UtkarshSachan777/Glow-AI/internal/database"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

// ProfileCacheSize caps the in-memory profile cache.
const ProfileCacheSize = 1000

// ProfileRepository persists computed personalization profiles, keyed by
// session/user identity. Writes are last-write-wins upserts; a small LRU
// cache fronts the database so repeated reads within a session avoid a
// round trip. The cache carries no durability guarantees.
type ProfileRepository struct {
	db    database.Database
	cache *lru.Cache[string, *model.PersonalizedProfile]
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db database.Database) (*ProfileRepository, error) {
	cache, err := lru.New[string, *model.PersonalizedProfile](ProfileCacheSize)
	if err != nil {
		return nil, err
	}
	return &ProfileRepository{db: db, cache: cache}, nil
}

// Save upserts the profile for the given identity key, superseding any prior
// profile (no versioning, no merge).
func (r *ProfileRepository) Save(ctx context.Context, key string, profile *model.PersonalizedProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	query := `
		UPSERT type::thing('profile', $key) CONTENT {
			profile_key: $key,
			data: $data,
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"key":  key,
		"data": string(data),
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return err
	}

	r.cache.Add(key, profile)
	return nil
}

// Load retrieves the last persisted profile for the given identity key.
// Returns (nil, nil) when no profile has been computed yet.
func (r *ProfileRepository) Load(ctx context.Context, key string) (*model.PersonalizedProfile, error) {
	if profile, ok := r.cache.Get(key); ok {
		return profile, nil
	}

	query := `SELECT data FROM type::thing('profile', $key)`
	vars := map[string]interface{}{"key": key}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	raw := getString(data, "data")
	if raw == "" {
		return nil, nil
	}

	var profile model.PersonalizedProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, err
	}

	r.cache.Add(key, &profile)
	return &profile, nil
}
