package service

import (
	"context"
	"errors"
	"testing"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
)

type mockSeedStore struct {
	count     int
	countErr  error
	createErr error
	created   []*model.Product
}

func (m *mockSeedStore) Count(ctx context.Context) (int, error) {
	return m.count, m.countErr
}

func (m *mockSeedStore) Create(ctx context.Context, product *model.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, product)
	return nil
}

func TestSeedCatalog_SeedsEmptyCatalog(t *testing.T) {
	store := &mockSeedStore{}

	if err := SeedCatalog(context.Background(), store); err != nil {
		t.Fatalf("SeedCatalog failed: %v", err)
	}

	if len(store.created) != len(launchCatalog) {
		t.Errorf("expected %d products seeded, got %d", len(launchCatalog), len(store.created))
	}
}

func TestSeedCatalog_SkipsNonEmptyCatalog(t *testing.T) {
	store := &mockSeedStore{count: 3}

	if err := SeedCatalog(context.Background(), store); err != nil {
		t.Fatalf("SeedCatalog failed: %v", err)
	}

	if len(store.created) != 0 {
		t.Errorf("expected no seeding into a non-empty catalog, got %d creates", len(store.created))
	}
}

func TestSeedCatalog_PropagatesErrors(t *testing.T) {
	if err := SeedCatalog(context.Background(), &mockSeedStore{countErr: errors.New("down")}); err == nil {
		t.Error("expected count error to propagate")
	}
	if err := SeedCatalog(context.Background(), &mockSeedStore{createErr: errors.New("down")}); err == nil {
		t.Error("expected create error to propagate")
	}
}
