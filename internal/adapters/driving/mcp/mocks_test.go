package mcp

import (
	"context"

	"github.com/rfcdex/rfcdex/internal/core/domain"
	"github.com/rfcdex/rfcdex/internal/core/ports/driving"
)

// mockRetrieval is a mock implementation of driving.RetrievalService.
type mockRetrieval struct {
	record    *domain.Record
	hits      []domain.SearchHit
	bookmarks []domain.Record
	err       error

	lastLimit int
}

var _ driving.RetrievalService = (*mockRetrieval)(nil)

func (m *mockRetrieval) ByNumber(_ context.Context, _ int) (*domain.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.record == nil {
		return nil, domain.ErrNotFound
	}
	return m.record, nil
}

func (m *mockRetrieval) ByKeyword(_ context.Context, _ string, limit int) ([]domain.SearchHit, error) {
	m.lastLimit = limit
	return m.hits, m.err
}

func (m *mockRetrieval) Bookmarked(_ context.Context) ([]domain.Record, error) {
	return m.bookmarks, m.err
}

func (m *mockRetrieval) Latest(_ context.Context, _ int) ([]domain.Record, error) {
	return nil, m.err
}

func (m *mockRetrieval) SetBookmark(_ context.Context, _ int, _ bool) error {
	return m.err
}

func (m *mockRetrieval) Count(_ context.Context) (int, error) {
	return len(m.bookmarks), m.err
}
