package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

func TestRetrieval_ByNumber(t *testing.T) {
	ctx := context.Background()
	corpus := newMockCorpus()
	require.NoError(t, corpus.Insert(ctx, &domain.Record{Number: 7540, Title: "7540 HTTP/2", Body: "body"}))

	svc := NewRetrieval(corpus, &mockIndex{}, false)

	t.Run("found", func(t *testing.T) {
		rec, err := svc.ByNumber(ctx, 7540)
		require.NoError(t, err)
		assert.Equal(t, "7540 HTTP/2", rec.Title)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.ByNumber(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid numbers rejected before the store", func(t *testing.T) {
		for _, n := range []int{0, -1, -7540} {
			_, err := svc.ByNumber(ctx, n)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "number %d", n)
			assert.NotErrorIs(t, err, domain.ErrNotFound)
		}
	})
}

func TestRetrieval_ByKeyword(t *testing.T) {
	ctx := context.Background()

	t.Run("phrase is sanitised before the index", func(t *testing.T) {
		index := &mockIndex{hits: []domain.SearchHit{{Number: 7540, Title: "7540 HTTP/2", Rank: -1.5}}}
		svc := NewRetrieval(newMockCorpus(), index, false)

		hits, err := svc.ByKeyword(ctx, `http/2 AND "hpack"`, 10)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "http 2 AND  hpack ", index.lastQuery)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		svc := NewRetrieval(newMockCorpus(), &mockIndex{}, false)
		hits, err := svc.ByKeyword(ctx, "wolf", 10)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("all-punctuation phrase short-circuits", func(t *testing.T) {
		index := &mockIndex{searchErr: domain.ErrIndexUnavailable}
		svc := NewRetrieval(newMockCorpus(), index, false)

		hits, err := svc.ByKeyword(ctx, "?!...", 10)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("index failure surfaces as IndexUnavailable", func(t *testing.T) {
		index := &mockIndex{searchErr: domain.ErrIndexUnavailable}
		svc := NewRetrieval(newMockCorpus(), index, false)

		_, err := svc.ByKeyword(ctx, "network", 10)
		assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
	})
}

func TestRetrieval_Bookmarks(t *testing.T) {
	ctx := context.Background()

	t.Run("set and list", func(t *testing.T) {
		corpus := newMockCorpus()
		require.NoError(t, corpus.Insert(ctx, &domain.Record{Number: 8305, Title: "8305 Happy Eyeballs"}))
		svc := NewRetrieval(corpus, &mockIndex{}, false)

		require.NoError(t, svc.SetBookmark(ctx, 8305, true))
		marked, err := svc.Bookmarked(ctx)
		require.NoError(t, err)
		require.Len(t, marked, 1)
		assert.Equal(t, 8305, marked[0].Number)
	})

	t.Run("toggle idempotence", func(t *testing.T) {
		corpus := newMockCorpus()
		require.NoError(t, corpus.Insert(ctx, &domain.Record{Number: 8305}))
		svc := NewRetrieval(corpus, &mockIndex{}, false)

		require.NoError(t, svc.SetBookmark(ctx, 8305, true))
		require.NoError(t, svc.SetBookmark(ctx, 8305, true))

		marked, err := svc.Bookmarked(ctx)
		require.NoError(t, err)
		assert.Len(t, marked, 1)
	})

	t.Run("unknown number honours createOnBookmark", func(t *testing.T) {
		corpus := newMockCorpus()
		strict := NewRetrieval(corpus, &mockIndex{}, false)
		assert.ErrorIs(t, strict.SetBookmark(ctx, 9999, true), domain.ErrNotFound)

		legacy := NewRetrieval(corpus, &mockIndex{}, true)
		require.NoError(t, legacy.SetBookmark(ctx, 9999, true))
		rec, err := corpus.Get(ctx, 9999)
		require.NoError(t, err)
		assert.True(t, rec.Bookmarked)
		assert.Empty(t, rec.Body)
	})

	t.Run("invalid number rejected", func(t *testing.T) {
		svc := NewRetrieval(newMockCorpus(), &mockIndex{}, true)
		assert.ErrorIs(t, svc.SetBookmark(ctx, 0, true), domain.ErrInvalidInput)
	})
}

func TestRetrieval_Latest(t *testing.T) {
	ctx := context.Background()
	corpus := newMockCorpus()
	require.NoError(t, corpus.Insert(ctx, &domain.Record{Number: 7540}))
	svc := NewRetrieval(corpus, &mockIndex{}, false)

	recs, err := svc.Latest(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = svc.Latest(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
