package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfcdex/rfcdex/internal/core/domain"
)

func TestScheduler_IsStale(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		want bool
	}{
		{name: "never updated", last: time.Time{}, want: true},
		{name: "eight days old", last: now.Add(-8 * 24 * time.Hour), want: true},
		{name: "six days old", last: now.Add(-6 * 24 * time.Hour), want: false},
		{name: "exactly seven days", last: now.Add(-domain.StalenessWindow), want: false},
		{name: "just past seven days", last: now.Add(-domain.StalenessWindow - time.Second), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &mockSyncState{last: tt.last}
			sched := NewScheduler(state, nil, &mockFetcher{}, nil)

			stale, err := sched.IsStale(ctx, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stale)
		})
	}
}

func TestScheduler_IsStale_StateError(t *testing.T) {
	state := &mockSyncState{readErr: assert.AnError}
	sched := NewScheduler(state, nil, &mockFetcher{}, nil)

	_, err := sched.IsStale(context.Background(), time.Now())
	require.ErrorIs(t, err, assert.AnError)
}

func TestScheduler_MarkUpdated(t *testing.T) {
	ctx := context.Background()
	state := &mockSyncState{}
	sched := NewScheduler(state, nil, &mockFetcher{}, nil)

	now := time.Now().UTC()
	require.NoError(t, sched.MarkUpdated(ctx, now))

	last, err := state.LastUpdated(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, last)

	stale, err := sched.IsStale(ctx, now)
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestScheduler_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("successful refresh ingests and marks updated", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "rfc7540.txt"),
			[]byte("Category: Standards Track\n\nHTTP/2."), 0600))

		state := &mockSyncState{}
		runs := &mockRuns{}
		corpus := newMockCorpus()
		fetcher := &mockFetcher{
			corpusDir: dir,
			listing:   []string{"7540 Hypertext Transfer Protocol Version 2 (HTTP/2)."},
		}
		sched := NewScheduler(state, runs, fetcher, NewIngest(corpus))

		run, err := sched.Refresh(ctx)
		require.NoError(t, err)
		assert.True(t, run.Succeeded())
		assert.NotEmpty(t, run.ID)
		assert.Equal(t, 1, run.Documents)
		assert.Equal(t, 0, run.Skipped)

		last, err := state.LastUpdated(ctx)
		require.NoError(t, err)
		assert.False(t, last.IsZero())

		require.Len(t, runs.runs, 1)
		assert.Equal(t, run.ID, runs.runs[0].ID)
	})

	t.Run("fetch failure propagates and is recorded", func(t *testing.T) {
		runs := &mockRuns{}
		fetcher := &mockFetcher{fetchErr: assert.AnError}
		sched := NewScheduler(&mockSyncState{}, runs, fetcher, NewIngest(newMockCorpus()))

		run, err := sched.Refresh(ctx)
		require.ErrorIs(t, err, assert.AnError)
		assert.False(t, run.Succeeded())

		require.Len(t, runs.runs, 1)
		assert.NotEmpty(t, runs.runs[0].Error)
	})

	t.Run("failed refresh does not move the baseline", func(t *testing.T) {
		state := &mockSyncState{}
		fetcher := &mockFetcher{listingErr: assert.AnError, corpusDir: t.TempDir()}
		sched := NewScheduler(state, nil, fetcher, NewIngest(newMockCorpus()))

		_, err := sched.Refresh(ctx)
		require.Error(t, err)

		last, err := state.LastUpdated(ctx)
		require.NoError(t, err)
		assert.True(t, last.IsZero())
	})
}
