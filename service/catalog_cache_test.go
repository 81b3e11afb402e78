package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estudio-luma-me/models"
)

func newTestCache(projects []models.Project, logos []models.Logo) (*CatalogCache, *fakeProjectRepo, *fakeLogoRepo, *fakeClock) {
	projectRepo := &fakeProjectRepo{projects: projects}
	logoRepo := &fakeLogoRepo{logos: logos}
	clock := newFakeClock()
	cache := NewCatalogCache(projectRepo, logoRepo, DefaultCatalogTTL, clock.Now)
	return cache, projectRepo, logoRepo, clock
}

func TestCacheFetchesOnceWithinTTL(t *testing.T) {
	cache, projectRepo, logoRepo, clock := newTestCache(
		[]models.Project{validProject("p1", 100, nil)},
		[]models.Logo{{ID: "1", Name: "Uno", ImageURL: "https://img.example/1.png", CreatedAt: 50}},
	)
	ctx := context.Background()

	first, _ := cache.Collections(ctx)
	require.Len(t, first, 1)
	assert.Equal(t, 1, projectRepo.getAllCalls)
	assert.Equal(t, 1, logoRepo.getAllCalls)

	// 4 minutes later: same epoch, same backing data, no new fetch.
	clock.Advance(4 * time.Minute)
	second, _ := cache.Collections(ctx)
	assert.Equal(t, 1, projectRepo.getAllCalls)
	require.Len(t, second, 1)
	assert.Same(t, &first[0], &second[0], "readers in one epoch must observe the same collection")

	// Past the 5 minute TTL: fresh fetch.
	clock.Advance(2 * time.Minute)
	cache.Collections(ctx)
	assert.Equal(t, 2, projectRepo.getAllCalls)
}

func TestCacheClearForcesRefetch(t *testing.T) {
	cache, projectRepo, _, _ := newTestCache([]models.Project{validProject("p1", 100, nil)}, nil)
	ctx := context.Background()

	cache.Collections(ctx)
	cache.Clear()
	cache.Collections(ctx)

	assert.Equal(t, 2, projectRepo.getAllCalls)
}

func TestCachePrimaryFailureServesSeedAndRetries(t *testing.T) {
	cache, projectRepo, _, _ := newTestCache(nil, nil)
	projectRepo.getAllErr = errors.New("backend unreachable")
	ctx := context.Background()

	projects, logos := cache.Collections(ctx)
	require.NotEmpty(t, projects, "seed collection must be served on fetch failure")
	assert.Empty(t, logos)
	for _, item := range projects {
		assert.Contains(t, item.ID, "seed-")
	}

	// The failure is not a valid epoch: next call retries immediately.
	cache.Collections(ctx)
	assert.Equal(t, 2, projectRepo.getAllCalls)

	// Once the backend recovers, real data replaces the seed.
	projectRepo.getAllErr = nil
	projectRepo.projects = []models.Project{validProject("real", 100, nil)}
	projects, _ = cache.Collections(ctx)
	require.Len(t, projects, 1)
	assert.Equal(t, "real", projects[0].ID)
}

func TestCacheSecondaryFailureDegradesToPrimary(t *testing.T) {
	cache, projectRepo, logoRepo, _ := newTestCache([]models.Project{validProject("p1", 100, nil)}, nil)
	logoRepo.getAllErr = errors.New("logos table gone")
	ctx := context.Background()

	projects, logos := cache.Collections(ctx)
	require.Len(t, projects, 1, "primary collection survives a secondary failure")
	assert.Empty(t, logos)

	// Partial epochs are provisional: the next read retries both fetches.
	cache.Collections(ctx)
	assert.Equal(t, 2, projectRepo.getAllCalls)
	assert.Equal(t, 2, logoRepo.getAllCalls)
}

func TestCacheStampsWholeBatchWithOneFallback(t *testing.T) {
	// Two records without createdAt keep their relative input order within
	// an epoch because the fallback stamp is shared.
	cache, _, _, _ := newTestCache([]models.Project{
		validProject("p1", 0, nil),
		validProject("p2", 0, nil),
	}, nil)

	projects, _ := cache.Collections(context.Background())
	require.Len(t, projects, 2)
	assert.Equal(t, projects[0].CreatedAt, projects[1].CreatedAt)
	assert.NotZero(t, projects[0].CreatedAt)
}
