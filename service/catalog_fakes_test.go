package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"estudio-luma-me/models"
	"estudio-luma-me/repository"
)

// fakeClock is a hand-advanced clock for TTL tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// fakeProjectRepo is an in-memory ProjectRepositoryInterface.
type fakeProjectRepo struct {
	projects    []models.Project
	getAllErr   error
	getAllCalls int
}

var _ repository.ProjectRepositoryInterface = (*fakeProjectRepo)(nil)

func (f *fakeProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	f.getAllCalls++
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.projects, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", id, sql.ErrNoRows)
}

func (f *fakeProjectRepo) Insert(ctx context.Context, project *models.Project) error {
	f.projects = append(f.projects, *project)
	return nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, id string, req *models.ProjectUpsertRequest) error {
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	return nil
}

// fakeLogoRepo is an in-memory LogoRepositoryInterface.
type fakeLogoRepo struct {
	logos       []models.Logo
	getAllErr   error
	getAllCalls int
}

var _ repository.LogoRepositoryInterface = (*fakeLogoRepo)(nil)

func (f *fakeLogoRepo) GetAll(ctx context.Context) ([]models.Logo, error) {
	f.getAllCalls++
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.logos, nil
}

func (f *fakeLogoRepo) GetByID(ctx context.Context, id string) (*models.Logo, error) {
	for i := range f.logos {
		if f.logos[i].ID == id {
			return &f.logos[i], nil
		}
	}
	return nil, fmt.Errorf("logo %s: %w", id, sql.ErrNoRows)
}

func (f *fakeLogoRepo) Insert(ctx context.Context, logo *models.Logo) error {
	f.logos = append(f.logos, *logo)
	return nil
}

func (f *fakeLogoRepo) Update(ctx context.Context, id string, req *models.LogoUpsertRequest) error {
	return nil
}

func (f *fakeLogoRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func intPtr(i int) *int {
	return &i
}

// validProject builds a minimal well-formed current-schema record.
func validProject(id string, createdAt int64, displayOrder *int) models.Project {
	return models.Project{
		ID:           id,
		Title:        "Project " + id,
		Category:     "design",
		ImageURL:     "https://img.example/" + id + ".jpg",
		CreatedAt:    createdAt,
		DisplayOrder: displayOrder,
	}
}
