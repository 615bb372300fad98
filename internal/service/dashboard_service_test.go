package service

import (
	"context"
	"testing"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCompletion(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	dashboard := NewDashboardService(env.store, env.images)

	empty, err := dashboard.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.CompletionPercent)
	assert.Equal(t, 6, empty.TotalSections)

	_, err = env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "X"}, nil))
	require.NoError(t, err)
	_, err = env.content.UpdateAbout(ctx, models.AboutFields{Bio: "bio"}, nil)
	require.NoError(t, err)

	d, err := dashboard.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, d.CompletedSections)
	assert.Equal(t, 50, d.CompletionPercent)
	assert.Equal(t, 1, d.Counts[models.CollectionProjects])
	assert.Equal(t, 8, d.Counts["skills"])
}

func TestAuditImages(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	dashboard := NewDashboardService(env.store, env.images)

	placeholder, err := env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "p"}, nil))
	require.NoError(t, err)
	_, err = env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "u"},
		models.UploadFromBytes("a.png", "image/png", pngBytes)))
	require.NoError(t, err)
	_, err = env.store.Upsert(ctx, models.CollectionSingletons, models.SingletonHero, models.HeroContent{Name: "N", ProfileURL: "/me.png"})
	require.NoError(t, err)

	audit, err := dashboard.AuditImages(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, audit.TotalItems)
	assert.Equal(t, 1, audit.TotalPlaceholders)
	assert.Equal(t, 1, audit.TotalUploaded)
	assert.Equal(t, []string{placeholder.ID}, audit.Collections[0].Placeholders)
	assert.Equal(t, 1, audit.Collections[2].Counts[ImageKindLocal])
}

func TestDashboardSurfacesStoreErrors(t *testing.T) {
	env := newTestEnv()
	env.store.SetUnavailable(true)

	_, err := NewDashboardService(env.store, env.images).GetDashboard(context.Background())
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestClassifyImage(t *testing.T) {
	d := NewDashboardService(nil, NewImagePolicy(ImagePolicyConfig{}))
	assert.Equal(t, ImageKindMissing, d.ClassifyImage(""))
	assert.Equal(t, ImageKindUploaded, d.ClassifyImage("data:image/png;base64,AA"))
	assert.Equal(t, ImageKindPlaceholder, d.ClassifyImage("https://picsum.photos/seed/a/1/1"))
	assert.Equal(t, ImageKindLocal, d.ClassifyImage("/ali.png"))
	assert.Equal(t, ImageKindRemote, d.ClassifyImage("https://cdn.example.dev/a.png"))
}
