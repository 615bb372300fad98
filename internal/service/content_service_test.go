package service

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUpdate[F any](t *testing.T, id string, fields F, upload *models.Upload) models.Input[F] {
	t.Helper()
	in, err := models.UpdateInput(id, fields, upload)
	require.NoError(t, err)
	return in
}

func TestCreateProjectThenEditTitle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, err := env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "X", Order: 5}, nil))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Regexp(t, regexp.MustCompile(`^https://.+/seed/newproj\d+/600/400$`), created.ImageURL)

	edited, err := env.content.UpsertProject(ctx, mustUpdate(t, created.ID, models.ProjectFields{Title: "X2", Order: 5}, nil))
	require.NoError(t, err)
	assert.Equal(t, created.ID, edited.ID)
	assert.Equal(t, "https://picsum.photos/seed/"+created.ID+"/600/400", edited.ImageURL)

	again, err := env.content.UpsertProject(ctx, mustUpdate(t, created.ID, models.ProjectFields{Title: "X3", Order: 5}, nil))
	require.NoError(t, err)
	assert.Equal(t, edited.ImageURL, again.ImageURL)

	stored, err := env.content.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X3", stored.Title)
	assert.Equal(t, 5, stored.Order)
}

func TestUploadedImageSurvivesEditsWithoutFile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	created, err := env.content.UpsertProject(ctx, models.CreateInput(
		models.ProjectFields{Title: "Shot", TechStack: []string{"Go"}},
		models.UploadFromBytes("shot.png", "image/png", pngBytes),
	))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.ImageURL, "data:image/"))
	assert.Equal(t, "project screenshot", created.ImageHint)

	edited, err := env.content.UpsertProject(ctx, mustUpdate(t, created.ID, models.ProjectFields{Title: "Shot v2"}, nil))
	require.NoError(t, err)
	assert.Equal(t, created.ImageURL, edited.ImageURL)
	assert.Equal(t, "project screenshot", edited.ImageHint)
}

func TestUpsertRoundTripAllCollections(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	exp, err := env.content.UpsertExperience(ctx, models.CreateInput(models.ExperienceFields{
		Company: "Acme", Title: "Engineer", StartDate: "2020", EndDate: "Present",
		Description: []string{"Shipped things"}, Order: 1,
	}, nil))
	require.NoError(t, err)
	assert.Regexp(t, `/seed/logo\d+/100/100$`, exp.LogoURL)

	edu, err := env.content.UpsertEducation(ctx, models.CreateInput(models.EducationFields{
		Degree: "BSc", Institution: "Uni", StartDate: "2013", EndDate: "2017", Order: 1,
	}, nil))
	require.NoError(t, err)

	cert, err := env.content.UpsertCertification(ctx, models.CreateInput(models.CertificationFields{
		Name: "CKA", Provider: "CNCF", Order: 1,
	}, nil))
	require.NoError(t, err)

	gotExp, err := env.content.GetExperience(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, *exp, *gotExp)

	gotEdu, err := env.content.GetEducation(ctx, edu.ID)
	require.NoError(t, err)
	assert.Equal(t, *edu, *gotEdu)

	gotCert, err := env.content.GetCertification(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, *cert, *gotCert)
}

func TestOrderZeroComesFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	for _, f := range []models.CertificationFields{
		{Name: "b", Order: 2}, {Name: "a", Order: 1}, {Name: "zero", Order: 0},
	} {
		_, err := env.content.UpsertCertification(ctx, models.CreateInput(f, nil))
		require.NoError(t, err)
	}

	certs, err := env.content.ListCertifications(ctx)
	require.NoError(t, err)
	require.Len(t, certs, 3)
	assert.Equal(t, "zero", certs[0].Name)
	assert.Equal(t, "b", certs[2].Name)
}

func TestDeleteMissingCertificationSucceeds(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	_, err := env.content.UpsertCertification(ctx, models.CreateInput(models.CertificationFields{Name: "keep"}, nil))
	require.NoError(t, err)

	require.NoError(t, env.content.DeleteCertification(ctx, "c1"))
	require.NoError(t, env.content.DeleteCertification(ctx, "c1"))

	certs, err := env.content.ListCertifications(ctx)
	require.NoError(t, err)
	assert.Len(t, certs, 1)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	tests := []struct {
		name       string
		collection string
		update     func() error
	}{
		{name: "project", collection: models.CollectionProjects, update: func() error {
			_, err := env.content.UpsertProject(ctx, mustUpdate(t, "client-chosen", models.ProjectFields{Title: "X"}, nil))
			return err
		}},
		{name: "experience", collection: models.CollectionExperience, update: func() error {
			_, err := env.content.UpsertExperience(ctx, mustUpdate(t, "client-chosen", models.ExperienceFields{Company: "Acme"}, nil))
			return err
		}},
		{name: "education", collection: models.CollectionEducation, update: func() error {
			_, err := env.content.UpsertEducation(ctx, mustUpdate(t, "client-chosen", models.EducationFields{Degree: "BSc"}, nil))
			return err
		}},
		{name: "certification", collection: models.CollectionCertifications, update: func() error {
			_, err := env.content.UpsertCertification(ctx, mustUpdate(t, "client-chosen", models.CertificationFields{Name: "CKA"}, nil))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.update(), models.ErrNotFound)

			var doc map[string]any
			err := env.store.GetSingleton(ctx, tt.collection, "client-chosen", &doc)
			assert.ErrorIs(t, err, models.ErrNotFound)
		})
	}

	assert.Empty(t, env.publisher.GetEvents())
}

func TestUpdateWhileStoreUnavailableFails(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	p, err := env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "X"}, nil))
	require.NoError(t, err)

	env.store.SetUnavailable(true)
	_, err = env.content.UpsertProject(ctx, mustUpdate(t, p.ID, models.ProjectFields{Title: "Y"}, nil))
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestDeleteRemovesFromCollection(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	p, err := env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "gone"}, nil))
	require.NoError(t, err)
	require.NoError(t, env.content.DeleteProject(ctx, p.ID))

	projects, err := env.content.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	_, err = env.content.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, env.content.DeleteProject(ctx, ""), models.ErrValidation)
}

func TestMutationsInvalidateAndPublish(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	env.cache.SavePage(ctx, "/api/projects", []byte("[]"))
	env.cache.SavePage(ctx, "/api/portfolio", []byte("{}"))
	env.cache.SavePage(ctx, "/api/education", []byte("[]"))

	p, err := env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "X"}, nil))
	require.NoError(t, err)

	_, ok := env.cache.GetPage(ctx, "/api/projects")
	assert.False(t, ok)
	_, ok = env.cache.GetPage(ctx, "/api/portfolio")
	assert.False(t, ok)
	_, ok = env.cache.GetPage(ctx, "/api/education")
	assert.True(t, ok)

	require.NoError(t, env.content.DeleteProject(ctx, p.ID))

	events := env.publisher.GetEvents()
	require.Len(t, events, 2)
	assert.Equal(t, models.EventTypeContentUpserted, events[0].EventType)
	assert.Equal(t, models.EventTypeContentDeleted, events[1].EventType)
	assert.Equal(t, p.ID, events[1].EntityID)
	assert.Contains(t, events[1].Paths, PathAdminProjects)
	assert.Contains(t, events[1].Paths, PathHome)
}

func TestInvalidationFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.publisher.Err = assert.AnError
	content := NewContentService(env.store, env.images, failingInvalidator{}, env.publisher)

	p, err := content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "X"}, nil))
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
}

func TestStoreUnavailableFailsMutation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.store.SetUnavailable(true)

	_, err := env.content.UpsertProject(ctx, models.CreateInput(models.ProjectFields{Title: "X"}, nil))
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	err = env.content.DeleteEducation(ctx, "ed1")
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)

	assert.Empty(t, env.publisher.GetEvents())
}

func TestUpdateHeroKeepsResumeAndImage(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	hero, err := env.content.UpdateHero(ctx, models.HeroFields{Name: "Nasar", Title: "Engineer", Intro: "Hi"},
		models.UploadFromBytes("me.png", "image/png", pngBytes))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hero.ProfileURL, "data:image/png;base64,"))
	assert.Equal(t, "/resume.pdf", hero.ResumeURL)

	hero, err = env.content.SetResumeURL(ctx, "https://files/resume.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Nasar", hero.Name)

	hero, err = env.content.UpdateHero(ctx, models.HeroFields{Name: "Nasar Ali", Title: "Engineer", Intro: "Hi"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nasar Ali", hero.Name)
	assert.Equal(t, "https://files/resume.pdf", hero.ResumeURL)
	assert.True(t, strings.HasPrefix(hero.ProfileURL, "data:image/png;base64,"))
}

func TestSetResumeURLSeedsMissingHero(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	hero, err := env.content.SetResumeURL(ctx, "https://files/cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultHero().Name, hero.Name)
	assert.Equal(t, "https://files/cv.pdf", hero.ResumeURL)
}

func TestUpdateAboutAndSkills(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	about, err := env.content.UpdateAbout(ctx, models.AboutFields{Bio: "Gopher"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Gopher", about.Bio)
	assert.Len(t, about.Skills, len(models.DefaultAbout().Skills))
	assert.Equal(t, "https://picsum.photos/seed/about/400/400", about.ProfileURL)

	skill, err := env.content.UpsertSkill(ctx, models.CreateInput(models.SkillFields{Name: "Go", Category: models.SkillCategoryLanguage}, nil))
	require.NoError(t, err)
	require.NotEmpty(t, skill.ID)

	_, err = env.content.UpsertSkill(ctx, mustUpdate(t, skill.ID, models.SkillFields{Name: "Golang", Category: models.SkillCategoryLanguage}, nil))
	require.NoError(t, err)

	_, err = env.content.UpsertSkill(ctx, mustUpdate(t, "nope", models.SkillFields{Name: "x", Category: models.SkillCategoryTool}, nil))
	assert.ErrorIs(t, err, models.ErrNotFound)

	about, err = env.content.GetAbout(ctx)
	require.NoError(t, err)
	last := about.Skills[len(about.Skills)-1]
	assert.Equal(t, "Golang", last.Name)

	require.NoError(t, env.content.DeleteSkill(ctx, skill.ID))
	require.NoError(t, env.content.DeleteSkill(ctx, skill.ID))

	about, err = env.content.UpdateAbout(ctx, models.AboutFields{Bio: "Still a gopher"}, nil)
	require.NoError(t, err)
	assert.Len(t, about.Skills, len(models.DefaultAbout().Skills))
	assert.Equal(t, "Still a gopher", about.Bio)
}
