package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nasarali03/Portfolio/internal/event"
	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Invalidator marks the cached output of routes stale.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}

type ContentService struct {
	store       repository.Store
	images      *ImagePolicy
	invalidator Invalidator
	publisher   event.Publisher
}

func NewContentService(store repository.Store, images *ImagePolicy, invalidator Invalidator, publisher event.Publisher) *ContentService {
	return &ContentService{
		store:       store,
		images:      images,
		invalidator: invalidator,
		publisher:   publisher,
	}
}

// Projects

func (s *ContentService) ListProjects(ctx context.Context) ([]models.Project, error) {
	return listCollection[models.Project](ctx, s.store, models.CollectionProjects)
}

func (s *ContentService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return getDocument[models.Project](ctx, s.store, models.CollectionProjects, id)
}

func (s *ContentService) UpsertProject(ctx context.Context, in models.Input[models.ProjectFields]) (*models.Project, error) {
	if err := requireExisting[models.Project](ctx, s.store, models.CollectionProjects, in); err != nil {
		return nil, err
	}

	image := s.resolveImage(ctx, ImageRequest{
		Spec:   ProjectImageSpec,
		ID:     in.ID(),
		Upload: in.Upload,
		LoadExisting: loadStoredImage(s.store, models.CollectionProjects, in.ID(), func(p *models.Project) StoredImage {
			return StoredImage{URL: p.ImageURL, Hint: p.ImageHint}
		}),
	})

	f := in.Fields
	project := &models.Project{
		Title:       f.Title,
		Summary:     f.Summary,
		Description: f.Description,
		ImageURL:    image.URL,
		ImageHint:   image.Hint,
		TechStack:   nonNilStrings(f.TechStack),
		GithubURL:   f.GithubURL,
		LiveURL:     f.LiveURL,
		Order:       f.Order,
	}

	id, err := s.save(ctx, models.CollectionProjects, models.CollectionProjects, in.ID(), project)
	if err != nil {
		return nil, err
	}
	project.ID = id
	return project, nil
}

func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	return s.remove(ctx, models.CollectionProjects, id)
}

// Experience

func (s *ContentService) ListExperience(ctx context.Context) ([]models.Experience, error) {
	return listCollection[models.Experience](ctx, s.store, models.CollectionExperience)
}

func (s *ContentService) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	return getDocument[models.Experience](ctx, s.store, models.CollectionExperience, id)
}

func (s *ContentService) UpsertExperience(ctx context.Context, in models.Input[models.ExperienceFields]) (*models.Experience, error) {
	if err := requireExisting[models.Experience](ctx, s.store, models.CollectionExperience, in); err != nil {
		return nil, err
	}

	logo := s.resolveImage(ctx, ImageRequest{
		Spec:   ExperienceLogoSpec,
		ID:     in.ID(),
		Upload: in.Upload,
		LoadExisting: loadStoredImage(s.store, models.CollectionExperience, in.ID(), func(e *models.Experience) StoredImage {
			return StoredImage{URL: e.LogoURL, Hint: e.LogoHint}
		}),
	})

	f := in.Fields
	experience := &models.Experience{
		Company:     f.Company,
		LogoURL:     logo.URL,
		LogoHint:    logo.Hint,
		Title:       f.Title,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Description: nonNilStrings(f.Description),
		Order:       f.Order,
	}

	id, err := s.save(ctx, models.CollectionExperience, models.CollectionExperience, in.ID(), experience)
	if err != nil {
		return nil, err
	}
	experience.ID = id
	return experience, nil
}

func (s *ContentService) DeleteExperience(ctx context.Context, id string) error {
	return s.remove(ctx, models.CollectionExperience, id)
}

// Education

func (s *ContentService) ListEducation(ctx context.Context) ([]models.Education, error) {
	return listCollection[models.Education](ctx, s.store, models.CollectionEducation)
}

func (s *ContentService) GetEducation(ctx context.Context, id string) (*models.Education, error) {
	return getDocument[models.Education](ctx, s.store, models.CollectionEducation, id)
}

func (s *ContentService) UpsertEducation(ctx context.Context, in models.Input[models.EducationFields]) (*models.Education, error) {
	if err := requireExisting[models.Education](ctx, s.store, models.CollectionEducation, in); err != nil {
		return nil, err
	}

	f := in.Fields
	education := &models.Education{
		Degree:      f.Degree,
		Institution: f.Institution,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Description: f.Description,
		Order:       f.Order,
	}

	id, err := s.save(ctx, models.CollectionEducation, models.CollectionEducation, in.ID(), education)
	if err != nil {
		return nil, err
	}
	education.ID = id
	return education, nil
}

func (s *ContentService) DeleteEducation(ctx context.Context, id string) error {
	return s.remove(ctx, models.CollectionEducation, id)
}

// Certifications

func (s *ContentService) ListCertifications(ctx context.Context) ([]models.Certification, error) {
	return listCollection[models.Certification](ctx, s.store, models.CollectionCertifications)
}

func (s *ContentService) GetCertification(ctx context.Context, id string) (*models.Certification, error) {
	return getDocument[models.Certification](ctx, s.store, models.CollectionCertifications, id)
}

func (s *ContentService) UpsertCertification(ctx context.Context, in models.Input[models.CertificationFields]) (*models.Certification, error) {
	if err := requireExisting[models.Certification](ctx, s.store, models.CollectionCertifications, in); err != nil {
		return nil, err
	}

	f := in.Fields
	certification := &models.Certification{
		Name:     f.Name,
		Provider: f.Provider,
		URL:      f.URL,
		Order:    f.Order,
	}

	id, err := s.save(ctx, models.CollectionCertifications, models.CollectionCertifications, in.ID(), certification)
	if err != nil {
		return nil, err
	}
	certification.ID = id
	return certification, nil
}

func (s *ContentService) DeleteCertification(ctx context.Context, id string) error {
	return s.remove(ctx, models.CollectionCertifications, id)
}

// Singletons. They are overwritten in place and never deleted.

func (s *ContentService) GetHero(ctx context.Context) (*models.HeroContent, error) {
	return getDocument[models.HeroContent](ctx, s.store, models.CollectionSingletons, models.SingletonHero)
}

func (s *ContentService) UpdateHero(ctx context.Context, fields models.HeroFields, upload *models.Upload) (*models.HeroContent, error) {
	profile := s.resolveImage(ctx, ImageRequest{
		Spec:   HeroProfileSpec,
		ID:     models.SingletonHero,
		Upload: upload,
		LoadExisting: loadStoredImage(s.store, models.CollectionSingletons, models.SingletonHero, func(h *models.HeroContent) StoredImage {
			return StoredImage{URL: h.ProfileURL, Hint: h.ProfileHint}
		}),
	})

	doc := bson.M{
		"name":        fields.Name,
		"title":       fields.Title,
		"intro":       fields.Intro,
		"profileUrl":  profile.URL,
		"profileHint": profile.Hint,
	}
	// the resume is managed by its own upload, an empty form value keeps it
	if fields.ResumeURL != "" {
		doc["resumeUrl"] = fields.ResumeURL
	} else if _, err := s.GetHero(ctx); errors.Is(err, models.ErrNotFound) {
		doc["resumeUrl"] = models.DefaultHero().ResumeURL
	}

	if _, err := s.save(ctx, models.SingletonHero, models.CollectionSingletons, models.SingletonHero, doc); err != nil {
		return nil, err
	}
	return s.GetHero(ctx)
}

// SetResumeURL merges only the resume link into the hero document, seeding
// the built-in hero when none is stored yet.
func (s *ContentService) SetResumeURL(ctx context.Context, url string) (*models.HeroContent, error) {
	var data any = bson.M{"resumeUrl": url}

	_, err := s.GetHero(ctx)
	if errors.Is(err, models.ErrNotFound) {
		hero := models.DefaultHero()
		hero.ResumeURL = url
		data = hero
	} else if err != nil {
		return nil, err
	}

	if _, err := s.save(ctx, models.SingletonHero, models.CollectionSingletons, models.SingletonHero, data); err != nil {
		return nil, err
	}
	return s.GetHero(ctx)
}

func (s *ContentService) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	return getDocument[models.AboutContent](ctx, s.store, models.CollectionSingletons, models.SingletonAbout)
}

func (s *ContentService) UpdateAbout(ctx context.Context, fields models.AboutFields, upload *models.Upload) (*models.AboutContent, error) {
	profile := s.resolveImage(ctx, ImageRequest{
		Spec:   AboutProfileSpec,
		ID:     models.SingletonAbout,
		Upload: upload,
		LoadExisting: loadStoredImage(s.store, models.CollectionSingletons, models.SingletonAbout, func(a *models.AboutContent) StoredImage {
			return StoredImage{URL: a.ProfileURL, Hint: a.ProfileHint}
		}),
	})

	doc := bson.M{
		"bio":         fields.Bio,
		"profileUrl":  profile.URL,
		"profileHint": profile.Hint,
	}
	if _, err := s.GetAbout(ctx); errors.Is(err, models.ErrNotFound) {
		doc["skills"] = models.DefaultAbout().Skills
	}

	if _, err := s.save(ctx, models.SingletonAbout, models.CollectionSingletons, models.SingletonAbout, doc); err != nil {
		return nil, err
	}
	return s.GetAbout(ctx)
}

// Skills live inside the about document.

func (s *ContentService) UpsertSkill(ctx context.Context, in models.Input[models.SkillFields]) (*models.Skill, error) {
	about, err := s.aboutForSkills(ctx)
	if err != nil {
		return nil, err
	}

	skill := models.Skill{ID: in.ID(), Name: in.Fields.Name, Category: in.Fields.Category}
	if in.IsUpdate() {
		found := false
		for i := range about.Skills {
			if about.Skills[i].ID == skill.ID {
				about.Skills[i] = skill
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("skill %s: %w", skill.ID, models.ErrNotFound)
		}
	} else {
		skill.ID = uuid.NewString()
		about.Skills = append(about.Skills, skill)
	}

	if err := s.saveSkills(ctx, about); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *ContentService) DeleteSkill(ctx context.Context, id string) error {
	about, err := s.aboutForSkills(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Skill, 0, len(about.Skills))
	for _, skill := range about.Skills {
		if skill.ID != id {
			kept = append(kept, skill)
		}
	}
	about.Skills = kept
	return s.saveSkills(ctx, about)
}

func (s *ContentService) aboutForSkills(ctx context.Context) (*models.AboutContent, error) {
	about, err := s.GetAbout(ctx)
	if errors.Is(err, models.ErrNotFound) {
		def := models.DefaultAbout()
		return &def, nil
	}
	return about, err
}

func (s *ContentService) saveSkills(ctx context.Context, about *models.AboutContent) error {
	_, err := s.save(ctx, "skills", models.CollectionSingletons, models.SingletonAbout, about)
	return err
}

// Helper methods

func (s *ContentService) resolveImage(ctx context.Context, req ImageRequest) ImageResult {
	result := s.images.Resolve(ctx, req)
	imageResolutions.WithLabelValues(req.Spec.Field, string(result.Source)).Inc()
	return result
}

// save persists data and signals invalidation for section.
func (s *ContentService) save(ctx context.Context, section, collection, id string, data any) (string, error) {
	resolvedID, err := s.store.Upsert(ctx, collection, id, data)
	if err != nil {
		contentMutations.WithLabelValues(section, "upsert", "error").Inc()
		return "", fmt.Errorf("failed to save %s: %w", section, err)
	}
	contentMutations.WithLabelValues(section, "upsert", "success").Inc()

	s.afterMutation(ctx, models.EventTypeContentUpserted, section, collection, resolvedID)
	return resolvedID, nil
}

func (s *ContentService) remove(ctx context.Context, collection, id string) error {
	if id == "" {
		return models.NewValidationError("id", "id is required")
	}
	if err := s.store.DeleteByID(ctx, collection, id); err != nil {
		contentMutations.WithLabelValues(collection, "delete", "error").Inc()
		return fmt.Errorf("failed to delete %s %s: %w", collection, id, err)
	}
	contentMutations.WithLabelValues(collection, "delete", "success").Inc()

	s.afterMutation(ctx, models.EventTypeContentDeleted, collection, collection, id)
	return nil
}

// afterMutation never fails an acknowledged write.
func (s *ContentService) afterMutation(ctx context.Context, eventType models.EventType, section, collection, id string) {
	paths := InvalidationPaths(section, id)

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, paths...); err != nil {
			log.Printf("Warning: Failed to invalidate %v: %v", paths, err)
		}
	}

	if s.publisher != nil {
		evt := &models.ContentEvent{
			EventType:  eventType,
			Collection: collection,
			EntityID:   id,
			Paths:      paths,
			Timestamp:  time.Now(),
		}
		if err := s.publisher.PublishContentEvent(ctx, evt); err != nil {
			log.Printf("Warning: Failed to publish %s event for %s/%s: %v", eventType, collection, id, err)
		}
	}
}

func loadStoredImage[T any](store repository.Store, collection, id string, pick func(*T) StoredImage) func(context.Context) (StoredImage, error) {
	return func(ctx context.Context) (StoredImage, error) {
		var entity T
		if err := store.GetSingleton(ctx, collection, id, &entity); err != nil {
			return StoredImage{}, err
		}
		return pick(&entity), nil
	}
}

// requireExisting rejects updates whose id the store never assigned.
func requireExisting[T, F any](ctx context.Context, store repository.Store, collection string, in models.Input[F]) error {
	if !in.IsUpdate() {
		return nil
	}
	if _, err := getDocument[T](ctx, store, collection, in.ID()); err != nil {
		return fmt.Errorf("failed to update %s %s: %w", collection, in.ID(), err)
	}
	return nil
}

func listCollection[T any](ctx context.Context, store repository.Store, collection string) ([]T, error) {
	items := []T{}
	if err := store.GetOrderedCollection(ctx, collection, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func getDocument[T any](ctx context.Context, store repository.Store, collection, id string) (*T, error) {
	var item T
	if err := store.GetSingleton(ctx, collection, id, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
