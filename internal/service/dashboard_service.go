package service

import (
	"context"
	"strings"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/repository"

	"golang.org/x/sync/errgroup"
)

type ImageKind string

const (
	ImageKindUploaded    ImageKind = "uploaded"
	ImageKindLocal       ImageKind = "local"
	ImageKindPlaceholder ImageKind = "placeholder"
	ImageKindRemote      ImageKind = "remote"
	ImageKindMissing     ImageKind = "missing"
)

type CollectionImageAudit struct {
	Collection   string            `json:"collection" yaml:"collection"`
	Field        string            `json:"field" yaml:"field"`
	Total        int               `json:"total" yaml:"total"`
	Counts       map[ImageKind]int `json:"counts" yaml:"counts"`
	Placeholders []string          `json:"placeholders" yaml:"placeholders"`
}

type ImageAudit struct {
	Collections       []CollectionImageAudit `json:"collections" yaml:"collections"`
	TotalItems        int                    `json:"totalItems" yaml:"totalItems"`
	TotalPlaceholders int                    `json:"totalPlaceholders" yaml:"totalPlaceholders"`
	TotalUploaded     int                    `json:"totalUploaded" yaml:"totalUploaded"`
}

type Dashboard struct {
	Counts            map[string]int `json:"counts"`
	CompletedSections int            `json:"completedSections"`
	TotalSections     int            `json:"totalSections"`
	CompletionPercent int            `json:"completionPercent"`
	Images            ImageAudit     `json:"images"`
}

// DashboardService reports on stored content for the admin area. Unlike the
// public read path it surfaces store errors.
type DashboardService struct {
	store  repository.Store
	images *ImagePolicy
}

func NewDashboardService(store repository.Store, images *ImagePolicy) *DashboardService {
	return &DashboardService{
		store:  store,
		images: images,
	}
}

type storedContent struct {
	hero           models.HeroContent
	about          models.AboutContent
	projects       []models.Project
	experience     []models.Experience
	education      []models.Education
	certifications []models.Certification
	messages       []models.ContactMessage
}

func (s *DashboardService) load(ctx context.Context) (*storedContent, error) {
	content := &storedContent{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hero, err := getDocument[models.HeroContent](gctx, s.store, models.CollectionSingletons, models.SingletonHero)
		if err == nil {
			content.hero = *hero
			return nil
		}
		return ignoreNotFound(err)
	})
	g.Go(func() error {
		about, err := getDocument[models.AboutContent](gctx, s.store, models.CollectionSingletons, models.SingletonAbout)
		if err == nil {
			content.about = *about
			return nil
		}
		return ignoreNotFound(err)
	})
	g.Go(func() (err error) {
		content.projects, err = listCollection[models.Project](gctx, s.store, models.CollectionProjects)
		return err
	})
	g.Go(func() (err error) {
		content.experience, err = listCollection[models.Experience](gctx, s.store, models.CollectionExperience)
		return err
	})
	g.Go(func() (err error) {
		content.education, err = listCollection[models.Education](gctx, s.store, models.CollectionEducation)
		return err
	})
	g.Go(func() (err error) {
		content.certifications, err = listCollection[models.Certification](gctx, s.store, models.CollectionCertifications)
		return err
	})
	g.Go(func() (err error) {
		content.messages, err = listCollection[models.ContactMessage](gctx, s.store, models.CollectionMessages)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	content, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	checks := []bool{
		len(content.projects) > 0,
		len(content.experience) > 0,
		len(content.education) > 0,
		len(content.certifications) > 0,
		len(content.about.Skills) > 0,
		len(content.about.Bio) > 0,
	}
	completed := 0
	for _, ok := range checks {
		if ok {
			completed++
		}
	}

	return &Dashboard{
		Counts: map[string]int{
			models.CollectionProjects:       len(content.projects),
			models.CollectionExperience:     len(content.experience),
			models.CollectionEducation:      len(content.education),
			models.CollectionCertifications: len(content.certifications),
			"skills":                        len(content.about.Skills),
			models.CollectionMessages:       len(content.messages),
		},
		CompletedSections: completed,
		TotalSections:     len(checks),
		CompletionPercent: completed * 100 / len(checks),
		Images:            s.audit(content),
	}, nil
}

// AuditImages reports how every stored image field is sourced.
func (s *DashboardService) AuditImages(ctx context.Context) (*ImageAudit, error) {
	content, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	audit := s.audit(content)
	return &audit, nil
}

func (s *DashboardService) audit(content *storedContent) ImageAudit {
	projects := newCollectionAudit(models.CollectionProjects, "imageUrl")
	for _, p := range content.projects {
		projects.add(p.ID, s.ClassifyImage(p.ImageURL))
	}

	experience := newCollectionAudit(models.CollectionExperience, "logoUrl")
	for _, e := range content.experience {
		experience.add(e.ID, s.ClassifyImage(e.LogoURL))
	}

	singletons := newCollectionAudit(models.CollectionSingletons, "profileUrl")
	if content.hero.ProfileURL != "" || content.hero.Name != "" {
		singletons.add(models.SingletonHero, s.ClassifyImage(content.hero.ProfileURL))
	}
	if content.about.ProfileURL != "" || content.about.Bio != "" {
		singletons.add(models.SingletonAbout, s.ClassifyImage(content.about.ProfileURL))
	}

	audit := ImageAudit{Collections: []CollectionImageAudit{projects, experience, singletons}}
	for _, c := range audit.Collections {
		audit.TotalItems += c.Total
		audit.TotalPlaceholders += c.Counts[ImageKindPlaceholder]
		audit.TotalUploaded += c.Counts[ImageKindUploaded]
	}
	return audit
}

func (s *DashboardService) ClassifyImage(url string) ImageKind {
	switch {
	case url == "":
		return ImageKindMissing
	case strings.HasPrefix(url, "data:image/"):
		return ImageKindUploaded
	case s.images.IsPlaceholder(url):
		return ImageKindPlaceholder
	case strings.HasPrefix(url, "/"):
		return ImageKindLocal
	default:
		return ImageKindRemote
	}
}

func newCollectionAudit(collection, field string) CollectionImageAudit {
	return CollectionImageAudit{
		Collection:   collection,
		Field:        field,
		Counts:       map[ImageKind]int{},
		Placeholders: []string{},
	}
}

func (c *CollectionImageAudit) add(id string, kind ImageKind) {
	c.Total++
	c.Counts[kind]++
	if kind == ImageKindPlaceholder {
		c.Placeholders = append(c.Placeholders, id)
	}
}

func ignoreNotFound(err error) error {
	if err == nil || isNotFound(err) {
		return nil
	}
	return err
}
