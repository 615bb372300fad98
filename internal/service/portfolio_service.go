package service

import (
	"context"
	"errors"
	"log"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/repository"

	"golang.org/x/sync/errgroup"
)

// PortfolioService serves the public read surface. Reads never fail: store
// errors degrade to built-in content.
type PortfolioService struct {
	store  repository.Store
	images *ImagePolicy
}

func NewPortfolioService(store repository.Store, images *ImagePolicy) *PortfolioService {
	return &PortfolioService{
		store:  store,
		images: images,
	}
}

// GetPortfolioData fetches both singletons and the four collections
// concurrently. A missing singleton is replaced by its default, any other
// failure replaces the whole snapshot. fallback reports that built-in content
// was served because of a store failure.
func (s *PortfolioService) GetPortfolioData(ctx context.Context) (data *models.PortfolioData, fallback bool) {
	data = &models.PortfolioData{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hero, err := s.fetchHero(gctx)
		data.Hero = hero
		return err
	})
	g.Go(func() error {
		about, err := s.fetchAbout(gctx)
		data.About = about
		return err
	})
	g.Go(func() (err error) {
		data.Projects, err = listCollection[models.Project](gctx, s.store, models.CollectionProjects)
		return err
	})
	g.Go(func() (err error) {
		data.Experience, err = listCollection[models.Experience](gctx, s.store, models.CollectionExperience)
		return err
	})
	g.Go(func() (err error) {
		data.Education, err = listCollection[models.Education](gctx, s.store, models.CollectionEducation)
		return err
	})
	g.Go(func() (err error) {
		data.Certifications, err = listCollection[models.Certification](gctx, s.store, models.CollectionCertifications)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("Warning: Serving default portfolio content, store read failed: %v", err)
		aggregationFallbacks.WithLabelValues("portfolio", fallbackReason(err)).Inc()
		return models.DefaultPortfolio(), true
	}
	return data, false
}

func (s *PortfolioService) GetHero(ctx context.Context) (models.HeroContent, bool) {
	hero, err := s.fetchHero(ctx)
	if err != nil {
		s.logFallback(models.SingletonHero, err)
		return models.DefaultHero(), true
	}
	return hero, false
}

func (s *PortfolioService) GetAbout(ctx context.Context) (models.AboutContent, bool) {
	about, err := s.fetchAbout(ctx)
	if err != nil {
		s.logFallback(models.SingletonAbout, err)
		return models.DefaultAbout(), true
	}
	return about, false
}

func (s *PortfolioService) GetProjects(ctx context.Context) ([]models.Project, bool) {
	projects, err := listCollection[models.Project](ctx, s.store, models.CollectionProjects)
	if err != nil {
		s.logFallback(models.CollectionProjects, err)
		return models.DefaultPortfolio().Projects, true
	}
	return projects, false
}

func (s *PortfolioService) GetExperience(ctx context.Context) ([]models.Experience, bool) {
	experience, err := listCollection[models.Experience](ctx, s.store, models.CollectionExperience)
	if err != nil {
		s.logFallback(models.CollectionExperience, err)
		return models.DefaultPortfolio().Experience, true
	}
	return experience, false
}

func (s *PortfolioService) GetEducation(ctx context.Context) ([]models.Education, bool) {
	education, err := listCollection[models.Education](ctx, s.store, models.CollectionEducation)
	if err != nil {
		s.logFallback(models.CollectionEducation, err)
		return models.DefaultPortfolio().Education, true
	}
	return education, false
}

func (s *PortfolioService) GetCertifications(ctx context.Context) ([]models.Certification, bool) {
	certifications, err := listCollection[models.Certification](ctx, s.store, models.CollectionCertifications)
	if err != nil {
		s.logFallback(models.CollectionCertifications, err)
		return models.DefaultPortfolio().Certifications, true
	}
	return certifications, false
}

// GetProject surfaces models.ErrNotFound. When the store is unavailable the
// built-in project with the same id is served if there is one, and the
// result is reported as a fallback.
func (s *PortfolioService) GetProject(ctx context.Context, id string) (*models.Project, bool, error) {
	project, err := getDocument[models.Project](ctx, s.store, models.CollectionProjects, id)
	if err == nil {
		return project, false, nil
	}
	if errors.Is(err, models.ErrStoreUnavailable) {
		s.logFallback(models.CollectionProjects, err)
		for _, p := range models.DefaultPortfolio().Projects {
			if p.ID == id {
				return &p, true, nil
			}
		}
		return nil, true, models.ErrNotFound
	}
	return nil, false, err
}

func (s *PortfolioService) fetchHero(ctx context.Context) (models.HeroContent, error) {
	hero, err := getDocument[models.HeroContent](ctx, s.store, models.CollectionSingletons, models.SingletonHero)
	if errors.Is(err, models.ErrNotFound) {
		return models.DefaultHero(), nil
	}
	if err != nil {
		return models.HeroContent{}, err
	}
	return *hero, nil
}

func (s *PortfolioService) fetchAbout(ctx context.Context) (models.AboutContent, error) {
	about, err := getDocument[models.AboutContent](ctx, s.store, models.CollectionSingletons, models.SingletonAbout)
	if errors.Is(err, models.ErrNotFound) {
		return models.DefaultAbout(), nil
	}
	if err != nil {
		return models.AboutContent{}, err
	}
	if about.Skills == nil {
		about.Skills = []models.Skill{}
	}
	return *about, nil
}

func (s *PortfolioService) logFallback(section string, err error) {
	log.Printf("Warning: Serving default %s content: %v", section, err)
	aggregationFallbacks.WithLabelValues(section, fallbackReason(err)).Inc()
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, models.ErrStoreUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
