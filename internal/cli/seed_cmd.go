package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewSeedCmd returns the `seed` command.
//
// Usage examples:
//
//	portfolioctl seed
//	portfolioctl seed --file content.yaml --skip-existing
func NewSeedCmd(deps *Deps) *cobra.Command {
	var (
		file         string
		skipExisting bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "load portfolio content into the store",
		Long: `Write the built-in sample content, or the content of a YAML file shaped
like the /api/portfolio response, into the document store. Documents keep their
ids, so seeding twice overwrites instead of duplicating.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := models.DefaultPortfolio()
			if file != "" {
				loaded, err := loadPortfolioFile(file)
				if err != nil {
					return err
				}
				data = loaded
			}

			written, err := seedPortfolio(cmd.Context(), deps, data, skipExisting)
			if err != nil {
				return err
			}

			if err := deps.Invalidator.Invalidate(cmd.Context(), allPaths()...); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache invalidation failed: %v\n", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d documents into %s store\n", written, deps.Store.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML file with portfolio content")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "leave non-empty collections and existing singletons untouched")
	return cmd
}

// loadPortfolioFile reads YAML through its generic form so the JSON field
// names of the models apply.
func loadPortfolioFile(path string) (*models.PortfolioData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", path, err)
	}

	data := &models.PortfolioData{}
	if err := json.Unmarshal(js, data); err != nil {
		return nil, fmt.Errorf("invalid portfolio content in %s: %w", path, err)
	}
	return data, nil
}

func seedPortfolio(ctx context.Context, deps *Deps, data *models.PortfolioData, skipExisting bool) (int, error) {
	written := 0
	put := func(collection, id string, doc any) error {
		if _, err := deps.Store.Upsert(ctx, collection, id, doc); err != nil {
			return fmt.Errorf("failed to seed %s/%s: %w", collection, id, err)
		}
		written++
		return nil
	}

	skip := func(collection string) (bool, error) {
		if !skipExisting {
			return false, nil
		}
		var existing []map[string]any
		if err := deps.Store.GetOrderedCollection(ctx, collection, &existing); err != nil {
			return false, err
		}
		return len(existing) > 0, nil
	}
	singletonExists := func(id string) (bool, error) {
		if !skipExisting {
			return false, nil
		}
		var existing map[string]any
		err := deps.Store.GetSingleton(ctx, models.CollectionSingletons, id, &existing)
		if err == nil {
			return true, nil
		}
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if exists, err := singletonExists(models.SingletonHero); err != nil {
		return written, err
	} else if !exists {
		hero := data.Hero
		hero.ProfileURL, hero.ProfileHint = fillImage(ctx, deps, service.HeroProfileSpec, models.SingletonHero, hero.ProfileURL, hero.ProfileHint)
		if err := put(models.CollectionSingletons, models.SingletonHero, hero); err != nil {
			return written, err
		}
	}

	if exists, err := singletonExists(models.SingletonAbout); err != nil {
		return written, err
	} else if !exists {
		about := data.About
		if about.Skills == nil {
			about.Skills = []models.Skill{}
		}
		about.ProfileURL, about.ProfileHint = fillImage(ctx, deps, service.AboutProfileSpec, models.SingletonAbout, about.ProfileURL, about.ProfileHint)
		if err := put(models.CollectionSingletons, models.SingletonAbout, about); err != nil {
			return written, err
		}
	}

	if ok, err := skip(models.CollectionProjects); err != nil {
		return written, err
	} else if !ok {
		for _, p := range data.Projects {
			p.ImageURL, p.ImageHint = fillImage(ctx, deps, service.ProjectImageSpec, p.ID, p.ImageURL, p.ImageHint)
			if err := put(models.CollectionProjects, p.ID, p); err != nil {
				return written, err
			}
		}
	}

	if ok, err := skip(models.CollectionExperience); err != nil {
		return written, err
	} else if !ok {
		for _, e := range data.Experience {
			e.LogoURL, e.LogoHint = fillImage(ctx, deps, service.ExperienceLogoSpec, e.ID, e.LogoURL, e.LogoHint)
			if err := put(models.CollectionExperience, e.ID, e); err != nil {
				return written, err
			}
		}
	}

	if ok, err := skip(models.CollectionEducation); err != nil {
		return written, err
	} else if !ok {
		for _, e := range data.Education {
			if err := put(models.CollectionEducation, e.ID, e); err != nil {
				return written, err
			}
		}
	}

	if ok, err := skip(models.CollectionCertifications); err != nil {
		return written, err
	} else if !ok {
		for _, c := range data.Certifications {
			if err := put(models.CollectionCertifications, c.ID, c); err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

// fillImage keeps a given URL and otherwise resolves a placeholder.
func fillImage(ctx context.Context, deps *Deps, spec service.ImageSpec, id, url, hint string) (string, string) {
	if url != "" {
		if hint == "" {
			hint = spec.DefaultHint
		}
		return url, hint
	}
	res := deps.Images.Resolve(ctx, service.ImageRequest{Spec: spec, ID: id})
	return res.URL, res.Hint
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
