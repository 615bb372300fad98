package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/service"

	"github.com/spf13/cobra"
)

// NewRevalidateCmd returns the `revalidate` command.
//
// Usage examples:
//
//	portfolioctl revalidate /api/projects /projects
//	portfolioctl revalidate --all --direct
func NewRevalidateCmd(deps *Deps) *cobra.Command {
	var (
		all    bool
		direct bool
	)

	cmd := &cobra.Command{
		Use:   "revalidate [paths...]",
		Short: "drop cached pages",
		Long: `Publish a cache.revalidate event for the given paths so every running
instance drops them. With --direct, or when RabbitMQ is not configured, the
cached pages are deleted from the shared cache instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if all {
				paths = allPaths()
			}
			if len(paths) == 0 {
				return errors.New("no paths given (pass paths or --all)")
			}

			if direct || deps.Publisher == nil {
				if err := deps.Invalidator.Invalidate(cmd.Context(), paths...); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "invalidated %d paths\n", len(paths))
				return nil
			}

			evt := &models.ContentEvent{
				EventType: models.EventTypeCacheRevalidate,
				Paths:     paths,
				Timestamp: time.Now(),
			}
			if err := deps.Publisher.PublishContentEvent(cmd.Context(), evt); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published revalidation of %d paths\n", len(paths))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "revalidate every content route")
	cmd.Flags().BoolVar(&direct, "direct", false, "delete cached pages directly instead of publishing an event")
	return cmd
}

// allPaths lists every route that shows stored content, without duplicates.
func allPaths() []string {
	sections := []string{
		models.SingletonHero,
		models.SingletonAbout,
		models.CollectionProjects,
		models.CollectionExperience,
		models.CollectionEducation,
		models.CollectionCertifications,
	}

	seen := map[string]bool{}
	var paths []string
	for _, section := range sections {
		for _, p := range service.InvalidationPaths(section, "") {
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		}
	}
	return paths
}
