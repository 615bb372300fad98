package cli

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nasarali03/Portfolio/internal/config"
	"github.com/nasarali03/Portfolio/internal/database"
	"github.com/nasarali03/Portfolio/internal/database/redis"
	"github.com/nasarali03/Portfolio/internal/event"
	"github.com/nasarali03/Portfolio/internal/repository"
	"github.com/nasarali03/Portfolio/internal/service"

	"github.com/spf13/cobra"
)

// Deps are the backends the maintenance commands operate on.
type Deps struct {
	Store       repository.Store
	Images      *service.ImagePolicy
	Invalidator service.Invalidator
	// Publisher is nil when RabbitMQ is not configured.
	Publisher event.Publisher
}

// NewDeps connects to the configured backends. The returned func releases
// them.
func NewDeps(ctx context.Context, cfg *config.Config) (*Deps, func(), error) {
	store, closeStore, err := database.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){closeStore}

	deps := &Deps{
		Store: store,
		Images: service.NewImagePolicy(service.ImagePolicyConfig{
			PlaceholderBaseURL: cfg.Images.PlaceholderBaseURL,
			PlaceholderHost:    cfg.Images.PlaceholderHost,
			ProfileFallback:    cfg.Images.ProfileFallback,
		}),
	}

	if client, err := redis.NewClient(&cfg.Redis); err != nil {
		log.Printf("Warning: %v; direct invalidation is unavailable", err)
		deps.Invalidator = repository.NewMemoryCache(cfg.Redis.PageTTL)
	} else {
		deps.Invalidator = repository.NewRedisRepo(client, cfg.Redis.PageTTL)
		closers = append(closers, func() { client.Close() })
	}

	if cfg.RabbitMQ.URI != "" {
		publisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Printf("Warning: Failed to initialize event publisher: %v", err)
		} else {
			deps.Publisher = publisher
			closers = append(closers, func() { publisher.Close() })
		}
	}

	return deps, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}

func NewRootCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "maintain portfolio content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		NewImagesCmd(deps),
		NewSeedCmd(deps),
		NewRevalidateCmd(deps),
	)
	return cmd
}

func Run(ctx context.Context, args []string, deps *Deps) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, err
	}
	return 0, nil
}
