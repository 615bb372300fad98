package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/pkg/utils"
)

// ImageSpec describes how one image field of an entity is resolved.
type ImageSpec struct {
	Field       string
	Width       int
	Height      int
	SeedPrefix  string
	UploadHint  string
	DefaultHint string
	// Singleton images may use the configured local fallback path instead
	// of a seeded placeholder.
	Singleton bool
}

var (
	ProjectImageSpec = ImageSpec{
		Field: "imageUrl", Width: 600, Height: 400, SeedPrefix: "newproj",
		UploadHint: "project screenshot", DefaultHint: "tech abstract",
	}
	ExperienceLogoSpec = ImageSpec{
		Field: "logoUrl", Width: 100, Height: 100, SeedPrefix: "logo",
		UploadHint: "company logo", DefaultHint: "company logo",
	}
	HeroProfileSpec = ImageSpec{
		Field: "profileUrl", Width: 400, Height: 400, SeedPrefix: "profile",
		UploadHint: "professional headshot", DefaultHint: "professional headshot", Singleton: true,
	}
	AboutProfileSpec = ImageSpec{
		Field: "profileUrl", Width: 400, Height: 400, SeedPrefix: "profile",
		UploadHint: "professional developer", DefaultHint: "professional developer", Singleton: true,
	}
)

type StoredImage struct {
	URL  string
	Hint string
}

// ImageRequest carries what the policy needs for one entity. ID is empty
// when creating. LoadExisting reads the stored image when updating.
type ImageRequest struct {
	Spec         ImageSpec
	ID           string
	Upload       *models.Upload
	LoadExisting func(ctx context.Context) (StoredImage, error)
}

type ImageSource string

const (
	ImageSourceUpload      ImageSource = "upload"
	ImageSourceExisting    ImageSource = "existing"
	ImageSourceSeeded      ImageSource = "seeded"
	ImageSourceLocal       ImageSource = "local"
	ImageSourcePlaceholder ImageSource = "placeholder"
)

type ImageResult struct {
	URL    string
	Hint   string
	Source ImageSource
}

// ImageStrategy returns ok=false to pass the request to the next strategy.
type ImageStrategy func(ctx context.Context, req ImageRequest) (result ImageResult, ok bool)

type ImagePolicyConfig struct {
	PlaceholderBaseURL string
	PlaceholderHost    string
	ProfileFallback    string
}

type ImagePolicy struct {
	cfg        ImagePolicyConfig
	detector   *utils.ContentTypeDetector
	now        func() time.Time
	strategies []ImageStrategy
}

func NewImagePolicy(cfg ImagePolicyConfig) *ImagePolicy {
	if cfg.PlaceholderBaseURL == "" {
		cfg.PlaceholderBaseURL = "https://picsum.photos"
	}
	if cfg.PlaceholderHost == "" {
		cfg.PlaceholderHost = "picsum.photos"
	}
	cfg.PlaceholderBaseURL = strings.TrimSuffix(cfg.PlaceholderBaseURL, "/")

	p := &ImagePolicy{
		cfg:      cfg,
		detector: utils.NewContentTypeDetector(),
		now:      time.Now,
	}
	p.strategies = []ImageStrategy{
		p.encodeUpload,
		p.keepExisting,
		p.seededPlaceholder,
		p.freshPlaceholder,
	}
	return p
}

// Resolve walks the strategies in order and always yields a non-empty URL.
func (p *ImagePolicy) Resolve(ctx context.Context, req ImageRequest) ImageResult {
	for _, strategy := range p.strategies {
		if result, ok := strategy(ctx, req); ok {
			return result
		}
	}
	return p.mustFreshPlaceholder(req.Spec)
}

func (p *ImagePolicy) IsPlaceholder(url string) bool {
	return strings.Contains(url, p.cfg.PlaceholderHost)
}

func (p *ImagePolicy) PlaceholderURL(seed string, width, height int) string {
	return fmt.Sprintf("%s/seed/%s/%d/%d", p.cfg.PlaceholderBaseURL, seed, width, height)
}

// EncodeDataURI converts an upload into a base64 data URI.
func (p *ImagePolicy) EncodeDataURI(upload *models.Upload) (string, error) {
	data, err := upload.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrImageEncodingFailed, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", models.ErrImageEncodingFailed)
	}
	mimeType := p.detector.ImageContentType(upload.ContentType, upload.Filename, data)
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (p *ImagePolicy) encodeUpload(ctx context.Context, req ImageRequest) (ImageResult, bool) {
	if req.Upload == nil {
		return ImageResult{}, false
	}
	uri, err := p.EncodeDataURI(req.Upload)
	if err != nil {
		log.Printf("Warning: %s for %s, falling back: %v", req.Spec.Field, describeTarget(req), err)
		return ImageResult{}, false
	}
	return ImageResult{URL: uri, Hint: req.Spec.UploadHint, Source: ImageSourceUpload}, true
}

func (p *ImagePolicy) keepExisting(ctx context.Context, req ImageRequest) (ImageResult, bool) {
	if req.ID == "" || req.LoadExisting == nil {
		return ImageResult{}, false
	}
	existing, err := req.LoadExisting(ctx)
	if err != nil {
		log.Printf("Warning: Failed to load stored %s for %s: %v", req.Spec.Field, describeTarget(req), err)
		return ImageResult{}, false
	}
	if existing.URL == "" || p.IsPlaceholder(existing.URL) {
		return ImageResult{}, false
	}
	hint := existing.Hint
	if hint == "" {
		hint = req.Spec.DefaultHint
	}
	return ImageResult{URL: existing.URL, Hint: hint, Source: ImageSourceExisting}, true
}

func (p *ImagePolicy) seededPlaceholder(ctx context.Context, req ImageRequest) (ImageResult, bool) {
	if req.ID == "" {
		return ImageResult{}, false
	}
	if req.Spec.Singleton && p.cfg.ProfileFallback != "" {
		return ImageResult{URL: p.cfg.ProfileFallback, Hint: req.Spec.DefaultHint, Source: ImageSourceLocal}, true
	}
	return ImageResult{
		URL:    p.PlaceholderURL(req.ID, req.Spec.Width, req.Spec.Height),
		Hint:   req.Spec.DefaultHint,
		Source: ImageSourceSeeded,
	}, true
}

func (p *ImagePolicy) freshPlaceholder(ctx context.Context, req ImageRequest) (ImageResult, bool) {
	return p.mustFreshPlaceholder(req.Spec), true
}

func (p *ImagePolicy) mustFreshPlaceholder(spec ImageSpec) ImageResult {
	seed := fmt.Sprintf("%s%d", spec.SeedPrefix, p.now().UnixMilli())
	return ImageResult{
		URL:    p.PlaceholderURL(seed, spec.Width, spec.Height),
		Hint:   spec.DefaultHint,
		Source: ImageSourcePlaceholder,
	}
}

func describeTarget(req ImageRequest) string {
	if req.ID == "" {
		return "new entity"
	}
	return req.ID
}
