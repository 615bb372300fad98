package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/stretchr/testify/assert"
)

func existing(url, hint string) func(context.Context) (StoredImage, error) {
	return func(context.Context) (StoredImage, error) {
		return StoredImage{URL: url, Hint: hint}, nil
	}
}

func TestResolveEncodesUpload(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})

	result := p.Resolve(context.Background(), ImageRequest{
		Spec:         ProjectImageSpec,
		ID:           "p1",
		Upload:       models.UploadFromBytes("shot.png", "image/png", pngBytes),
		LoadExisting: existing("data:image/jpeg;base64,AAAA", "old"),
	})

	assert.True(t, strings.HasPrefix(result.URL, "data:image/png;base64,"))
	assert.Equal(t, "project screenshot", result.Hint)
	assert.Equal(t, ImageSourceUpload, result.Source)
}

func TestResolveDefaultsMimeToJPEG(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})

	result := p.Resolve(context.Background(), ImageRequest{
		Spec:   ExperienceLogoSpec,
		Upload: models.UploadFromBytes("logo", "", []byte("not sniffable")),
	})

	assert.True(t, strings.HasPrefix(result.URL, "data:image/jpeg;base64,"))
	assert.Equal(t, "company logo", result.Hint)
}

func TestResolveFreshPlaceholderOnCreate(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})

	result := p.Resolve(context.Background(), ImageRequest{Spec: ProjectImageSpec})

	assert.Regexp(t, regexp.MustCompile(`^https://picsum\.photos/seed/newproj\d+/600/400$`), result.URL)
	assert.Equal(t, "tech abstract", result.Hint)
	assert.Equal(t, ImageSourcePlaceholder, result.Source)
}

func TestResolveUsesClockForSeed(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{PlaceholderBaseURL: "https://img.test/"})
	p.now = func() time.Time { return time.UnixMilli(1700000000123) }

	result := p.Resolve(context.Background(), ImageRequest{Spec: ExperienceLogoSpec})
	assert.Equal(t, "https://img.test/seed/logo1700000000123/100/100", result.URL)
}

func TestResolveKeepsExistingUpload(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})
	stored := "data:image/png;base64,iVBORw0KGgo="

	result := p.Resolve(context.Background(), ImageRequest{
		Spec:         ProjectImageSpec,
		ID:           "p1",
		LoadExisting: existing(stored, "project screenshot"),
	})

	assert.Equal(t, stored, result.URL)
	assert.Equal(t, "project screenshot", result.Hint)
	assert.Equal(t, ImageSourceExisting, result.Source)
}

func TestResolveKeepsExistingWithDefaultHint(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})

	result := p.Resolve(context.Background(), ImageRequest{
		Spec:         HeroProfileSpec,
		ID:           models.SingletonHero,
		LoadExisting: existing("/me.png", ""),
	})

	assert.Equal(t, "/me.png", result.URL)
	assert.Equal(t, "professional headshot", result.Hint)
}

func TestResolveReseedsPlaceholderByID(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})

	req := ImageRequest{
		Spec:         ProjectImageSpec,
		ID:           "abc123",
		LoadExisting: existing("https://picsum.photos/seed/newproj1700000000000/600/400", "tech abstract"),
	}
	first := p.Resolve(context.Background(), req)
	second := p.Resolve(context.Background(), req)

	assert.Equal(t, "https://picsum.photos/seed/abc123/600/400", first.URL)
	assert.Equal(t, first, second)
	assert.Equal(t, ImageSourceSeeded, first.Source)
}

func TestResolveLoadFailureDegradesToSeeded(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})

	result := p.Resolve(context.Background(), ImageRequest{
		Spec: ExperienceLogoSpec,
		ID:   "e9",
		LoadExisting: func(context.Context) (StoredImage, error) {
			return StoredImage{}, errors.New("store unreachable")
		},
	})

	assert.Equal(t, "https://picsum.photos/seed/e9/100/100", result.URL)
}

func TestResolveEncodingFailureFallsThrough(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})

	kept := p.Resolve(context.Background(), ImageRequest{
		Spec:         ProjectImageSpec,
		ID:           "p1",
		Upload:       brokenUpload(),
		LoadExisting: existing("data:image/gif;base64,R0lG", "project screenshot"),
	})
	assert.Equal(t, "data:image/gif;base64,R0lG", kept.URL)

	seeded := p.Resolve(context.Background(), ImageRequest{
		Spec:   ProjectImageSpec,
		ID:     "p1",
		Upload: brokenUpload(),
	})
	assert.Equal(t, "https://picsum.photos/seed/p1/600/400", seeded.URL)
	assert.Equal(t, "tech abstract", seeded.Hint)

	created := p.Resolve(context.Background(), ImageRequest{Spec: ProjectImageSpec, Upload: brokenUpload()})
	assert.Regexp(t, `/seed/newproj\d+/600/400$`, created.URL)
}

func TestResolveSingletonLocalFallback(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{ProfileFallback: "/profile.png"})

	result := p.Resolve(context.Background(), ImageRequest{
		Spec:         AboutProfileSpec,
		ID:           models.SingletonAbout,
		LoadExisting: existing("https://picsum.photos/seed/profile2/400/400", ""),
	})
	assert.Equal(t, "/profile.png", result.URL)
	assert.Equal(t, ImageSourceLocal, result.Source)

	project := p.Resolve(context.Background(), ImageRequest{Spec: ProjectImageSpec, ID: "p1"})
	assert.Equal(t, "https://picsum.photos/seed/p1/600/400", project.URL)
}

func TestEncodeDataURIError(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})
	_, err := p.EncodeDataURI(brokenUpload())
	assert.ErrorIs(t, err, models.ErrImageEncodingFailed)
}

func TestIsPlaceholder(t *testing.T) {
	p := NewImagePolicy(ImagePolicyConfig{})
	assert.True(t, p.IsPlaceholder("https://picsum.photos/seed/x/1/1"))
	assert.False(t, p.IsPlaceholder("/local.png"))
	assert.False(t, p.IsPlaceholder("data:image/png;base64,AA"))
}
