package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestImageContentType(t *testing.T) {
	d := NewContentTypeDetector()

	assert.Equal(t, "image/png", d.ImageContentType("image/png", "a.bin", nil))
	assert.Equal(t, "image/webp", d.ImageContentType("", "shot.WEBP", nil))
	assert.Equal(t, "image/png", d.ImageContentType("", "noext", pngHeader))
	assert.Equal(t, "image/jpeg", d.ImageContentType("", "noext", nil))
	assert.Equal(t, "image/jpeg", d.ImageContentType("application/octet-stream", "blob", []byte("plain")))
}

func TestIsImageContentType(t *testing.T) {
	d := NewContentTypeDetector()
	assert.True(t, d.IsImageContentType("image/svg+xml"))
	assert.True(t, d.IsImageContentType("Image/PNG; charset=binary"))
	assert.False(t, d.IsImageContentType("application/pdf"))
}

func TestValidateImageUpload(t *testing.T) {
	v := NewValidators()
	const limit = 1 << 20

	assert.NoError(t, v.ValidateImageUpload("imageFile", nil, limit))
	assert.NoError(t, v.ValidateImageUpload("imageFile", models.UploadFromBytes("a.png", "image/png", pngHeader), limit))

	big := models.UploadFromBytes("big.png", "image/png", make([]byte, limit+1))
	err := v.ValidateImageUpload("imageFile", big, limit)
	require.ErrorIs(t, err, models.ErrValidation)
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields["imageFile"], "exceeds")

	pdf := models.UploadFromBytes("cv.pdf", "application/pdf", []byte("%PDF-1.4"))
	assert.ErrorIs(t, v.ValidateImageUpload("imageFile", pdf, limit), models.ErrValidation)

	empty := models.UploadFromBytes("a.png", "image/png", nil)
	assert.ErrorIs(t, v.ValidateImageUpload("imageFile", empty, limit), models.ErrValidation)

	byExtension := models.UploadFromBytes("logo.gif", "", []byte("GIF89a"))
	assert.NoError(t, v.ValidateImageUpload("logoFile", byExtension, limit))
}

func TestValidateResumeUpload(t *testing.T) {
	v := NewValidators()
	assert.NoError(t, v.ValidateResumeUpload(models.UploadFromBytes("cv.pdf", "application/pdf", []byte("%PDF")), 1024))
	assert.ErrorIs(t, v.ValidateResumeUpload(models.UploadFromBytes("cv.png", "image/png", pngHeader), 1024), models.ErrValidation)
	assert.ErrorIs(t, v.ValidateResumeUpload(nil, 1024), models.ErrValidation)
}

func TestSchemaValidator(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(SchemaProject, models.ProjectFields{
		Title: "X", Summary: "s", Description: "d", TechStack: []string{"Go"}, Order: 5,
	}))

	err = v.Validate(SchemaProject, models.ProjectFields{Summary: "s", Description: "d"})
	require.ErrorIs(t, err, models.ErrValidation)
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "title")

	assert.ErrorIs(t, v.Validate(SchemaSkill, models.SkillFields{Name: "Go", Category: "Database"}), models.ErrValidation)
	assert.NoError(t, v.Validate(SchemaSkill, models.SkillFields{Name: "Go", Category: models.SkillCategoryLanguage}))

	assert.ErrorIs(t, v.Validate(SchemaContact, models.ContactFields{Name: "A", Email: "nope", Message: "hello there!"}), models.ErrValidation)
	assert.NoError(t, v.Validate(SchemaContact, models.ContactFields{Name: "A", Email: "a@b.dev", Message: "hello there!"}))

	err = v.Validate("missing", struct{}{})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, models.ErrValidation))
}

func TestSchemaValidatorLinksAndOrder(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	project := func(mutate func(*models.ProjectFields)) models.ProjectFields {
		p := models.ProjectFields{Title: "X", Summary: "s", Description: "d", TechStack: []string{"Go"}}
		mutate(&p)
		return p
	}

	tests := []struct {
		name    string
		schema  string
		doc     any
		field   string
		wantErr bool
	}{
		{name: "empty links", schema: SchemaProject, doc: project(func(p *models.ProjectFields) {})},
		{name: "https links", schema: SchemaProject, doc: project(func(p *models.ProjectFields) {
			p.GithubURL = "https://github.com/nasarali03/portfolio"
			p.LiveURL = "http://example.dev"
		})},
		{name: "not a url", schema: SchemaProject, field: "githubUrl", wantErr: true, doc: project(func(p *models.ProjectFields) {
			p.GithubURL = "not a url"
		})},
		{name: "script scheme", schema: SchemaProject, field: "liveUrl", wantErr: true, doc: project(func(p *models.ProjectFields) {
			p.LiveURL = "javascript:alert(1)"
		})},
		{name: "negative order", schema: SchemaProject, field: "order", wantErr: true, doc: project(func(p *models.ProjectFields) {
			p.Order = -7
		})},
		{name: "empty tech stack", schema: SchemaProject, field: "techStack", wantErr: true, doc: project(func(p *models.ProjectFields) {
			p.TechStack = []string{}
		})},
		{name: "certification url", schema: SchemaCertification, field: "url", wantErr: true,
			doc: models.CertificationFields{Name: "CKA", Provider: "CNCF", URL: "nope"}},
		{name: "certification ok", schema: SchemaCertification,
			doc: models.CertificationFields{Name: "CKA", Provider: "CNCF", URL: "https://www.cncf.io/"}},
		{name: "experience negative order", schema: SchemaExperience, field: "order", wantErr: true,
			doc: models.ExperienceFields{Company: "Acme", Title: "Dev", StartDate: "2020", EndDate: "Present", Order: -1}},
		{name: "hero resume url", schema: SchemaHero, field: "resumeUrl", wantErr: true,
			doc: models.HeroFields{Name: "Ali", Title: "Engineer", Intro: "Hi", ResumeURL: "nope"}},
		{name: "hero without resume", schema: SchemaHero,
			doc: models.HeroFields{Name: "Ali", Title: "Engineer", Intro: "Hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.schema, tt.doc)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestMarkdownRenderer(t *testing.T) {
	html, err := NewMarkdownRenderer().Render("# Title\n\n- one\n- two\n\n<script>x</script>")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<li>one</li>")
	assert.False(t, strings.Contains(html, "<script>"))
}
