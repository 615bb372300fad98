package handlers

import (
	"strconv"
	"strings"

	"github.com/nasarali03/Portfolio/internal/models"

	"github.com/gofiber/fiber/v3"
)

func isMultipart(c fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

func isForm(c fiber.Ctx) bool {
	return isMultipart(c) || strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationForm)
}

// formReader collects typed form values and their parse errors.
type formReader struct {
	c    fiber.Ctx
	errs *models.ValidationError
}

func newFormReader(c fiber.Ctx) *formReader {
	return &formReader{c: c, errs: &models.ValidationError{}}
}

func (f *formReader) str(key string) string {
	return strings.TrimSpace(f.c.FormValue(key))
}

// list splits a value on sep, dropping blanks.
func (f *formReader) list(key, sep string) []string {
	items := []string{}
	for _, item := range strings.Split(f.c.FormValue(key), sep) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (f *formReader) number(key string) int {
	raw := f.str(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f.errs.Add(key, "must be an integer")
	}
	return n
}

func (f *formReader) err() error {
	if f.errs.HasErrors() {
		return f.errs
	}
	return nil
}

// bindFields reads F from a form body through fromForm, or from JSON.
func bindFields[F any](c fiber.Ctx, fromForm func(*formReader) F) (F, error) {
	if isForm(c) {
		f := newFormReader(c)
		fields := fromForm(f)
		return fields, f.err()
	}

	var fields F
	if err := c.Bind().Body(&fields); err != nil {
		return fields, models.NewValidationError("body", "invalid request body")
	}
	return fields, nil
}

// formUpload returns the named file part, or nil when none was sent.
func formUpload(c fiber.Ctx, field string) *models.Upload {
	if !isMultipart(c) {
		return nil
	}
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil
	}
	if fh.Filename == "" && fh.Size == 0 {
		return nil
	}
	return models.UploadFromFileHeader(fh)
}

func projectFromForm(f *formReader) models.ProjectFields {
	return models.ProjectFields{
		Title:       f.str("title"),
		Summary:     f.str("summary"),
		Description: f.str("description"),
		TechStack:   f.list("techStack", ","),
		GithubURL:   f.str("githubUrl"),
		LiveURL:     f.str("liveUrl"),
		Order:       f.number("order"),
	}
}

func experienceFromForm(f *formReader) models.ExperienceFields {
	return models.ExperienceFields{
		Company:     f.str("company"),
		Title:       f.str("title"),
		StartDate:   f.str("startDate"),
		EndDate:     f.str("endDate"),
		Description: f.list("description", "\n"),
		Order:       f.number("order"),
	}
}

func educationFromForm(f *formReader) models.EducationFields {
	return models.EducationFields{
		Degree:      f.str("degree"),
		Institution: f.str("institution"),
		StartDate:   f.str("startDate"),
		EndDate:     f.str("endDate"),
		Description: f.str("description"),
		Order:       f.number("order"),
	}
}

func certificationFromForm(f *formReader) models.CertificationFields {
	return models.CertificationFields{
		Name:     f.str("name"),
		Provider: f.str("provider"),
		URL:      f.str("url"),
		Order:    f.number("order"),
	}
}

func heroFromForm(f *formReader) models.HeroFields {
	return models.HeroFields{
		Name:      f.str("name"),
		Title:     f.str("title"),
		Intro:     f.str("intro"),
		ResumeURL: f.str("resumeUrl"),
	}
}

func aboutFromForm(f *formReader) models.AboutFields {
	return models.AboutFields{Bio: f.str("bio")}
}

func skillFromForm(f *formReader) models.SkillFields {
	return models.SkillFields{
		Name:     f.str("name"),
		Category: models.SkillCategory(f.str("category")),
	}
}

func contactFromForm(f *formReader) models.ContactFields {
	return models.ContactFields{
		Name:    f.str("name"),
		Email:   f.str("email"),
		Message: f.str("message"),
	}
}

func summaryFromForm(f *formReader) models.SummaryFields {
	return models.SummaryFields{
		Title:       f.str("title"),
		Description: f.str("description"),
	}
}
