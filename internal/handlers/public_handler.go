package handlers

import (
	"context"
	"log"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/service"
	"github.com/nasarali03/Portfolio/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

// PageCache stores rendered public responses per route path.
type PageCache interface {
	GetPage(ctx context.Context, path string) ([]byte, bool)
	SavePage(ctx context.Context, path string, body []byte)
}

type PublicHandler struct {
	portfolio *service.PortfolioService
	contact   *service.ContactService
	cache     PageCache
	markdown  *utils.MarkdownRenderer
	schemas   *utils.SchemaValidator
}

func NewPublicHandler(portfolio *service.PortfolioService, contact *service.ContactService, cache PageCache, schemas *utils.SchemaValidator) *PublicHandler {
	return &PublicHandler{
		portfolio: portfolio,
		contact:   contact,
		cache:     cache,
		markdown:  utils.NewMarkdownRenderer(),
		schemas:   schemas,
	}
}

func (h *PublicHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/portfolio", h.cached(h.GetPortfolio))
	api.Get("/hero", h.cached(h.GetHero))
	api.Get("/about", h.cached(h.GetAbout))
	api.Get("/projects", h.cached(h.GetProjects))
	api.Get("/projects/:id", h.cached(h.GetProject))
	api.Get("/experience", h.cached(h.GetExperience))
	api.Get("/education", h.cached(h.GetEducation))
	api.Get("/certifications", h.cached(h.GetCertifications))

	api.Post("/contact", h.SubmitContact)
}

// fallbackLocal marks a response built from default content.
const fallbackLocal = "contentFallback"

// cached serves a stored copy of a successful response until the path is
// invalidated by a mutation. Default content served during a store outage
// is never stored.
func (h *PublicHandler) cached(next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()
		if body, ok := h.cache.GetPage(c.Context(), path); ok {
			c.Set("X-Cache", "HIT")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.Send(body)
		}

		if err := next(c); err != nil {
			return err
		}
		fallback, _ := c.Locals(fallbackLocal).(bool)
		if c.Response().StatusCode() == fiber.StatusOK && !fallback {
			body := append([]byte(nil), c.Response().Body()...)
			h.cache.SavePage(c.Context(), path, body)
		}
		c.Set("X-Cache", "MISS")
		return nil
	}
}

func sendContent(c fiber.Ctx, data any, fallback bool) error {
	if fallback {
		c.Locals(fallbackLocal, true)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": data,
	})
}

func (h *PublicHandler) GetPortfolio(c fiber.Ctx) error {
	data, fallback := h.portfolio.GetPortfolioData(c.Context())
	return sendContent(c, data, fallback)
}

func (h *PublicHandler) GetHero(c fiber.Ctx) error {
	data, fallback := h.portfolio.GetHero(c.Context())
	return sendContent(c, data, fallback)
}

func (h *PublicHandler) GetAbout(c fiber.Ctx) error {
	data, fallback := h.portfolio.GetAbout(c.Context())
	return sendContent(c, data, fallback)
}

func (h *PublicHandler) GetProjects(c fiber.Ctx) error {
	data, fallback := h.portfolio.GetProjects(c.Context())
	return sendContent(c, data, fallback)
}

type projectDetail struct {
	models.Project
	DescriptionHTML string `json:"descriptionHtml"`
}

func (h *PublicHandler) GetProject(c fiber.Ctx) error {
	project, fallback, err := h.portfolio.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	html, err := h.markdown.Render(project.Description)
	if err != nil {
		log.Printf("Failed to render description of project %s: %v", project.ID, err)
	}

	return sendContent(c, projectDetail{Project: *project, DescriptionHTML: html}, fallback)
}

func (h *PublicHandler) GetExperience(c fiber.Ctx) error {
	data, fallback := h.portfolio.GetExperience(c.Context())
	return sendContent(c, data, fallback)
}

func (h *PublicHandler) GetEducation(c fiber.Ctx) error {
	data, fallback := h.portfolio.GetEducation(c.Context())
	return sendContent(c, data, fallback)
}

func (h *PublicHandler) GetCertifications(c fiber.Ctx) error {
	data, fallback := h.portfolio.GetCertifications(c.Context())
	return sendContent(c, data, fallback)
}

func (h *PublicHandler) SubmitContact(c fiber.Ctx) error {
	fields, err := bindFields(c, contactFromForm)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.schemas.Validate(utils.SchemaContact, fields); err != nil {
		return respondError(c, err)
	}

	msg, err := h.contact.Submit(c.Context(), fields)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent",
		"data": fiber.Map{
			"id": msg.ID,
		},
	})
}
