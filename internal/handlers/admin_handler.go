package handlers

import (
	"context"

	"github.com/nasarali03/Portfolio/internal/models"
	"github.com/nasarali03/Portfolio/internal/service"
	"github.com/nasarali03/Portfolio/pkg/utils"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	content       *service.ContentService
	dashboard     *service.DashboardService
	resumes       *service.ResumeService
	summaries     *service.SummaryService
	contact       *service.ContactService
	schemas       *utils.SchemaValidator
	validators    *utils.Validators
	maxImageSize  int64
	maxResumeSize int64
}

type AdminHandlerConfig struct {
	MaxImageSize  int64
	MaxResumeSize int64
}

func NewAdminHandler(
	content *service.ContentService,
	dashboard *service.DashboardService,
	resumes *service.ResumeService,
	summaries *service.SummaryService,
	contact *service.ContactService,
	schemas *utils.SchemaValidator,
	cfg AdminHandlerConfig,
) *AdminHandler {
	return &AdminHandler{
		content:       content,
		dashboard:     dashboard,
		resumes:       resumes,
		summaries:     summaries,
		contact:       contact,
		schemas:       schemas,
		validators:    utils.NewValidators(),
		maxImageSize:  cfg.MaxImageSize,
		maxResumeSize: cfg.MaxResumeSize,
	}
}

// RegisterRoutes mounts the admin API behind guard.
func (h *AdminHandler) RegisterRoutes(app *fiber.App, guard fiber.Handler) {
	admin := app.Group("/admin/api")
	admin.Use(guard)

	admin.Get("/dashboard", h.GetDashboard)
	admin.Get("/images/audit", h.AuditImages)
	admin.Post("/projects/summary", h.GenerateSummary)

	registerEntity(admin.Group("/projects"), h, entityRoutes[models.ProjectFields, models.Project]{
		schema:    utils.SchemaProject,
		fileField: "imageFile",
		fromForm:  projectFromForm,
		list:      h.content.ListProjects,
		get:       h.content.GetProject,
		upsert:    h.content.UpsertProject,
		remove:    h.content.DeleteProject,
	})
	registerEntity(admin.Group("/experience"), h, entityRoutes[models.ExperienceFields, models.Experience]{
		schema:    utils.SchemaExperience,
		fileField: "logoFile",
		fromForm:  experienceFromForm,
		list:      h.content.ListExperience,
		get:       h.content.GetExperience,
		upsert:    h.content.UpsertExperience,
		remove:    h.content.DeleteExperience,
	})
	registerEntity(admin.Group("/education"), h, entityRoutes[models.EducationFields, models.Education]{
		schema:   utils.SchemaEducation,
		fromForm: educationFromForm,
		list:     h.content.ListEducation,
		get:      h.content.GetEducation,
		upsert:   h.content.UpsertEducation,
		remove:   h.content.DeleteEducation,
	})
	registerEntity(admin.Group("/certifications"), h, entityRoutes[models.CertificationFields, models.Certification]{
		schema:   utils.SchemaCertification,
		fromForm: certificationFromForm,
		list:     h.content.ListCertifications,
		get:      h.content.GetCertification,
		upsert:   h.content.UpsertCertification,
		remove:   h.content.DeleteCertification,
	})

	admin.Get("/hero", h.GetHero)
	admin.Put("/hero", h.UpdateHero)
	admin.Post("/hero/resume", h.UploadResume)
	admin.Get("/about", h.GetAbout)
	admin.Put("/about", h.UpdateAbout)

	admin.Post("/skills", h.CreateSkill)
	admin.Put("/skills/:id", h.UpdateSkill)
	admin.Delete("/skills/:id", h.DeleteSkill)

	admin.Get("/messages", h.ListMessages)
	admin.Delete("/messages/:id", h.DeleteMessage)
}

// entityRoutes wires one ordered collection to its service operations.
type entityRoutes[F, T any] struct {
	schema    string
	fileField string
	fromForm  func(*formReader) F
	list      func(ctx context.Context) ([]T, error)
	get       func(ctx context.Context, id string) (*T, error)
	upsert    func(ctx context.Context, in models.Input[F]) (*T, error)
	remove    func(ctx context.Context, id string) error
}

func registerEntity[F, T any](router fiber.Router, h *AdminHandler, r entityRoutes[F, T]) {
	router.Get("/", func(c fiber.Ctx) error {
		items, err := r.list(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": items})
	})

	router.Get("/:id", func(c fiber.Ctx) error {
		item, err := r.get(c.Context(), c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": item})
	})

	router.Post("/", func(c fiber.Ctx) error {
		fields, upload, err := readEntityForm(c, h, r)
		if err != nil {
			return respondError(c, err)
		}
		item, err := r.upsert(c.Context(), models.CreateInput(fields, upload))
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Created successfully",
			"data":    item,
		})
	})

	router.Put("/:id", func(c fiber.Ctx) error {
		fields, upload, err := readEntityForm(c, h, r)
		if err != nil {
			return respondError(c, err)
		}
		in, err := models.UpdateInput(c.Params("id"), fields, upload)
		if err != nil {
			return respondError(c, err)
		}
		item, err := r.upsert(c.Context(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Updated successfully",
			"data":    item,
		})
	})

	router.Delete("/:id", func(c fiber.Ctx) error {
		if err := r.remove(c.Context(), c.Params("id")); err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Deleted successfully",
		})
	})
}

func readEntityForm[F, T any](c fiber.Ctx, h *AdminHandler, r entityRoutes[F, T]) (F, *models.Upload, error) {
	fields, err := bindFields(c, r.fromForm)
	if err != nil {
		return fields, nil, err
	}
	if err := h.schemas.Validate(r.schema, fields); err != nil {
		return fields, nil, err
	}

	var upload *models.Upload
	if r.fileField != "" {
		upload = formUpload(c, r.fileField)
		if err := h.validators.ValidateImageUpload(r.fileField, upload, h.maxImageSize); err != nil {
			return fields, nil, err
		}
	}
	return fields, upload, nil
}

// GenerateSummary drafts a project card summary from a title and description.
func (h *AdminHandler) GenerateSummary(c fiber.Ctx) error {
	fields, err := bindFields(c, summaryFromForm)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.schemas.Validate(utils.SchemaSummary, fields); err != nil {
		return respondError(c, err)
	}

	summary, err := h.summaries.GenerateSummary(c.Context(), fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{"summary": summary},
	})
}

func (h *AdminHandler) GetDashboard(c fiber.Ctx) error {
	dashboard, err := h.dashboard.GetDashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": dashboard})
}

func (h *AdminHandler) AuditImages(c fiber.Ctx) error {
	audit, err := h.dashboard.AuditImages(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": audit})
}

func (h *AdminHandler) GetHero(c fiber.Ctx) error {
	hero, err := h.content.GetHero(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": hero})
}

func (h *AdminHandler) UpdateHero(c fiber.Ctx) error {
	fields, err := bindFields(c, heroFromForm)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.schemas.Validate(utils.SchemaHero, fields); err != nil {
		return respondError(c, err)
	}
	upload := formUpload(c, "profileFile")
	if err := h.validators.ValidateImageUpload("profileFile", upload, h.maxImageSize); err != nil {
		return respondError(c, err)
	}

	hero, err := h.content.UpdateHero(c.Context(), fields, upload)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Hero section updated",
		"data":    hero,
	})
}

func (h *AdminHandler) UploadResume(c fiber.Ctx) error {
	if !h.resumes.Enabled() {
		return respondError(c, service.ErrResumeStorageOff)
	}
	upload := formUpload(c, "resumeFile")
	if err := h.validators.ValidateResumeUpload(upload, h.maxResumeSize); err != nil {
		return respondError(c, err)
	}

	hero, err := h.resumes.UploadResume(c.Context(), upload)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Resume uploaded",
		"data":    hero,
	})
}

func (h *AdminHandler) GetAbout(c fiber.Ctx) error {
	about, err := h.content.GetAbout(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": about})
}

func (h *AdminHandler) UpdateAbout(c fiber.Ctx) error {
	fields, err := bindFields(c, aboutFromForm)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.schemas.Validate(utils.SchemaAbout, fields); err != nil {
		return respondError(c, err)
	}
	upload := formUpload(c, "profileFile")
	if err := h.validators.ValidateImageUpload("profileFile", upload, h.maxImageSize); err != nil {
		return respondError(c, err)
	}

	about, err := h.content.UpdateAbout(c.Context(), fields, upload)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "About section updated",
		"data":    about,
	})
}

func (h *AdminHandler) readSkill(c fiber.Ctx) (models.SkillFields, error) {
	fields, err := bindFields(c, skillFromForm)
	if err != nil {
		return fields, err
	}
	return fields, h.schemas.Validate(utils.SchemaSkill, fields)
}

func (h *AdminHandler) CreateSkill(c fiber.Ctx) error {
	fields, err := h.readSkill(c)
	if err != nil {
		return respondError(c, err)
	}
	skill, err := h.content.UpsertSkill(c.Context(), models.CreateInput(fields, nil))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Skill added",
		"data":    skill,
	})
}

func (h *AdminHandler) UpdateSkill(c fiber.Ctx) error {
	fields, err := h.readSkill(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := models.UpdateInput(c.Params("id"), fields, nil)
	if err != nil {
		return respondError(c, err)
	}
	skill, err := h.content.UpsertSkill(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Skill updated",
		"data":    skill,
	})
}

func (h *AdminHandler) DeleteSkill(c fiber.Ctx) error {
	if err := h.content.DeleteSkill(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Skill deleted",
	})
}

func (h *AdminHandler) ListMessages(c fiber.Ctx) error {
	messages, err := h.contact.ListMessages(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": messages})
}

func (h *AdminHandler) DeleteMessage(c fiber.Ctx) error {
	if err := h.contact.DeleteMessage(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Message deleted",
	})
}
