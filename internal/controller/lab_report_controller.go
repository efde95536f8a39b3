package controller

import (
	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILabReportController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type labReportController struct {
	labReportService service.ILabReportService
}

func NewLabReportController(labReportService service.ILabReportService) ILabReportController {
	return &labReportController{labReportService: labReportService}
}

func (c *labReportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/lab-report/v1")
	h.Use(serverutils.JwtMiddleware())
	patientOnly := serverutils.RequireRole(string(entity.UserRolePatient))
	h.Post("", patientOnly, c.Upload)
	h.Get("", patientOnly, c.List)
	h.Get(":id", c.Show)
	h.Delete(":id", patientOnly, c.Delete)
}

func (c *labReportController) Upload(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UploadLabReportRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.labReportService.Upload(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Lab report uploaded", res)
}

func (c *labReportController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.labReportService.ListForPatient(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list lab reports", res)
}

func (c *labReportController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid lab report id")
	}

	res, err := c.labReportService.GetOne(ctx.Context(), userId, entity.UserRole(role), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show lab report", res)
}

func (c *labReportController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid lab report id")
	}

	if err := c.labReportService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Lab report deleted", nil)
}
