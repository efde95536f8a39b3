package controller

import (
	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMedicalRecordController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Share(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type medicalRecordController struct {
	recordService service.IMedicalRecordService
}

func NewMedicalRecordController(recordService service.IMedicalRecordService) IMedicalRecordController {
	return &medicalRecordController{recordService: recordService}
}

func (c *medicalRecordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/medical-record/v1")
	h.Use(serverutils.JwtMiddleware())
	doctorOnly := serverutils.RequireRole(string(entity.UserRoleDoctor))
	h.Post("", doctorOnly, c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", doctorOnly, c.Update)
	h.Patch(":id/share", doctorOnly, c.Share)
	h.Delete(":id", doctorOnly, c.Delete)
}

func (c *medicalRecordController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateMedicalRecordRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.recordService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Medical record created", res)
}

func (c *medicalRecordController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid record id")
	}

	var req dto.UpdateMedicalRecordRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.recordService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medical record updated", res)
}

func (c *medicalRecordController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid record id")
	}

	if err := c.recordService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medical record deleted", nil)
}

func (c *medicalRecordController) Share(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid record id")
	}

	var req dto.ShareMedicalRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("invalid request body")
	}

	res, err := c.recordService.Share(ctx.Context(), userId, id, req.Shared)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Medical record sharing updated", res)
}

func (c *medicalRecordController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	if entity.UserRole(role) == entity.UserRoleDoctor {
		var patientId *uuid.UUID
		if raw := ctx.Query("patient_id"); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return serverutils.NewBadRequestError("invalid patient_id")
			}
			patientId = &parsed
		}
		res, err := c.recordService.ListForDoctor(ctx.Context(), userId, patientId)
		if err != nil {
			return err
		}
		return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list medical records", res)
	}

	res, err := c.recordService.ListForPatient(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list medical records", res)
}

func (c *medicalRecordController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid record id")
	}

	res, err := c.recordService.GetOne(ctx.Context(), userId, entity.UserRole(role), id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show medical record", res)
}
