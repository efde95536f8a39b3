package controller

import (
	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPrescriptionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type prescriptionController struct {
	prescriptionService service.IPrescriptionService
}

func NewPrescriptionController(prescriptionService service.IPrescriptionService) IPrescriptionController {
	return &prescriptionController{prescriptionService: prescriptionService}
}

func (c *prescriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prescription/v1")
	h.Use(serverutils.JwtMiddleware())
	doctorOnly := serverutils.RequireRole(string(entity.UserRoleDoctor))
	h.Post("", doctorOnly, c.Create)
	h.Get("", c.ListMine)
	h.Get(":id", c.Show)
	h.Put(":id", doctorOnly, c.Update)
}

func (c *prescriptionController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreatePrescriptionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.prescriptionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Prescription created", res)
}

func (c *prescriptionController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid prescription id")
	}

	var req dto.UpdatePrescriptionRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.prescriptionService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Prescription updated", res)
}

func (c *prescriptionController) ListMine(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	res, err := c.prescriptionService.ListMine(ctx.Context(), userId, entity.UserRole(role))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list prescriptions", res)
}

func (c *prescriptionController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid prescription id")
	}

	res, err := c.prescriptionService.GetOne(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show prescription", res)
}
