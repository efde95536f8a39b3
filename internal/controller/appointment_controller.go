package controller

import (
	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAppointmentController interface {
	RegisterRoutes(r fiber.Router)
	Book(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type appointmentController struct {
	appointmentService service.IAppointmentService
}

func NewAppointmentController(appointmentService service.IAppointmentService) IAppointmentController {
	return &appointmentController{appointmentService: appointmentService}
}

func (c *appointmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/appointment/v1")
	h.Use(serverutils.JwtMiddleware())
	h.Post("", serverutils.RequireRole(string(entity.UserRolePatient)), c.Book)
	h.Get("", c.ListMine)
	h.Get(":id", c.Show)
	h.Patch(":id/status", c.UpdateStatus)
}

func (c *appointmentController) Book(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.BookAppointmentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.appointmentService.Book(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Appointment booked", res)
}

func (c *appointmentController) UpdateStatus(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid appointment id")
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.appointmentService.UpdateStatus(ctx.Context(), userId, entity.UserRole(role), id, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Appointment status updated", res)
}

func (c *appointmentController) ListMine(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	res, err := c.appointmentService.ListMine(ctx.Context(), userId, entity.UserRole(role))
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list appointments", res)
}

func (c *appointmentController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("invalid appointment id")
	}

	res, err := c.appointmentService.GetOne(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success show appointment", res)
}
