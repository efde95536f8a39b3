package controller

import (
	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetPatientProfile(ctx *fiber.Ctx) error
	UpdatePatientProfile(ctx *fiber.Ctx) error
	GetDoctorProfile(ctx *fiber.Ctx) error
	UpdateDoctorProfile(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{profileService: profileService}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(serverutils.JwtMiddleware())
	h.Get("/patient", serverutils.RequireRole(string(entity.UserRolePatient)), c.GetPatientProfile)
	h.Put("/patient", serverutils.RequireRole(string(entity.UserRolePatient)), c.UpdatePatientProfile)
	h.Get("/doctor", serverutils.RequireRole(string(entity.UserRoleDoctor)), c.GetDoctorProfile)
	h.Put("/doctor", serverutils.RequireRole(string(entity.UserRoleDoctor)), c.UpdateDoctorProfile)
}

func (c *profileController) GetPatientProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.GetPatientProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success get patient profile", res)
}

func (c *profileController) UpdatePatientProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdatePatientProfileRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.profileService.UpdatePatientProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success update patient profile", res)
}

func (c *profileController) GetDoctorProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.GetDoctorProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success get doctor profile", res)
}

func (c *profileController) UpdateDoctorProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateDoctorProfileRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.profileService.UpdateDoctorProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success update doctor profile", res)
}
