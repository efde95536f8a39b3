package controller

import (
	"telehealth-be/internal/pkg/serverutils"
	"telehealth-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDoctorController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type doctorController struct {
	doctorService service.IDoctorService
}

func NewDoctorController(doctorService service.IDoctorService) IDoctorController {
	return &doctorController{doctorService: doctorService}
}

func (c *doctorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/doctor/v1")
	h.Use(serverutils.JwtMiddleware())
	h.Get("", c.List)
}

func (c *doctorController) List(ctx *fiber.Ctx) error {
	specialty := ctx.Query("specialty")
	name := ctx.Query("name")

	res, err := c.doctorService.ListDoctors(ctx.Context(), specialty, name)
	if err != nil {
		return err
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Success list doctors", res)
}
