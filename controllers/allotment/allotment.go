package allotment

import (
	"hostel-booking/logger"
	allotmentModel "hostel-booking/models/allotment"
	allotmentService "hostel-booking/services/allotment"
	"hostel-booking/types"
	"hostel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AllotmentController struct {
	DB      *gorm.DB
	Service *allotmentService.Service
}

func NewAllotmentController(db *gorm.DB, service *allotmentService.Service) *AllotmentController {
	return &AllotmentController{DB: db, Service: service}
}

// Store assigns a paid booking to a room. Admin only.
func (ctrl *AllotmentController) Store(c *fiber.Ctx) error {
	var req types.AllotmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	allottedBy := "admin"
	if userID, err := utils.UserIDFromContext(c); err == nil {
		allottedBy = userID
	}

	allot, err := ctrl.Service.Allot(req, allottedBy)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Room allotted successfully",
		Status:  fiber.StatusCreated,
		Data:    allot,
	})
}

// Index lists all allotments with their booking and room. Admin only.
func (ctrl *AllotmentController) Index(c *fiber.Ctx) error {
	var allots []allotmentModel.Allotment
	if err := ctrl.DB.Preload("Accommodation").Preload("Room").Order("created_at DESC").Find(&allots).Error; err != nil {
		logger.Error("Failed to list allotments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list allotments",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Allotments fetched successfully",
		Status:  fiber.StatusOK,
		Data:    allots,
	})
}

// CheckInOut records an arrival or departure for a booking. Admin only.
func (ctrl *AllotmentController) CheckInOut(c *fiber.Ctx) error {
	var req types.CheckInOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	acco, err := ctrl.Service.CheckInOut(req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Stay status updated",
		Status:  fiber.StatusOK,
		Data:    acco,
	})
}
