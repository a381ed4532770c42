package room

import (
	"errors"

	"hostel-booking/logger"
	allotmentModel "hostel-booking/models/allotment"
	roomModel "hostel-booking/models/room"
	"hostel-booking/types"
	"hostel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

// Index lists the room inventory, optionally filtered by hostel or
// availability.
func (ctrl *RoomController) Index(c *fiber.Ctx) error {
	query := ctrl.DB.Order("hostel_name ASC, room_number ASC")
	if hostel := c.Query("hostel"); hostel != "" {
		query = query.Where("hostel_name = ?", hostel)
	}
	if c.Query("available") == "true" {
		query = query.Where("available = ?", true)
	}

	var rooms []roomModel.Room
	if err := query.Find(&rooms).Error; err != nil {
		logger.Error("Failed to list rooms", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list rooms",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Rooms fetched successfully",
		Status:  fiber.StatusOK,
		Data:    rooms,
	})
}

// Show fetches one room.
func (ctrl *RoomController) Show(c *fiber.Ctx) error {
	var r roomModel.Room
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&r).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Room not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Room fetched successfully",
		Status:  fiber.StatusOK,
		Data:    r,
	})
}

// Store adds a room to the inventory. Admin only.
func (ctrl *RoomController) Store(c *fiber.Ctx) error {
	var req types.RoomCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, err)
	}

	var existing roomModel.Room
	err := ctrl.DB.Where("room_number = ? AND hostel_name = ?", req.RoomNumber, req.HostelName).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Room already exists in this hostel",
			Status:  fiber.StatusConflict,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create room",
			Status:  fiber.StatusInternalServerError,
		})
	}

	r := roomModel.Room{
		ID:         uuid.NewString(),
		RoomNumber: req.RoomNumber,
		HostelName: req.HostelName,
		RoomType:   req.RoomType,
		Capacity:   req.Capacity,
		Occupied:   0,
		Available:  true,
	}
	if err := ctrl.DB.Create(&r).Error; err != nil {
		logger.Error("Failed to create room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create room",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Room created successfully",
		Status:  fiber.StatusCreated,
		Data:    r,
	})
}

// Delete removes a room that has never been allotted. Admin only.
func (ctrl *RoomController) Delete(c *fiber.Ctx) error {
	roomID := c.Params("id")

	var r roomModel.Room
	if err := ctrl.DB.Where("id = ?", roomID).First(&r).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Room not found",
			Status:  fiber.StatusNotFound,
		})
	}

	var allotments int64
	if err := ctrl.DB.Model(&allotmentModel.Allotment{}).Where("room_id = ?", roomID).Count(&allotments).Error; err != nil {
		logger.Error("Failed to check room allotments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete room",
			Status:  fiber.StatusInternalServerError,
		})
	}
	if allotments > 0 {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Cannot delete a room with existing allotments",
			Status:  fiber.StatusConflict,
		})
	}

	if err := ctrl.DB.Delete(&r).Error; err != nil {
		logger.Error("Failed to delete room", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to delete room",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Room deleted successfully",
		Status:  fiber.StatusOK,
	})
}
