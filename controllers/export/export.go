package export

import (
	"hostel-booking/logger"
	accommodationModel "hostel-booking/models/accommodation"
	paymentModel "hostel-booking/models/payment"
	roomModel "hostel-booking/models/room"
	exportService "hostel-booking/services/export"
	"hostel-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

func (ctrl *ExportController) sendCSV(c *fiber.Ctx, filename, body string) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).SendString(body)
}

func (ctrl *ExportController) fail(c *fiber.Ctx, msg string, err error) error {
	logger.Error(msg, err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Message: msg,
		Status:  fiber.StatusInternalServerError,
	})
}

// Accommodations downloads all bookings as CSV. Admin only.
func (ctrl *ExportController) Accommodations(c *fiber.Ctx) error {
	var accos []accommodationModel.Accommodation
	if err := ctrl.DB.Preload("User").Order("created_at ASC").Find(&accos).Error; err != nil {
		return ctrl.fail(c, "Failed to export accommodations", err)
	}

	body, err := exportService.AccommodationsCSV(accos)
	if err != nil {
		return ctrl.fail(c, "Failed to export accommodations", err)
	}
	return ctrl.sendCSV(c, "accommodations.csv", body)
}

// Rooms downloads the room inventory as CSV. Admin only.
func (ctrl *ExportController) Rooms(c *fiber.Ctx) error {
	var rooms []roomModel.Room
	if err := ctrl.DB.Order("hostel_name ASC, room_number ASC").Find(&rooms).Error; err != nil {
		return ctrl.fail(c, "Failed to export rooms", err)
	}

	body, err := exportService.RoomsCSV(rooms)
	if err != nil {
		return ctrl.fail(c, "Failed to export rooms", err)
	}
	return ctrl.sendCSV(c, "rooms.csv", body)
}

// Payments downloads the payment audit trail as CSV. Admin only.
func (ctrl *ExportController) Payments(c *fiber.Ctx) error {
	var txns []paymentModel.PaymentTransaction
	if err := ctrl.DB.Order("created_at ASC").Find(&txns).Error; err != nil {
		return ctrl.fail(c, "Failed to export payments", err)
	}

	body, err := exportService.PaymentsCSV(txns)
	if err != nil {
		return ctrl.fail(c, "Failed to export payments", err)
	}
	return ctrl.sendCSV(c, "payments.csv", body)
}
