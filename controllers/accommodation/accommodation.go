package accommodation

import (
	"hostel-booking/logger"
	accommodationModel "hostel-booking/models/accommodation"
	allotmentModel "hostel-booking/models/allotment"
	userModel "hostel-booking/models/user"
	accommodationService "hostel-booking/services/accommodation"
	paymentService "hostel-booking/services/payment"
	"hostel-booking/types"
	"hostel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AccommodationController struct {
	DB       *gorm.DB
	Service  *accommodationService.Service
	Payments *paymentService.Service
}

func NewAccommodationController(db *gorm.DB, service *accommodationService.Service, payments *paymentService.Service) *AccommodationController {
	return &AccommodationController{DB: db, Service: service, Payments: payments}
}

// Store accepts a booking request for the authenticated participant.
func (ctrl *AccommodationController) Store(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.AccommodationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	acco, err := ctrl.Service.Create(userID, req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Booking created, awaiting payment",
		Status:  fiber.StatusCreated,
		Data:    acco,
	})
}

// accommodationWithAllotment stitches the allotment (if any) onto a booking
// for the admin listing.
type accommodationWithAllotment struct {
	accommodationModel.Accommodation
	Allotment *allotmentModel.Allotment `json:"allotment,omitempty"`
}

// Index lists all bookings with their allotments. Admin only.
func (ctrl *AccommodationController) Index(c *fiber.Ctx) error {
	query := ctrl.DB.Preload("User").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var accos []accommodationModel.Accommodation
	if err := query.Find(&accos).Error; err != nil {
		logger.Error("Failed to list accommodations", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list accommodations",
			Status:  fiber.StatusInternalServerError,
		})
	}

	var allots []allotmentModel.Allotment
	if err := ctrl.DB.Preload("Room").Find(&allots).Error; err != nil {
		logger.Error("Failed to list allotments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list accommodations",
			Status:  fiber.StatusInternalServerError,
		})
	}

	byAccommodation := make(map[string]*allotmentModel.Allotment, len(allots))
	for i := range allots {
		byAccommodation[allots[i].AccommodationID] = &allots[i]
	}

	result := make([]accommodationWithAllotment, 0, len(accos))
	for _, acco := range accos {
		result = append(result, accommodationWithAllotment{
			Accommodation: acco,
			Allotment:     byAccommodation[acco.ID],
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Accommodations fetched successfully",
		Status:  fiber.StatusOK,
		Data:    result,
	})
}

// Mine lists the authenticated participant's bookings.
func (ctrl *AccommodationController) Mine(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var accos []accommodationModel.Accommodation
	if err := ctrl.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&accos).Error; err != nil {
		logger.Error("Failed to list own accommodations", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list accommodations",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Accommodations fetched successfully",
		Status:  fiber.StatusOK,
		Data:    accos,
	})
}

// Show fetches one booking. Participants can only see their own.
func (ctrl *AccommodationController) Show(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var acco accommodationModel.Accommodation
	if err := ctrl.DB.Preload("User").Where("id = ?", c.Params("id")).First(&acco).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Accommodation not found",
			Status:  fiber.StatusNotFound,
		})
	}

	if acco.UserID != userID && utils.RoleFromContext(c) != userModel.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Forbidden",
			Status:  fiber.StatusForbidden,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Accommodation fetched successfully",
		Status:  fiber.StatusOK,
		Data:    acco,
	})
}

// Poll reports the payment status of an order so the frontend can wait for
// confirmation.
func (ctrl *AccommodationController) Poll(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var acco accommodationModel.Accommodation
	if err := ctrl.DB.Where("order_id = ?", c.Params("orderId")).First(&acco).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Order not found",
			Status:  fiber.StatusNotFound,
		})
	}
	if acco.UserID != userID && utils.RoleFromContext(c) != userModel.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Forbidden",
			Status:  fiber.StatusForbidden,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Payment status fetched",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"order_id": acco.OrderID,
			"status":   acco.Status,
			"paid":     acco.Paid,
		},
	})
}

// VerifyPayment confirms a gateway callback and flips the booking to paid.
func (ctrl *AccommodationController) VerifyPayment(c *fiber.Ctx) error {
	var req types.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	acco, err := ctrl.Payments.Verify(req)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Payment verified successfully",
		Status:  fiber.StatusOK,
		Data:    acco,
	})
}
