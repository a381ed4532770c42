package support

import (
	"time"

	"hostel-booking/httpServices/mailer"
	"hostel-booking/logger"
	supportModel "hostel-booking/models/support"
	userModel "hostel-booking/models/user"
	"hostel-booking/types"
	"hostel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportController struct {
	DB     *gorm.DB
	Mailer *mailer.Client
}

func NewSupportController(db *gorm.DB, m *mailer.Client) *SupportController {
	return &SupportController{DB: db, Mailer: m}
}

// Store opens a ticket for the authenticated participant.
func (ctrl *SupportController) Store(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.SupportCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, err)
	}

	ticket := supportModel.SupportTicket{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Category: req.Category,
		Message:  req.Message,
		Status:   supportModel.StatusOpen,
	}
	if err := ctrl.DB.Create(&ticket).Error; err != nil {
		logger.Error("Failed to create support ticket", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create ticket",
			Status:  fiber.StatusInternalServerError,
		})
	}

	go func() {
		subject, html := mailer.TicketReceived(ticket.Name, ticket.Category)
		if err := ctrl.Mailer.Send(ticket.Email, subject, html); err != nil {
			logger.Error("Failed to send ticket received email", err)
		}
	}()

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Ticket created successfully",
		Status:  fiber.StatusCreated,
		Data:    ticket,
	})
}

// Mine lists the authenticated participant's tickets.
func (ctrl *SupportController) Mine(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var tickets []supportModel.SupportTicket
	if err := ctrl.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error; err != nil {
		logger.Error("Failed to list own tickets", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list tickets",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Tickets fetched successfully",
		Status:  fiber.StatusOK,
		Data:    tickets,
	})
}

// Index lists all tickets, optionally filtered by status. Admin only.
func (ctrl *SupportController) Index(c *fiber.Ctx) error {
	query := ctrl.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var tickets []supportModel.SupportTicket
	if err := query.Find(&tickets).Error; err != nil {
		logger.Error("Failed to list tickets", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to list tickets",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Tickets fetched successfully",
		Status:  fiber.StatusOK,
		Data:    tickets,
	})
}

// Show fetches one ticket. Participants can only see their own.
func (ctrl *SupportController) Show(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Unauthorized",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var ticket supportModel.SupportTicket
	if err := ctrl.DB.Where("id = ?", c.Params("id")).First(&ticket).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Ticket not found",
			Status:  fiber.StatusNotFound,
		})
	}
	if ticket.UserID != userID && utils.RoleFromContext(c) != userModel.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Forbidden",
			Status:  fiber.StatusForbidden,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Ticket fetched successfully",
		Status:  fiber.StatusOK,
		Data:    ticket,
	})
}

// Respond resolves a ticket with an administrative answer and notifies the
// participant by email. Admin only.
func (ctrl *SupportController) Respond(c *fiber.Ctx) error {
	var req types.SupportRespondRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, err)
	}

	var ticket supportModel.SupportTicket
	if err := ctrl.DB.Where("id = ?", req.TicketID).First(&ticket).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "Ticket not found",
			Status:  fiber.StatusNotFound,
		})
	}

	respondedBy := "admin"
	if userID, err := utils.UserIDFromContext(c); err == nil {
		respondedBy = userID
	}

	nowTime := time.Now()
	ticket.Response = &req.Response
	ticket.RespondedBy = &respondedBy
	ticket.RespondedAt = &nowTime
	ticket.Status = supportModel.StatusResolved
	if err := ctrl.DB.Save(&ticket).Error; err != nil {
		logger.Error("Failed to update support ticket", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update ticket",
			Status:  fiber.StatusInternalServerError,
		})
	}

	go func() {
		subject, html := mailer.SupportResponse(ticket.Name, ticket.Category, req.Response)
		if err := ctrl.Mailer.Send(ticket.Email, subject, html); err != nil {
			logger.Error("Failed to send support response email", err)
		}
	}()

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Ticket resolved successfully",
		Status:  fiber.StatusOK,
		Data:    ticket,
	})
}
