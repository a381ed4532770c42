package dashboard

import (
	"hostel-booking/logger"
	accommodationModel "hostel-booking/models/accommodation"
	paymentModel "hostel-booking/models/payment"
	roomModel "hostel-booking/models/room"
	supportModel "hostel-booking/models/support"
	"hostel-booking/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (ctrl *DashboardController) fail(c *fiber.Ctx, msg string, err error) error {
	logger.Error(msg, err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Message: msg,
		Status:  fiber.StatusInternalServerError,
	})
}

// Stats aggregates the headline numbers for the admin dashboard.
func (ctrl *DashboardController) Stats(c *fiber.Ctx) error {
	var totalBookings, paidBookings, checkedIn, checkedOut int64
	var openTickets int64
	var revenue float64

	accoModel := ctrl.DB.Model(&accommodationModel.Accommodation{})
	if err := accoModel.Count(&totalBookings).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate bookings", err)
	}
	if err := ctrl.DB.Model(&accommodationModel.Accommodation{}).Where("paid = ?", true).Count(&paidBookings).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate bookings", err)
	}
	if err := ctrl.DB.Model(&accommodationModel.Accommodation{}).Where("status = ?", accommodationModel.StatusCheckedIn).Count(&checkedIn).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate bookings", err)
	}
	if err := ctrl.DB.Model(&accommodationModel.Accommodation{}).Where("status = ?", accommodationModel.StatusCheckedOut).Count(&checkedOut).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate bookings", err)
	}
	// Revenue comes from the audit trail, not the bookings, so failed and
	// replayed verifications can never skew it.
	if err := ctrl.DB.Table("payment_transactions").Where("status = ?", paymentModel.StatusSuccess).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate revenue", err)
	}

	var genders []genderCount
	if err := ctrl.DB.Model(&accommodationModel.Accommodation{}).
		Select("gender, COUNT(*) AS count").
		Group("gender").
		Scan(&genders).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate genders", err)
	}
	if err := ctrl.DB.Model(&supportModel.SupportTicket{}).Where("status = ?", supportModel.StatusOpen).Count(&openTickets).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate tickets", err)
	}

	var beds struct {
		Capacity int
		Occupied int
	}
	if err := ctrl.DB.Model(&roomModel.Room{}).
		Select("COALESCE(SUM(capacity), 0) AS capacity, COALESCE(SUM(occupied), 0) AS occupied").
		Scan(&beds).Error; err != nil {
		return ctrl.fail(c, "Failed to aggregate rooms", err)
	}

	occupancyRate := 0.0
	if beds.Capacity > 0 {
		occupancyRate = float64(beds.Occupied) / float64(beds.Capacity)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dashboard stats fetched successfully",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"total_bookings":   totalBookings,
			"paid_bookings":    paidBookings,
			"pending_payments": totalBookings - paidBookings,
			"checked_in":       checkedIn,
			"checked_out":      checkedOut,
			"revenue":          revenue,
			"gender_counts":    genders,
			"total_beds":       beds.Capacity,
			"occupied_beds":    beds.Occupied,
			"occupancy_rate":   occupancyRate,
			"open_tickets":     openTickets,
		},
	})
}

type genderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

type hostelUtilization struct {
	HostelName string `json:"hostel_name"`
	Rooms      int    `json:"rooms"`
	Capacity   int    `json:"capacity"`
	Occupied   int    `json:"occupied"`
}

// HostelUtilization reports bed usage per hostel.
func (ctrl *DashboardController) HostelUtilization(c *fiber.Ctx) error {
	var rows []hostelUtilization
	err := ctrl.DB.Model(&roomModel.Room{}).
		Select("hostel_name, COUNT(*) AS rooms, COALESCE(SUM(capacity), 0) AS capacity, COALESCE(SUM(occupied), 0) AS occupied").
		Group("hostel_name").
		Order("hostel_name ASC").
		Scan(&rows).Error
	if err != nil {
		return ctrl.fail(c, "Failed to aggregate hostel utilization", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Hostel utilization fetched successfully",
		Status:  fiber.StatusOK,
		Data:    rows,
	})
}

type paymentBreakdown struct {
	Day    string  `json:"day"`
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// PaymentStats reports the payment audit trail per day and outcome.
func (ctrl *DashboardController) PaymentStats(c *fiber.Ctx) error {
	var rows []paymentBreakdown
	err := ctrl.DB.Table("payment_transactions").
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS day, status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Group("day, status").
		Order("day ASC, status ASC").
		Scan(&rows).Error
	if err != nil {
		return ctrl.fail(c, "Failed to aggregate payments", err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Payment stats fetched successfully",
		Status:  fiber.StatusOK,
		Data:    rows,
	})
}
