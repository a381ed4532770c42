package auth

import (
	"errors"
	"time"

	"hostel-booking/config"
	"hostel-booking/httpServices/mailer"
	"hostel-booking/logger"
	userModel "hostel-booking/models/user"
	"hostel-booking/types"
	"hostel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 7 * 24 * time.Hour

type AuthController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Mailer *mailer.Client
}

func NewAuthController(db *gorm.DB, cfg *config.Config, m *mailer.Client) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Mailer: m}
}

// Register creates a participant account.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, err)
	}

	var existing userModel.User
	err := ac.DB.Where("participant_id = ?", req.ParticipantID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "Participant is already registered",
			Status:  fiber.StatusConflict,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing participant", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register",
			Status:  fiber.StatusInternalServerError,
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register",
			Status:  fiber.StatusInternalServerError,
		})
	}

	newUser := userModel.User{
		ID:            uuid.NewString(),
		ParticipantID: req.ParticipantID,
		Name:          req.Name,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Password:      string(hashed),
		Role:          userModel.RoleParticipant,
		Verified:      true,
	}
	if err := ac.DB.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registered successfully",
		Status:  fiber.StatusCreated,
		Data:    newUser,
	})
}

// Login authenticates a participant and issues a JWT.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ErrorResponse(c, err)
	}

	var u userModel.User
	if err := ac.DB.Where("participant_id = ?", req.ParticipantID).First(&u).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid credentials",
			Status:  fiber.StatusUnauthorized,
		})
	}

	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ac.Cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to log in",
			Status:  fiber.StatusInternalServerError,
		})
	}

	go func() {
		subject, html := mailer.LoginAlert(u.Name)
		if err := ac.Mailer.Send(u.Email, subject, html); err != nil {
			logger.Error("Failed to send login alert email", err)
		}
	}()

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged in successfully",
		Status:  fiber.StatusOK,
		Token:   signed,
		Data:    u,
	})
}
