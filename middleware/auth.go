package middleware

import (
	"fmt"
	"strings"

	"hostel-booking/config"
	userModel "hostel-booking/models/user"
	"hostel-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func parseBearer(c *fiber.Ctx, secret string) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header missing")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid token format")
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Protected requires a valid bearer token and stores its claims on the
// request.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, cfg.JWTSecret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Unauthorized: " + err.Error(),
				Status:  fiber.StatusUnauthorized,
			})
		}
		c.Locals("user", claims)
		return c.Next()
	}
}

// AdminOnly admits requests carrying the admin password header or a bearer
// token with the admin role. It does not require Protected to run first.
func AdminOnly(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminPassword != "" && c.Get("X-Admin-Password") == cfg.AdminPassword {
			return c.Next()
		}

		claims, err := parseBearer(c, cfg.JWTSecret)
		if err == nil {
			if role, _ := claims["role"].(string); role == userModel.RoleAdmin {
				c.Locals("user", claims)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Forbidden: admin access required",
			Status:  fiber.StatusForbidden,
		})
	}
}
