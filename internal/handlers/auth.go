package handlers

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

// Locals keys set by the auth middleware.
const (
	localUserID    = "userId"
	localUserName  = "userName"
	localUserEmail = "userEmail"
	localUserImage = "userImage"
)

// RequireAuth verifies the Bearer token minted by the external OAuth
// collaborator and stores the user identity in Locals. Missing or
// invalid tokens get 401.
func RequireAuth(c *fiber.Ctx) error {
	// Test escape hatch: fabricate a user so the authed surface can be
	// exercised without the OAuth provider.
	if os.Getenv("BYPASS_AUTH") == "true" {
		c.Locals(localUserID, uuid.New().String())
		c.Locals(localUserName, "Test Designer")
		return c.Next()
	}

	claims, err := parseBearer(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found",
		})
	}
	storeClaims(c, sub, claims)
	return c.Next()
}

// OptionalAuth resolves the user identity when a valid token is present
// and continues anonymously otherwise. Leaderboard submissions save
// either way; the user link is a bonus, not a requirement.
func OptionalAuth(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	claims, err := parseBearer(c)
	if err != nil {
		log.Printf("Optional auth: token rejected, continuing without user link: %v", err)
		return c.Next()
	}
	if sub, _ := claims["sub"].(string); sub != "" {
		storeClaims(c, sub, claims)
	}
	return c.Next()
}

// AuthedUserID returns the authenticated user id from Locals, if any.
func AuthedUserID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(localUserID).(string)
	return id, ok && id != ""
}

// AuthedUser returns the identity claims stored by the middleware.
func AuthedUser(c *fiber.Ctx) models.ProfileUser {
	name, _ := c.Locals(localUserName).(string)
	email, _ := c.Locals(localUserEmail).(string)
	image, _ := c.Locals(localUserImage).(string)
	if name == "" && email != "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	return models.ProfileUser{Name: name, Email: email, Image: image}
}

func storeClaims(c *fiber.Ctx, sub string, claims jwt.MapClaims) {
	c.Locals(localUserID, sub)
	if name, _ := claims["name"].(string); name != "" {
		c.Locals(localUserName, name)
	}
	if email, _ := claims["email"].(string); email != "" {
		c.Locals(localUserEmail, email)
	}
	if image, _ := claims["picture"].(string); image != "" {
		c.Locals(localUserImage, image)
	}
}

func parseBearer(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization header is required")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("authorization header must be 'Bearer <token>'")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
