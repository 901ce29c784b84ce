package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"shelfwise/database"
	"shelfwise/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// HandleGetProfile handles fetching the current merchant's profile
func HandleGetProfile(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	userID := c.Locals("userID").(string)

	var userProfile models.User
	query := "SELECT id, name, email, phone, role, is_active, created_at, updated_at FROM users WHERE id = $1"

	err := db.QueryRow(ctx, query, userID).Scan(&userProfile.ID, &userProfile.Name, &userProfile.Email, &userProfile.Phone, &userProfile.Role, &userProfile.IsActive, &userProfile.CreatedAt, &userProfile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": userProfile})
}

// HandleUpdateProfile handles updating the current merchant's profile
func HandleUpdateProfile(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	userID := c.Locals("userID").(string)

	var req struct {
		Name     string `json:"name,omitempty"`
		Phone    string `json:"phone,omitempty"`
		Password string `json:"password,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var setClauses []string
	args := make([]interface{}, 0)
	paramIndex := 1

	if req.Name != "" {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", paramIndex))
		args = append(args, req.Name)
		paramIndex++
	}

	if req.Phone != "" {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", paramIndex))
		args = append(args, req.Phone)
		paramIndex++
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to hash password"})
		}
		setClauses = append(setClauses, fmt.Sprintf("password_hash = $%d", paramIndex))
		args = append(args, string(hashedPassword))
		paramIndex++
	}

	if len(setClauses) == 0 {
		// Nothing to update, so just return the current profile
		return HandleGetProfile(c)
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING id, name, email, phone, role, is_active, created_at, updated_at", strings.Join(setClauses, ", "), paramIndex)
	args = append(args, userID)

	var updatedUser models.User
	err := db.QueryRow(ctx, query, args...).Scan(&updatedUser.ID, &updatedUser.Name, &updatedUser.Email, &updatedUser.Phone, &updatedUser.Role, &updatedUser.IsActive, &updatedUser.CreatedAt, &updatedUser.UpdatedAt)
	if err != nil {
		log.Printf("Error updating profile for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": updatedUser})
}
