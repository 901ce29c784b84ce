package handlers

import (
	"context"
	"log"
	"strconv"

	"shelfwise/database"
	"shelfwise/models"
	"shelfwise/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleGetNotifications handles fetching a paginated list of notifications.
func HandleGetNotifications(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	recipientID := c.Locals("userID").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))
	offset := (page - 1) * pageSize

	// Get total count
	var totalCount int
	countQuery := "SELECT COUNT(*) FROM notifications WHERE recipient_user_id = $1"
	err := db.QueryRow(ctx, countQuery, recipientID).Scan(&totalCount)
	if err != nil {
		log.Printf("Error counting notifications: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	// Get paginated notifications
	query := `
		SELECT id, recipient_user_id, title, message, notification_type, related_entity_id, related_entity_type, is_read, created_at
		FROM notifications
		WHERE recipient_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := db.Query(ctx, query, recipientID, pageSize, offset)
	if err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.RecipientUserID, &n.Title, &n.Message, &n.Type, &n.RelatedEntityID, &n.RelatedEntityType, &n.IsRead, &n.CreatedAt); err != nil {
			log.Printf("Error scanning notification: %v", err)
			continue
		}
		notifications = append(notifications, n)
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       notifications,
		"pagination": utils.CreatePagination(totalCount, page, pageSize),
	})
}

// HandleMarkNotificationRead marks one notification as read.
func HandleMarkNotificationRead(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	recipientID := c.Locals("userID").(string)
	notificationID := c.Params("notificationId")

	query := "UPDATE notifications SET is_read = true WHERE id = $1 AND recipient_user_id = $2"
	_, err := db.Exec(ctx, query, notificationID, recipientID)
	if err != nil {
		log.Printf("Error marking notification read: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
