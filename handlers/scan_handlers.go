package handlers

import (
	"context"
	"log"
	"time"

	"shelfwise/analysis"
	"shelfwise/config"
	"shelfwise/database"
	"shelfwise/store"
	"shelfwise/vision"

	"github.com/gofiber/fiber/v2"
)

// visionTimeout bounds the Gemini call; a timeout is an ordinary failure.
const visionTimeout = 60 * time.Second

// HandleScanShelf takes a shelf photo, asks the vision model to describe it,
// parses the description into counts, and records an observation for each
// parsed item. Lines the parser cannot read are dropped silently.
// POST /api/v1/merchant/scan
func HandleScanShelf(c *fiber.Ctx) error {
	merchantID := c.Locals("userID").(string)

	var body struct {
		ImageData string `json:"image_data"` // data URL, e.g. "data:image/png;base64,..."
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if body.ImageData == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "image_data is required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), visionTimeout)
	defer cancel()

	text, err := vision.NewClient(config.AppConfig.GeminiAPIKey).DescribeShelf(ctx, body.ImageData)
	if err != nil {
		log.Printf("Vision call failed for merchant %s: %v", merchantID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Failed to analyze shelf photo"})
	}

	items := analysis.ParseInventoryItems(text)
	if len(items) == 0 {
		return c.JSON(fiber.Map{"status": "success", "data": items, "message": "No items recognized in photo"})
	}

	s := store.New(database.GetDB())
	for _, item := range items {
		if err := s.RecordCount(context.Background(), merchantID, item, "scan"); err != nil {
			log.Printf("Error recording count for %q: %v", item.Name, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to record scanned counts"})
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": items})
}
