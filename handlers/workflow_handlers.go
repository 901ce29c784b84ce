package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"shelfwise/cache"
	"shelfwise/config"
	"shelfwise/database"
	"shelfwise/models"
	"shelfwise/reasoning"
	"shelfwise/search"
	"shelfwise/store"
	"shelfwise/voice"
	"shelfwise/workflow"

	"github.com/gofiber/fiber/v2"
)

// SearchCache is set once at startup: Redis when configured, no-op otherwise.
var SearchCache cache.SearchCache = cache.NoopSearchCache{}

// workflowTimeout covers the whole pipeline: four external API calls plus
// persistence.
const workflowTimeout = 5 * time.Minute

// HandleReorderWorkflow runs the supplier search workflow for one item and
// writes a notification with the outcome. The workflow has no retry logic;
// on failure the caller retries manually.
// POST /api/v1/merchant/items/:itemId/reorder-workflow
func HandleReorderWorkflow(c *fiber.Ctx) error {
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	ctx, cancel := context.WithTimeout(context.Background(), workflowTimeout)
	defer cancel()

	s := store.New(database.GetDB())
	item, err := s.GetItem(ctx, merchantID, itemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
	}

	o := workflow.NewOrchestrator(
		s,
		search.NewClient(config.AppConfig.SearchAPIKey),
		reasoning.NewClient(config.AppConfig.GeminiAPIKey),
		voice.NewClient(config.AppConfig.VoiceAPIKey, config.AppConfig.VoiceBaseURL, config.AppConfig.VoiceAgentID),
		SearchCache,
	)

	result, err := o.ExecuteSupplierSearchWorkflow(ctx, *item)
	if err != nil {
		log.Printf("Reorder workflow failed for item %s: %v", itemID, err)
		var collabErr *workflow.CollaboratorError
		if errors.As(err, &collabErr) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Workflow step failed: %s", collabErr.Step)})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Workflow failed"})
	}

	entityType := "purchase_order"
	notification := models.Notification{
		RecipientUserID:   merchantID,
		Title:             "Draft order ready",
		Message:           fmt.Sprintf("Draft order for %s: %d units from %s", item.Name, result.Recommendation.Quantity, result.Recommendation.SupplierName),
		Type:              "reorder",
		RelatedEntityID:   &result.OrderID,
		RelatedEntityType: &entityType,
	}
	if err := s.InsertNotification(context.Background(), notification); err != nil {
		// Notification failure does not fail a completed workflow.
		log.Printf("Error writing workflow notification: %v", err)
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}
