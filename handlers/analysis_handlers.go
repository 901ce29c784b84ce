package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"shelfwise/analysis"
	"shelfwise/database"
	"shelfwise/store"

	"github.com/gofiber/fiber/v2"
)

// HandleStockLevels runs the trend analyzer over every item of the merchant.
// GET /api/v1/merchant/analysis/stock-levels?window=7
func HandleStockLevels(c *fiber.Ctx) error {
	merchantID := c.Locals("userID").(string)

	window, _ := strconv.Atoi(c.Query("window", "7"))
	if window <= 0 {
		window = 7
	}

	s := store.New(database.GetDB())
	obsByItem, err := s.FetchObservationsByMerchant(context.Background(), merchantID)
	if err != nil {
		log.Printf("Error fetching observations for merchant %s: %v", merchantID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve observations"})
	}

	result := analysis.AnalyzeStockLevels(obsByItem, window, time.Now())
	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleStockOutPrediction predicts when one item runs out.
// GET /api/v1/merchant/items/:itemId/prediction?window=14
// Responds 204 when there is not enough data for an opinion.
func HandleStockOutPrediction(c *fiber.Ctx) error {
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	window, _ := strconv.Atoi(c.Query("window", "14"))
	if window <= 0 {
		window = 14
	}

	s := store.New(database.GetDB())
	if _, err := s.GetItem(context.Background(), merchantID, itemID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
	}

	obs, err := s.FetchObservations(context.Background(), itemID)
	if err != nil {
		log.Printf("Error fetching observations for item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve observations"})
	}

	prediction := analysis.PredictStockOut(obs, window, time.Now())
	if prediction == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.JSON(fiber.Map{"status": "success", "data": prediction})
}

// HandleReorderLevels derives the stock thresholds for one item.
// GET /api/v1/merchant/items/:itemId/reorder-levels?leadTime=3
func HandleReorderLevels(c *fiber.Ctx) error {
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	s := store.New(database.GetDB())
	item, err := s.GetItem(context.Background(), merchantID, itemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
	}

	leadTime, _ := strconv.Atoi(c.Query("leadTime", "0"))
	if leadTime <= 0 {
		leadTime = item.LeadTimeDays
	}
	if leadTime <= 0 {
		leadTime = 3
	}

	obs, err := s.FetchObservations(context.Background(), itemID)
	if err != nil {
		log.Printf("Error fetching observations for item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve observations"})
	}

	levels := analysis.CalculateReorderLevels(obs, leadTime, time.Now())
	return c.JSON(fiber.Map{"status": "success", "data": levels})
}

// HandlePredictiveCurve builds the sawtooth chart series for one item.
// GET /api/v1/merchant/items/:itemId/predictive-curve?days=30
func HandlePredictiveCurve(c *fiber.Ctx) error {
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	days, _ := strconv.Atoi(c.Query("days", "30"))
	if days <= 0 {
		days = 30
	}

	s := store.New(database.GetDB())
	item, err := s.GetItem(context.Background(), merchantID, itemID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
	}

	leadTime := item.LeadTimeDays
	if leadTime <= 0 {
		leadTime = 3
	}

	obs, err := s.FetchObservations(context.Background(), itemID)
	if err != nil {
		log.Printf("Error fetching observations for item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve observations"})
	}

	curve := analysis.GeneratePredictiveCurve(obs, days, leadTime, time.Now())
	return c.JSON(fiber.Map{"status": "success", "data": curve})
}
