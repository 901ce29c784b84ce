package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"shelfwise/database"
	"shelfwise/models"
	"shelfwise/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleListItems returns all non-archived inventory items for the merchant.
func HandleListItems(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)

	query := `
		SELECT id, merchant_id, name, description, category, unit_price, supplier_id, lead_time_days, is_archived, created_at, updated_at
		FROM inventory_items
		WHERE merchant_id = $1 AND is_archived = false
		ORDER BY name ASC
	`
	rows, err := db.Query(ctx, query, merchantID)
	if err != nil {
		log.Printf("Error querying items for merchant %s: %v", merchantID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve inventory items"})
	}
	defer rows.Close()

	items := make([]models.InventoryItem, 0)
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.MerchantID, &item.Name, &item.Description, &item.Category, &item.UnitPrice, &item.SupplierID, &item.LeadTimeDays, &item.IsArchived, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Printf("Error scanning item row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to scan inventory item data"})
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{"status": "success", "data": items})
}

// HandleCreateItem creates a new inventory item for the merchant.
func HandleCreateItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)

	var req models.InventoryItem
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Item name is required"})
	}
	if req.LeadTimeDays <= 0 {
		req.LeadTimeDays = 3
	}

	query := `
		INSERT INTO inventory_items (merchant_id, name, description, category, unit_price, supplier_id, lead_time_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(ctx, query, merchantID, req.Name, req.Description, req.Category, req.UnitPrice, req.SupplierID, req.LeadTimeDays).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		log.Printf("Error creating item for merchant %s: %v", merchantID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create inventory item"})
	}

	req.MerchantID = merchantID
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": req})
}

// HandleGetItem fetches one inventory item by id.
func HandleGetItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	query := `
		SELECT id, merchant_id, name, description, category, unit_price, supplier_id, lead_time_days, is_archived, created_at, updated_at
		FROM inventory_items
		WHERE id = $1 AND merchant_id = $2
	`
	var item models.InventoryItem
	err := db.QueryRow(ctx, query, itemID, merchantID).Scan(&item.ID, &item.MerchantID, &item.Name, &item.Description, &item.Category, &item.UnitPrice, &item.SupplierID, &item.LeadTimeDays, &item.IsArchived, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": item})
}

// HandleUpdateItem updates an inventory item's metadata. Observations are
// untouched: the count history is append-only.
func HandleUpdateItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	var req models.InventoryItem
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	query := `
		UPDATE inventory_items
		SET name = $1, description = $2, category = $3, unit_price = $4, supplier_id = $5, lead_time_days = $6, is_archived = $7
		WHERE id = $8 AND merchant_id = $9
		RETURNING updated_at
	`
	err := db.QueryRow(ctx, query, req.Name, req.Description, req.Category, req.UnitPrice, req.SupplierID, req.LeadTimeDays, req.IsArchived, itemID, merchantID).Scan(&req.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
		}
		log.Printf("Error updating item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update inventory item"})
	}

	req.ID = itemID
	req.MerchantID = merchantID
	return c.JSON(fiber.Map{"status": "success", "data": req})
}

// HandleArchiveItem soft-deletes an item. Its observation history stays.
func HandleArchiveItem(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	query := "UPDATE inventory_items SET is_archived = true WHERE id = $1 AND merchant_id = $2"
	_, err := db.Exec(ctx, query, itemID, merchantID)
	if err != nil {
		log.Printf("Error archiving item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to archive item"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleLogObservation appends a manual stock count for an item.
// POST /api/v1/merchant/items/:itemId/observations
func HandleLogObservation(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	var req struct {
		Quantity   int        `json:"quantity"`
		ObservedAt *time.Time `json:"observed_at,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if req.Quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Quantity must be non-negative"})
	}

	// Validate the item belongs to this merchant.
	var exists bool
	checkQuery := "SELECT EXISTS(SELECT 1 FROM inventory_items WHERE id = $1 AND merchant_id = $2)"
	if err := db.QueryRow(ctx, checkQuery, itemID, merchantID).Scan(&exists); err != nil {
		log.Printf("Error checking item ownership: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error during validation"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Inventory item not found"})
	}

	observedAt := time.Now()
	if req.ObservedAt != nil {
		observedAt = *req.ObservedAt
	}

	var obs models.Observation
	insert := `
		INSERT INTO observations (item_id, quantity, source, observed_at)
		VALUES ($1, $2, 'manual', $3)
		RETURNING id, item_id, quantity, source, observed_at
	`
	err := db.QueryRow(ctx, insert, itemID, req.Quantity, observedAt).Scan(&obs.ID, &obs.ItemID, &obs.Quantity, &obs.Source, &obs.ObservedAt)
	if err != nil {
		log.Printf("Error logging observation for item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to log observation"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": obs})
}

// HandleGetObservations returns the paginated count history for an item,
// newest first.
func HandleGetObservations(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)
	itemID := c.Params("itemId")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var totalCount int
	countQuery := `
		SELECT COUNT(*)
		FROM observations o
		JOIN inventory_items i ON o.item_id = i.id
		WHERE o.item_id = $1 AND i.merchant_id = $2
	`
	if err := db.QueryRow(ctx, countQuery, itemID, merchantID).Scan(&totalCount); err != nil {
		log.Printf("Error counting observations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	query := `
		SELECT o.id, o.item_id, o.quantity, o.source, o.observed_at
		FROM observations o
		JOIN inventory_items i ON o.item_id = i.id
		WHERE o.item_id = $1 AND i.merchant_id = $2
		ORDER BY o.observed_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := db.Query(ctx, query, itemID, merchantID, pageSize, offset)
	if err != nil {
		log.Printf("Error fetching observations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	defer rows.Close()

	obs := make([]models.Observation, 0)
	for rows.Next() {
		var o models.Observation
		if err := rows.Scan(&o.ID, &o.ItemID, &o.Quantity, &o.Source, &o.ObservedAt); err != nil {
			log.Printf("Error scanning observation: %v", err)
			continue
		}
		obs = append(obs, o)
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       obs,
		"pagination": utils.CreatePagination(totalCount, page, pageSize),
	})
}
