package handlers

import (
	"context"
	"log"

	"shelfwise/database"
	"shelfwise/models"
	"shelfwise/store"

	"github.com/gofiber/fiber/v2"
)

// HandleListSuppliers fetches all suppliers for the logged-in merchant.
func HandleListSuppliers(c *fiber.Ctx) error {
	merchantID := c.Locals("userID").(string)

	s := store.New(database.GetDB())
	suppliers, err := s.FetchSuppliers(context.Background(), merchantID)
	if err != nil {
		log.Printf("Error querying suppliers for merchant %s: %v", merchantID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve suppliers"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": suppliers})
}

// HandleCreateSupplier adds a supplier to the merchant's book.
func HandleCreateSupplier(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()
	merchantID := c.Locals("userID").(string)

	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if supplier.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Supplier name is required"})
	}

	query := `
		INSERT INTO suppliers (merchant_id, name, contact_name, contact_email, contact_phone, website, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(ctx, query, merchantID, supplier.Name, supplier.ContactName, supplier.ContactEmail, supplier.ContactPhone, supplier.Website, supplier.Notes).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		log.Printf("Error creating supplier for merchant %s: %v", merchantID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create supplier"})
	}

	supplier.MerchantID = merchantID
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": supplier})
}
