package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// User represents an account that owns an inventory (a merchant) or an admin.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// --- Core Models ---

// InventoryItem is one tracked product, unique per (merchant, name).
type InventoryItem struct {
	ID           string    `json:"id"`
	MerchantID   string    `json:"merchant_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	Category     *string   `json:"category,omitempty"`
	UnitPrice    *float64  `json:"unit_price,omitempty"`
	SupplierID   *string   `json:"supplier_id,omitempty"`
	LeadTimeDays int       `json:"lead_time_days"`
	IsArchived   bool      `json:"is_archived"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Observation is a single stock count for an item at a point in time.
// Observations are append-only: they are never updated or deleted.
type Observation struct {
	ID         string    `json:"id,omitempty"`
	ItemID     string    `json:"item_id,omitempty"`
	ItemName   string    `json:"item_name,omitempty"`
	Quantity   int       `json:"quantity"`
	Source     string    `json:"source,omitempty"` // "scan" or "manual"
	ObservedAt time.Time `json:"observed_at"`
}

// Supplier is an entry in the merchant's supplier book.
type Supplier struct {
	ID           string    `json:"id"`
	MerchantID   string    `json:"merchant_id"`
	Name         string    `json:"name"`
	ContactName  *string   `json:"contact_name,omitempty"`
	ContactEmail *string   `json:"contact_email,omitempty"`
	ContactPhone *string   `json:"contact_phone,omitempty"`
	Website      *string   `json:"website,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PurchaseOrder is a draft order produced by the reorder workflow. Orders are
// created with status "draft" and confirmed elsewhere.
type PurchaseOrder struct {
	ID           string    `json:"id"`
	MerchantID   string    `json:"merchant_id"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	SupplierName string    `json:"supplier_name"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	Contact      string    `json:"contact"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Notification is surfaced to the merchant as a toast in the client.
type Notification struct {
	ID                string    `json:"id"`
	RecipientUserID   string    `json:"recipient_user_id"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	Type              string    `json:"notification_type"`
	RelatedEntityID   *string   `json:"related_entity_id,omitempty"`
	RelatedEntityType *string   `json:"related_entity_type,omitempty"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
}
