package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"shelfwise/models"
)

// Store wraps the persistence collaborator contract: append-only observation
// series per item, name-keyed item upserts, and the workflow's draft orders
// and conversation transcripts.
type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// FetchObservations returns the full observation series for one item,
// ordered ascending by observation time.
func (s *Store) FetchObservations(ctx context.Context, itemID string) ([]models.Observation, error) {
	query := `
		SELECT id, item_id, quantity, source, observed_at
		FROM observations
		WHERE item_id = $1
		ORDER BY observed_at ASC
	`
	rows, err := s.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	obs := make([]models.Observation, 0)
	for rows.Next() {
		var o models.Observation
		if err := rows.Scan(&o.ID, &o.ItemID, &o.Quantity, &o.Source, &o.ObservedAt); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		obs = append(obs, o)
	}
	return obs, rows.Err()
}

// FetchObservationsByMerchant returns every non-archived item's observation
// series keyed by item name, for the trend analyzer.
func (s *Store) FetchObservationsByMerchant(ctx context.Context, merchantID string) (map[string][]models.Observation, error) {
	query := `
		SELECT i.name, o.quantity, o.observed_at
		FROM observations o
		JOIN inventory_items i ON o.item_id = i.id
		WHERE i.merchant_id = $1 AND i.is_archived = false
		ORDER BY o.observed_at ASC
	`
	rows, err := s.db.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	byItem := make(map[string][]models.Observation)
	for rows.Next() {
		var name string
		var o models.Observation
		if err := rows.Scan(&name, &o.Quantity, &o.ObservedAt); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		o.ItemName = name
		byItem[name] = append(byItem[name], o)
	}
	return byItem, rows.Err()
}

// GetItem fetches one inventory item scoped to a merchant.
func (s *Store) GetItem(ctx context.Context, merchantID, itemID string) (*models.InventoryItem, error) {
	query := `
		SELECT id, merchant_id, name, description, category, unit_price, supplier_id, lead_time_days, is_archived, created_at, updated_at
		FROM inventory_items
		WHERE id = $1 AND merchant_id = $2
	`
	var item models.InventoryItem
	err := s.db.QueryRow(ctx, query, itemID, merchantID).Scan(
		&item.ID, &item.MerchantID, &item.Name, &item.Description, &item.Category,
		&item.UnitPrice, &item.SupplierID, &item.LeadTimeDays, &item.IsArchived,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return &item, nil
}

// RecordCount upserts an item by (merchant, name) and appends one observation
// for it. This is where duplicate parsed lines for the same name merge: each
// line still appends its own observation, on the same item row.
func (s *Store) RecordCount(ctx context.Context, merchantID string, item models.ParsedItem, source string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var itemID string
	upsert := `
		INSERT INTO inventory_items (merchant_id, name)
		VALUES ($1, $2)
		ON CONFLICT (merchant_id, name) DO UPDATE SET updated_at = now()
		RETURNING id
	`
	if err := tx.QueryRow(ctx, upsert, merchantID, item.Name).Scan(&itemID); err != nil {
		return fmt.Errorf("failed to upsert item %q: %w", item.Name, err)
	}

	insert := `
		INSERT INTO observations (item_id, quantity, source, observed_at)
		VALUES ($1, $2, $3, now())
	`
	if _, err := tx.Exec(ctx, insert, itemID, item.Quantity, source); err != nil {
		return fmt.Errorf("failed to record observation for %q: %w", item.Name, err)
	}

	return tx.Commit(ctx)
}

// FetchSuppliers lists the merchant's supplier book.
func (s *Store) FetchSuppliers(ctx context.Context, merchantID string) ([]models.Supplier, error) {
	query := `
		SELECT id, merchant_id, name, contact_name, contact_email, contact_phone, website, notes, created_at, updated_at
		FROM suppliers
		WHERE merchant_id = $1
		ORDER BY name ASC
	`
	rows, err := s.db.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := make([]models.Supplier, 0)
	for rows.Next() {
		var sp models.Supplier
		if err := rows.Scan(&sp.ID, &sp.MerchantID, &sp.Name, &sp.ContactName, &sp.ContactEmail, &sp.ContactPhone, &sp.Website, &sp.Notes, &sp.CreatedAt, &sp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, sp)
	}
	return suppliers, rows.Err()
}

// InsertDraftOrder persists a draft purchase order and returns it with the
// generated id and timestamp.
func (s *Store) InsertDraftOrder(ctx context.Context, order models.PurchaseOrder) (models.PurchaseOrder, error) {
	query := `
		INSERT INTO purchase_orders (id, merchant_id, item_id, item_name, supplier_name, quantity, unit_price, contact, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'draft')
		RETURNING created_at
	`
	err := s.db.QueryRow(ctx, query,
		order.ID, order.MerchantID, order.ItemID, order.ItemName,
		order.SupplierName, order.Quantity, order.UnitPrice, order.Contact,
	).Scan(&order.CreatedAt)
	if err != nil {
		return models.PurchaseOrder{}, fmt.Errorf("failed to insert draft order: %w", err)
	}
	order.Status = "draft"
	return order, nil
}

// InsertConversation persists a session transcript verbatim, one row per
// message, preserving order.
func (s *Store) InsertConversation(ctx context.Context, merchantID, orderID string, session models.ConversationSession) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertConv := `
		INSERT INTO conversations (session_id, merchant_id, order_id)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, insertConv, session.SessionID, merchantID, orderID); err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}

	insertMsg := `
		INSERT INTO conversation_messages (session_id, position, role, content, audio_ref)
		VALUES ($1, $2, $3, $4, $5)
	`
	for i, m := range session.Transcript {
		if _, err := tx.Exec(ctx, insertMsg, session.SessionID, i, m.Role, m.Content, m.AudioRef); err != nil {
			return fmt.Errorf("failed to insert transcript message: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// InsertNotification writes a toast notification for the merchant.
func (s *Store) InsertNotification(ctx context.Context, n models.Notification) error {
	query := `
		INSERT INTO notifications (recipient_user_id, title, message, notification_type, related_entity_id, related_entity_type)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.Exec(ctx, query, n.RecipientUserID, n.Title, n.Message, n.Type, n.RelatedEntityID, n.RelatedEntityType)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
