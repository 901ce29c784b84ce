package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shelfwise/analysis"
	"shelfwise/cache"
	"shelfwise/models"
	"shelfwise/reasoning"
)

// placeholderContact fills in for suppliers with no discoverable contact info.
const placeholderContact = "contact not available"

// searchCacheTTL bounds how long supplier search results are reused.
const searchCacheTTL = 15 * time.Minute

// predictionWindowDays is the usage window fed into the workflow's forecast.
const predictionWindowDays = 30

// CollaboratorError marks a failure of one external call in the pipeline.
// The workflow never retries or falls back: the whole invocation fails and
// the caller surfaces it for manual retry.
type CollaboratorError struct {
	Step string
	Err  error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator %s failed: %v", e.Step, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Persistence is the slice of the store the workflow depends on.
type Persistence interface {
	FetchObservations(ctx context.Context, itemID string) ([]models.Observation, error)
	FetchSuppliers(ctx context.Context, merchantID string) ([]models.Supplier, error)
	InsertDraftOrder(ctx context.Context, order models.PurchaseOrder) (models.PurchaseOrder, error)
	InsertConversation(ctx context.Context, merchantID, orderID string, session models.ConversationSession) error
}

// SupplierSearcher finds candidate suppliers for an item on the open web.
type SupplierSearcher interface {
	SearchSuppliers(ctx context.Context, itemName string) ([]models.SupplierSearchResult, error)
}

// Recommender turns the gathered data into a purchase recommendation.
type Recommender interface {
	Recommend(ctx context.Context, input reasoning.RecommendationInput) (*models.Recommendation, error)
}

// Conversationalist runs a voice-agent session briefed with the
// recommendation and returns the transcript.
type Conversationalist interface {
	StartSession(ctx context.Context, briefing string) (*models.ConversationSession, error)
}

// Orchestrator sequences the reorder pipeline. Each step's output feeds the
// next; no step re-invokes an earlier one. Multiple invocations for different
// items may run concurrently; there is no per-item lock.
type Orchestrator struct {
	store       Persistence
	searcher    SupplierSearcher
	recommender Recommender
	voice       Conversationalist
	searchCache cache.SearchCache
	now         func() time.Time
}

func NewOrchestrator(store Persistence, searcher SupplierSearcher, recommender Recommender, voice Conversationalist, searchCache cache.SearchCache) *Orchestrator {
	if searchCache == nil {
		searchCache = cache.NoopSearchCache{}
	}
	return &Orchestrator{
		store:       store,
		searcher:    searcher,
		recommender: recommender,
		voice:       voice,
		searchCache: searchCache,
		now:         time.Now,
	}
}

// ExecuteSupplierSearchWorkflow runs the full pipeline for one item:
// predict -> search suppliers -> fetch existing suppliers -> recommend ->
// persist draft order -> voice session -> persist transcript.
func (o *Orchestrator) ExecuteSupplierSearchWorkflow(ctx context.Context, item models.InventoryItem) (*models.WorkflowResult, error) {
	now := o.now()

	obs, err := o.store.FetchObservations(ctx, item.ID)
	if err != nil {
		return nil, &CollaboratorError{Step: "fetch observations", Err: err}
	}

	prediction := analysis.PredictStockOut(obs, predictionWindowDays, now)
	levels := analysis.CalculateReorderLevels(obs, item.LeadTimeDays, now)

	results, err := o.searchSuppliers(ctx, item.Name)
	if err != nil {
		return nil, &CollaboratorError{Step: "supplier search", Err: err}
	}

	existing, err := o.store.FetchSuppliers(ctx, item.MerchantID)
	if err != nil {
		return nil, &CollaboratorError{Step: "fetch suppliers", Err: err}
	}

	rec, err := o.recommender.Recommend(ctx, reasoning.RecommendationInput{
		ItemName:          item.Name,
		Prediction:        prediction,
		ReorderLevels:     levels,
		SearchResults:     results,
		ExistingSuppliers: existing,
	})
	if err != nil {
		return nil, &CollaboratorError{Step: "reasoning", Err: err}
	}

	if rec.Contact == "" {
		rec.Contact = placeholderContact
	}

	order, err := o.store.InsertDraftOrder(ctx, models.PurchaseOrder{
		ID:           uuid.NewString(),
		MerchantID:   item.MerchantID,
		ItemID:       item.ID,
		ItemName:     item.Name,
		SupplierName: rec.SupplierName,
		Quantity:     rec.Quantity,
		UnitPrice:    rec.UnitPrice,
		Contact:      rec.Contact,
	})
	if err != nil {
		return nil, &CollaboratorError{Step: "persist draft order", Err: err}
	}

	session, err := o.voice.StartSession(ctx, briefingText(item.Name, *rec))
	if err != nil {
		return nil, &CollaboratorError{Step: "voice session", Err: err}
	}

	if err := o.store.InsertConversation(ctx, item.MerchantID, order.ID, *session); err != nil {
		return nil, &CollaboratorError{Step: "persist conversation", Err: err}
	}

	return &models.WorkflowResult{
		OrderID:        order.ID,
		SessionID:      session.SessionID,
		Recommendation: *rec,
	}, nil
}

// searchSuppliers consults the cache before calling the search collaborator.
// Cache errors are deliberately ignored on read and write: a broken cache
// must not fail the workflow, only slow it down.
func (o *Orchestrator) searchSuppliers(ctx context.Context, itemName string) ([]models.SupplierSearchResult, error) {
	key := cache.Key(itemName)
	if cached, ok, err := o.searchCache.Get(ctx, key); err == nil && ok {
		return cached, nil
	}

	results, err := o.searcher.SearchSuppliers(ctx, itemName)
	if err != nil {
		return nil, err
	}

	_ = o.searchCache.Set(ctx, key, results, searchCacheTTL)
	return results, nil
}

func briefingText(itemName string, rec models.Recommendation) string {
	return fmt.Sprintf(
		"You are calling on behalf of a small retail business to reorder %s. The recommended supplier is %s at %.2f per unit for %d units. Contact on file: %s. %s",
		itemName, rec.SupplierName, rec.UnitPrice, rec.Quantity, rec.Contact, rec.Reasoning,
	)
}
