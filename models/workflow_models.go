package models

// SupplierSearchResult is one candidate supplier returned by the web search
// collaborator. All fields except Name may be empty.
type SupplierSearchResult struct {
	Name    string `json:"name"`
	Website string `json:"website,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// Recommendation is the schema-validated output of the reasoning collaborator.
type Recommendation struct {
	SupplierName string  `json:"supplier_name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	Contact      string  `json:"contact,omitempty"`
	Reasoning    string  `json:"reasoning,omitempty"`
}

// TranscriptMessage is one role-tagged message of a conversational session.
type TranscriptMessage struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	AudioRef string `json:"audio_ref,omitempty"`
}

// ConversationSession is what the voice collaborator returns for one session.
type ConversationSession struct {
	SessionID  string              `json:"session_id"`
	Transcript []TranscriptMessage `json:"transcript"`
}

// WorkflowResult is the terminal output of the reorder workflow.
type WorkflowResult struct {
	OrderID        string         `json:"order_id"`
	SessionID      string         `json:"session_id"`
	Recommendation Recommendation `json:"recommendation"`
}
