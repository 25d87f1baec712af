package publisher

const (
	TopicJobEvents        = "job-events"
	TopicSettlementEvents = "settlement-events"
	TopicDisputeEvents    = "dispute-events"
)

type JobEvent struct {
	JobID      string  `json:"job_id"`
	ClientID   string  `json:"client_id"`
	ProviderID string  `json:"provider_id,omitempty"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount,omitempty"`
	Stage      string  `json:"stage"`
}

type SettlementEvent struct {
	JobID              string  `json:"job_id"`
	PaymentID          string  `json:"payment_id"`
	HoldID             string  `json:"hold_id,omitempty"`
	TotalAmount        float64 `json:"total_amount"`
	CommissionAmount   float64 `json:"commission_amount"`
	ImmediateAmount    float64 `json:"immediate_amount"`
	WarrantyHoldAmount float64 `json:"warranty_hold_amount"`
	Stage              string  `json:"stage"`
}

type DisputeEvent struct {
	DisputeID string `json:"dispute_id"`
	JobID     string `json:"job_id"`
	RaisedBy  string `json:"raised_by,omitempty"`
	Status    string `json:"status"`
	Outcome   string `json:"outcome,omitempty"`
}
