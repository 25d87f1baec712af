package disputedto

import "github.com/fixway/fixway-jobs-service/internal/domain"

type RaiseDisputeInput struct {
	JobID    string
	Actor    domain.Actor
	Type     domain.DisputeType
	Reason   string
	Evidence string
}

type ReviewDisputeInput struct {
	DisputeID  string
	OperatorID string
}

type ResolveDisputeInput struct {
	DisputeID  string
	OperatorID string
	Outcome    domain.DisputeOutcome
	Resolution string
}
