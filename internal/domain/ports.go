package domain

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

// Notification is delivered best-effort: a failed send is logged and
// swallowed, never rolled into the owning transaction.
type Notification struct {
	ActorID  string
	JobID    string
	Type     string
	Title    string
	Message  string
	Channels []string
}

type NotifierPort interface {
	Send(ctx context.Context, n Notification) error
}

// CommissionRule is what the platform's rule service resolves for a job.
type CommissionRule struct {
	Rate             float64
	RequiresApproval bool
}

type CommissionRulePort interface {
	Lookup(ctx context.Context, jobID, categoryID, region, clientID string) (*CommissionRule, error)
}
