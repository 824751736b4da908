package reservation

import "errors"

var ErrInvalidStatus = errors.New("invalid reservation status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled, StatusRejected, StatusCompleted:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// BlockingPolicy decides which statuses occupy a time slot. The product never
// settled on "only approved blocks" vs "anything not cancelled blocks", so the
// set is injected from configuration instead of being baked in here.
type BlockingPolicy struct {
	blocking map[Status]struct{}
}

func NewBlockingPolicy(statuses []string) (BlockingPolicy, error) {
	blocking := make(map[Status]struct{}, len(statuses))
	for _, s := range statuses {
		status, err := NewStatus(s)
		if err != nil {
			return BlockingPolicy{}, err
		}
		blocking[status] = struct{}{}
	}
	return BlockingPolicy{blocking: blocking}, nil
}

// DefaultBlockingPolicy blocks on every status except cancelled.
func DefaultBlockingPolicy() BlockingPolicy {
	policy, _ := NewBlockingPolicy([]string{
		StatusPending.String(),
		StatusApproved.String(),
		StatusRejected.String(),
		StatusCompleted.String(),
	})
	return policy
}

func (p BlockingPolicy) Blocks(s Status) bool {
	_, ok := p.blocking[s]
	return ok
}

func (p BlockingPolicy) Statuses() []string {
	result := make([]string, 0, len(p.blocking))
	for s := range p.blocking {
		result = append(result, s.String())
	}
	return result
}
