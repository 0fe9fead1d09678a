package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveApplied   = "leave_applied"
	LeaveCancelled = "leave_cancelled"
	LeaveUpdated   = "leave_updated"
)

// LeaveLifecycleEvent is published after every state change of a leave
// request so an external approval flow can pick it up.
type LeaveLifecycleEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	LeaveType  string    `json:"leave_type"`
	Approver   string    `json:"approver,omitempty"`
	FromDate   string    `json:"from_date"`
	ToDate     string    `json:"to_date"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
