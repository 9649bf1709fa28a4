package entity

import (
	"strings"
	"time"

	"ledger/internal/domain/lifecycle"

	"github.com/google/uuid"
)

// TaskStatus is the progress of a task template.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

// IsValid checks if the status is known.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskBlocked:
		return true
	default:
		return false
	}
}

// TaskPriority orders task templates.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// IsValid checks if the priority is known.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// TaskTemplate is a reusable task an organization publishes, optionally
// scoped to one of its claims.
type TaskTemplate struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"owner_id"`
	ClaimID     *uuid.UUID   `json:"claim_id,omitempty"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	TemplateURL *string      `json:"template_url,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	lifecycle.State
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompletionDocumented reports whether a completed template carries a
// description or a template url. Templates in other states always pass.
func (t *TaskTemplate) CompletionDocumented() bool {
	if t.Status != TaskCompleted {
		return true
	}

	return nonBlank(t.Description) || nonBlank(t.TemplateURL)
}

// TemplateFilter narrows ListTemplates.
type TemplateFilter struct {
	OwnerID *uuid.UUID
	ClaimID *uuid.UUID
	Status  *TaskStatus
}

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
