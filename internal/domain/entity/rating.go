package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Rating is feedback submitted by redeeming an event code. A rater rates a
// given event code at most once.
type Rating struct {
	ID          uuid.UUID `json:"id"`
	RaterID     uuid.UUID `json:"rater_id"`
	ClaimID     uuid.UUID `json:"claim_id"`
	EventCodeID uuid.UUID `json:"event_code_id"`
	Score       int       `json:"score"`
	Comment     *string   `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ScoreInRange reports whether score is within MinScore..MaxScore.
func ScoreInRange(score int) bool {
	return score >= MinScore && score <= MaxScore
}
