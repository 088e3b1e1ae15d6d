package voucher

import "time"

// Emphasis is the display weight a status carries; rendering decides what
// it looks like.
type Emphasis string

const (
	EmphasisDestructive Emphasis = "destructive"
	EmphasisNeutral     Emphasis = "neutral"
	EmphasisAffirmative Emphasis = "affirmative"
)

type Status struct {
	Label    string   `json:"label"`
	Emphasis Emphasis `json:"emphasis"`
}

var (
	StatusInactive  = Status{Label: "Inactive", Emphasis: EmphasisDestructive}
	StatusScheduled = Status{Label: "Scheduled", Emphasis: EmphasisNeutral}
	StatusExpired   = Status{Label: "Expired", Emphasis: EmphasisDestructive}
	StatusExhausted = Status{Label: "Exhausted", Emphasis: EmphasisDestructive}
	StatusActive    = Status{Label: "Active", Emphasis: EmphasisAffirmative}
)

// Classify derives the display status of a voucher at the given instant.
// The priority order is a contract: a voucher can satisfy several
// conditions at once (inactive AND expired) and the first match wins.
func Classify(v Voucher, now time.Time) Status {
	if !v.IsActive {
		return StatusInactive
	}
	if now.Before(v.ActivationDate) {
		return StatusScheduled
	}
	if now.After(v.ExpiryDate) {
		return StatusExpired
	}
	if v.UsageCount >= v.UsageLimit {
		return StatusExhausted
	}
	return StatusActive
}
