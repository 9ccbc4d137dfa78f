// Package contrib derives the open-source contribution view: pull request
// status classification, conjunctive filtering, pagination and the summary
// counters shown above the list.
package contrib

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
	StatusMerged Status = "Merged"
)

// Statuses lists every derived status in display order.
var Statuses = []Status{StatusOpen, StatusClosed, StatusMerged}

// ParseStatus accepts a status name in any letter case.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Record is a pull request authored by the profile owner.
type Record struct {
	ID           string
	Repository   string
	Title        string
	URL          string
	Additions    int
	Deletions    int
	ChangedFiles int
	OpenedAt     time.Time
	State        string
	MergedBy     string
}

// DerivedStatus classifies a record. A merged pull request is also closed
// upstream, so merged takes precedence over closed.
func DerivedStatus(r Record) Status {
	switch {
	case r.MergedBy != "":
		return StatusMerged
	case strings.EqualFold(r.State, StateClosed):
		return StatusClosed
	default:
		return StatusOpen
	}
}
