package upstream

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"portfolio/internal/contrib"
	"portfolio/internal/stats"
)

type contributionDTO struct {
	ID           json.RawMessage `json:"id"`
	Repository   stats.Text      `json:"repository"`
	Title        stats.Text      `json:"title"`
	PRURL        stats.Text      `json:"prUrl"`
	Additions    stats.Int       `json:"additions"`
	Deletions    stats.Int       `json:"deletions"`
	ChangedFiles stats.Int       `json:"changedFiles"`
	OpenedDate   stats.Text      `json:"openedDate"`
	State        stats.Text      `json:"state"`
	MergedBy     json.RawMessage `json:"mergedBy"`
}

// decodeContributions converts each array element on its own. Elements that
// are not objects are skipped and reported by count.
func decodeContributions(elems []json.RawMessage) ([]contrib.Record, int) {
	records := make([]contrib.Record, 0, len(elems))
	skipped := 0
	for _, raw := range elems {
		var dto contributionDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			skipped++
			continue
		}
		records = append(records, dto.toRecord())
	}
	return records, skipped
}

func (d contributionDTO) toRecord() contrib.Record {
	return contrib.Record{
		ID:           rawString(d.ID),
		Repository:   d.Repository.String(),
		Title:        d.Title.String(),
		URL:          d.PRURL.String(),
		Additions:    d.Additions.Or(0),
		Deletions:    d.Deletions.Or(0),
		ChangedFiles: d.ChangedFiles.Or(0),
		OpenedAt:     parseOpenedDate(d.OpenedDate.String()),
		State:        strings.ToLower(strings.TrimSpace(d.State.String())),
		MergedBy:     mergedBy(d.MergedBy),
	}
}

// rawString renders a JSON string or number id as text.
func rawString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// mergedBy accepts a login string or a user object with a login field.
func mergedBy(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var user struct {
		Login string `json:"login"`
	}
	if err := json.Unmarshal(raw, &user); err == nil {
		return user.Login
	}
	return ""
}

func parseOpenedDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
