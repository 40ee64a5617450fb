// internal/engine/deadline.go
package engine

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Urgency classifies a delivery date relative to today.
type Urgency string

const (
	UrgencyNotInformed Urgency = "not_informed"
	UrgencyComfortable Urgency = "comfortable"
	UrgencyTomorrow    Urgency = "tomorrow"
	UrgencyToday       Urgency = "today"
	UrgencyOverdue     Urgency = "overdue"
)

// Severity orders urgencies; higher needs attention sooner.
func (u Urgency) Severity() int {
	switch u {
	case UrgencyOverdue:
		return 4
	case UrgencyToday:
		return 3
	case UrgencyTomorrow:
		return 2
	case UrgencyComfortable:
		return 1
	}
	return 0
}

const (
	ColorOverdue     = "#D32F2F"
	ColorDueSoon     = "#FFA000"
	ColorFewDays     = "#9CCC65"
	ColorWeek        = "#43A047"
	ColorFarAhead    = "#2E7D32"
	ColorNotInformed = "#9E9E9E"

	LabelNotInformed = "Data não informada"
)

const (
	layoutISODate     = "2006-01-02"
	layoutBRDate      = "02/01/2006"
	layoutISODateTime = "2006-01-02T15:04:05"
	layoutSQLDateTime = "2006-01-02 15:04:05"
	isoDateTimeLen    = len(layoutISODateTime)

	secondsPerDay = 24 * 60 * 60
)

// addLeadTime reports false when start plus days cannot be represented,
// which happens for lead times large enough to wrap the calendar.
func addLeadTime(start time.Time, days int) (time.Time, bool) {
	due := start.AddDate(0, 0, days)
	if due.Before(start) || daysBetween(start, due) != days {
		return time.Time{}, false
	}
	return due, true
}

// DeadlineCalculator derives delivery estimates. Now defaults to time.Now.
type DeadlineCalculator struct {
	Now func() time.Time
}

// Estimate is EstimateAt with today taken from the calculator's clock.
func (c DeadlineCalculator) Estimate(explicit, created any, leadTimeDays int) DeliveryEstimate {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return EstimateAt(now(), explicit, created, leadTimeDays)
}

// EstimateAt returns the delivery estimate of an order as seen on today.
// explicit and created may be strings, time.Time, *time.Time, sql.NullTime or
// nil. The explicit date wins when it parses; otherwise created plus a
// positive leadTimeDays is used. Nothing here fails: unusable input yields an
// estimate without a due date.
func EstimateAt(today time.Time, explicit, created any, leadTimeDays int) DeliveryEstimate {
	due, ok := parseDeliveryDate(explicit)
	if !ok && leadTimeDays > 0 {
		if start, found := parseCreationDate(created); found {
			due, ok = addLeadTime(start, leadTimeDays)
		}
	}
	if !ok {
		return DeliveryEstimate{
			Urgency: UrgencyNotInformed,
			Label:   LabelNotInformed,
			Color:   ColorNotInformed,
		}
	}

	days := daysBetween(civilDate(today), due)
	urgency, label, color := classify(days)
	return DeliveryEstimate{
		DueDate:       &due,
		DaysRemaining: &days,
		Urgency:       urgency,
		Label:         label,
		Color:         color,
	}
}

func classify(days int) (Urgency, string, string) {
	switch {
	case days < 0:
		late := -days
		if late == 1 {
			return UrgencyOverdue, "Atrasado há 1 dia", ColorOverdue
		}
		return UrgencyOverdue, fmt.Sprintf("Atrasado há %d dias", late), ColorOverdue
	case days == 0:
		return UrgencyToday, "Entrega hoje", ColorDueSoon
	case days == 1:
		return UrgencyTomorrow, "Entrega amanhã", ColorDueSoon
	case days <= 3:
		return UrgencyComfortable, fmt.Sprintf("%d dias restantes", days), ColorFewDays
	case days <= 7:
		return UrgencyComfortable, fmt.Sprintf("%d dias restantes", days), ColorWeek
	}
	return UrgencyComfortable, fmt.Sprintf("%d dias restantes", days), ColorFarAhead
}

// ParseDate reads an explicit delivery date the same way EstimateAt does.
func ParseDate(v any) (time.Time, bool) {
	return parseDeliveryDate(v)
}

func parseDeliveryDate(v any) (time.Time, bool) {
	if s, ok := v.(string); ok {
		return parseLayouts(s, layoutISODate, layoutBRDate, layoutISODateTime, layoutSQLDateTime)
	}
	return nativeDate(v)
}

func parseCreationDate(v any) (time.Time, bool) {
	if s, ok := v.(string); ok {
		return parseLayouts(s, layoutISODateTime, layoutSQLDateTime, layoutISODate)
	}
	return nativeDate(v)
}

// parseLayouts tries each layout in order. Datetime layouts only look at the
// first 19 characters so fractions and zone suffixes are ignored.
func parseLayouts(s string, layouts ...string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		in := s
		if len(layout) == isoDateTimeLen && len(in) > isoDateTimeLen {
			in = in[:isoDateTimeLen]
		}
		if t, err := time.Parse(layout, in); err == nil {
			return civilDate(t), true
		}
	}
	return time.Time{}, false
}

func nativeDate(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return civilDate(t), true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return civilDate(*t), true
	case sql.NullTime:
		if !t.Valid || t.Time.IsZero() {
			return time.Time{}, false
		}
		return civilDate(t.Time), true
	}
	return time.Time{}, false
}

// civilDate drops the clock and zone, keeping the calendar day as seen in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days between two civil dates. It works on Unix
// seconds because a time.Duration cannot span more than about 292 years.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
