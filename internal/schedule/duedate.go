// Package schedule derives the due state of maintenance tasks. Everything
// here is pure; due state is computed on every read and never stored, so
// it cannot drift from the clock.
package schedule

import "time"

// DefaultHorizonDays is how far ahead a task counts as due soon.
const DefaultHorizonDays = 7

type Status string

const (
	StatusOverdue   Status = "overdue"
	StatusDueSoon   Status = "due_soon"
	StatusScheduled Status = "scheduled"
)

// NextDue returns when a task is next due. A never-completed task is due
// immediately. Interval addition is calendar-day based, so a 1-day
// interval lands on the next calendar day regardless of DST shifts.
func NextDue(lastCompleted *time.Time, intervalDays int, now time.Time) time.Time {
	if lastCompleted == nil {
		return now
	}
	return lastCompleted.AddDate(0, 0, intervalDays)
}

// IsOverdue reports whether the task is past due. Never-completed tasks
// are always overdue.
func IsOverdue(lastCompleted *time.Time, intervalDays int, now time.Time) bool {
	if lastCompleted == nil {
		return true
	}
	return NextDue(lastCompleted, intervalDays, now).Before(now)
}

// IsDueSoon reports whether the task falls due within horizonDays of now.
// A task is never both overdue and due soon.
func IsDueSoon(lastCompleted *time.Time, intervalDays int, now time.Time, horizonDays int) bool {
	if lastCompleted == nil {
		return false
	}
	due := NextDue(lastCompleted, intervalDays, now)
	if due.Before(now) {
		return false
	}
	return due.Before(now.AddDate(0, 0, horizonDays))
}

// Classify buckets a task into overdue, due_soon or scheduled using the
// default horizon.
func Classify(lastCompleted *time.Time, intervalDays int, now time.Time) Status {
	switch {
	case IsOverdue(lastCompleted, intervalDays, now):
		return StatusOverdue
	case IsDueSoon(lastCompleted, intervalDays, now, DefaultHorizonDays):
		return StatusDueSoon
	default:
		return StatusScheduled
	}
}
