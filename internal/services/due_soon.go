package services

import (
	"math"
	"time"

	"task-manager/internal/domain"
)

// DefaultDueSoonWindowDays is how far ahead, in days, a due date counts as upcoming
const DefaultDueSoonWindowDays = 3

const day = 24 * time.Hour

// EvaluateDueSoon returns the tasks whose due date is between 0 and windowDays
// days away, counting partial days up. Tasks without a due date and tasks
// overdue by a full day or more are left out. Input order is kept and the returned
// pointers are the input's own.
func EvaluateDueSoon(tasks []*domain.Task, now time.Time, windowDays int) []*domain.Task {
	result := make([]*domain.Task, 0)
	for _, t := range tasks {
		if t == nil || t.DueDate == nil {
			continue
		}
		diffDays := int(math.Ceil(float64(t.DueDate.Sub(now)) / float64(day)))
		if diffDays >= 0 && diffDays <= windowDays {
			result = append(result, t)
		}
	}
	return result
}
