package services

import (
	"errors"

	"github.com/globalwebwork/task-management-api/internal/models"
)

// ErrNonPositiveEfficiency is returned when a completion-time estimate is
// requested with an efficiency factor of zero or below.
var ErrNonPositiveEfficiency = errors.New("efficiency must be positive")

// Priority bands for the weighted urgency score.
const (
	highPriorityScore   = 8.0
	mediumPriorityScore = 5.0
)

// PredictPriority classifies a task as High, Medium or Low from its urgency
// and complexity ratings (0-10) and the whole days remaining until the due
// date. A fixed linear rule, no learned state:
//
//	score = 0.4*urgency + 0.3*complexity + 0.3*max(0, 10-deadlineDays)
//
// deadlineDays may be negative for overdue due dates, which pushes the
// deadline term past its on-time maximum.
func PredictPriority(urgency, complexity, deadlineDays int) models.TaskPriority {
	deadlinePressure := float64(10 - deadlineDays)
	if deadlinePressure < 0 {
		deadlinePressure = 0
	}

	score := float64(urgency)*0.4 + float64(complexity)*0.3 + deadlinePressure*0.3

	switch {
	case score >= highPriorityScore:
		return models.TaskPriorityHigh
	case score >= mediumPriorityScore:
		return models.TaskPriorityMedium
	default:
		return models.TaskPriorityLow
	}
}

// PredictCompletionTime estimates the hours a task will take:
// size * complexity * 2, scaled down by the assignee's efficiency factor.
func PredictCompletionTime(taskSize, complexity, efficiency float64) (float64, error) {
	if efficiency <= 0 {
		return 0, ErrNonPositiveEfficiency
	}
	return (taskSize * complexity * 2) / efficiency, nil
}
