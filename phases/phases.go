// Package phases is the single place that knows how a project moves
// through its four phases. Handlers and services query it instead of
// checking status fields themselves, so the locking rules live here and
// nowhere else.
package phases

import (
	"fmt"

	"github.com/carlosjramirezg1979/InProject/models"
)

// Order lists the phases from first to last.
var Order = []models.ProjectPhase{
	models.PhaseInitiation,
	models.PhasePlanning,
	models.PhaseExecution,
	models.PhaseClosing,
}

// Badge is the display summary for a project's most advanced phase.
type Badge struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

// NewStatus is the status map every freshly created project starts with:
// initiation underway, everything after it locked.
func NewStatus() models.ProjectStatus {
	return models.ProjectStatus{
		Initiation: models.PhaseInProgress,
		Planning:   models.PhaseLocked,
		Execution:  models.PhaseLocked,
		Closing:    models.PhaseLocked,
	}
}

// Get returns the status of one phase. Unknown phase names read as
// locked, so a malformed document fails closed.
func Get(status models.ProjectStatus, phase models.ProjectPhase) models.PhaseStatus {
	switch phase {
	case models.PhaseInitiation:
		return status.Initiation
	case models.PhasePlanning:
		return status.Planning
	case models.PhaseExecution:
		return status.Execution
	case models.PhaseClosing:
		return status.Closing
	}
	return models.PhaseLocked
}

func set(status *models.ProjectStatus, phase models.ProjectPhase, s models.PhaseStatus) {
	switch phase {
	case models.PhaseInitiation:
		status.Initiation = s
	case models.PhasePlanning:
		status.Planning = s
	case models.PhaseExecution:
		status.Execution = s
	case models.PhaseClosing:
		status.Closing = s
	}
}

// IsUnlocked reports whether a phase's detail pages are reachable. Any
// value that is not an explicit non-locked status counts as locked.
func IsUnlocked(status models.ProjectStatus, phase models.ProjectPhase) bool {
	switch Get(status, phase) {
	case models.PhaseNotStarted, models.PhaseInProgress, models.PhaseCompleted:
		return true
	}
	return false
}

// CurrentPhase returns the badge for the most advanced phase that is in
// progress or completed, scanning closing first. Projects with nothing
// underway report "No Iniciado".
func CurrentPhase(status models.ProjectStatus) Badge {
	if active(status.Closing) {
		return Badge{Label: "Cierre", Variant: "green"}
	}
	if active(status.Execution) {
		return Badge{Label: "Ejecución", Variant: "blue"}
	}
	if active(status.Planning) {
		return Badge{Label: "Planificación", Variant: "orange"}
	}
	if active(status.Initiation) {
		return Badge{Label: "Inicio", Variant: "purple"}
	}
	return Badge{Label: "No Iniciado", Variant: "gray"}
}

func active(s models.PhaseStatus) bool {
	return s == models.PhaseInProgress || s == models.PhaseCompleted
}

// ProgressPercentage is 100 * completed phases / 4. All phases weigh the
// same.
func ProgressPercentage(status models.ProjectStatus) float64 {
	completed := 0
	for _, phase := range Order {
		if Get(status, phase) == models.PhaseCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(Order)) * 100
}

// Start moves a not-started phase to in-progress.
func Start(status models.ProjectStatus, phase models.ProjectPhase) (models.ProjectStatus, error) {
	if Get(status, phase) != models.PhaseNotStarted {
		return status, fmt.Errorf("phase %s cannot be started from status %q", phase, Get(status, phase))
	}
	set(&status, phase, models.PhaseInProgress)
	return status, nil
}

// Complete marks a phase completed. A locked phase cannot be completed.
// Completing a phase does NOT unlock its successor; that is a separate,
// explicitly triggered action (Unlock).
func Complete(status models.ProjectStatus, phase models.ProjectPhase) (models.ProjectStatus, error) {
	if !IsUnlocked(status, phase) {
		return status, fmt.Errorf("phase %s is locked", phase)
	}
	set(&status, phase, models.PhaseCompleted)
	return status, nil
}

// Unlock moves a locked phase to not-started, allowed only once its
// predecessor is completed. Initiation is never locked on a well-formed
// project, so unlocking it is rejected.
func Unlock(status models.ProjectStatus, phase models.ProjectPhase) (models.ProjectStatus, error) {
	if Get(status, phase) != models.PhaseLocked {
		return status, fmt.Errorf("phase %s is not locked", phase)
	}
	prev, ok := predecessor(phase)
	if !ok {
		return status, fmt.Errorf("phase %s has no predecessor to complete first", phase)
	}
	if Get(status, prev) != models.PhaseCompleted {
		return status, fmt.Errorf("phase %s cannot be unlocked until %s is completed", phase, prev)
	}
	set(&status, phase, models.PhaseNotStarted)
	return status, nil
}

func predecessor(phase models.ProjectPhase) (models.ProjectPhase, bool) {
	for i, p := range Order {
		if p == phase {
			if i == 0 {
				return "", false
			}
			return Order[i-1], true
		}
	}
	return "", false
}

// Valid reports whether every phase field carries a known status value.
// Rendering layers treat an invalid status as a fatal precondition
// violation, never as something to repair.
func Valid(status models.ProjectStatus) bool {
	for _, phase := range Order {
		switch Get(status, phase) {
		case models.PhaseLocked, models.PhaseNotStarted, models.PhaseInProgress, models.PhaseCompleted:
		default:
			return false
		}
	}
	return true
}
