package phases

import (
	"testing"

	"github.com/carlosjramirezg1979/InProject/models"
)

func status(initiation, planning, execution, closing models.PhaseStatus) models.ProjectStatus {
	return models.ProjectStatus{
		Initiation: initiation,
		Planning:   planning,
		Execution:  execution,
		Closing:    closing,
	}
}

func TestNewStatus(t *testing.T) {
	s := NewStatus()

	if s.Initiation != models.PhaseInProgress {
		t.Errorf("initiation = %q, want %q", s.Initiation, models.PhaseInProgress)
	}
	for _, phase := range []models.ProjectPhase{models.PhasePlanning, models.PhaseExecution, models.PhaseClosing} {
		if got := Get(s, phase); got != models.PhaseLocked {
			t.Errorf("%s = %q, want locked", phase, got)
		}
	}
	if got := ProgressPercentage(s); got != 0 {
		t.Errorf("ProgressPercentage(new) = %v, want 0", got)
	}
	if got := CurrentPhase(s); got.Label != "Inicio" {
		t.Errorf("CurrentPhase(new).Label = %q, want Inicio", got.Label)
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name   string
		status models.ProjectStatus
		want   float64
	}{
		{
			name:   "nothing completed",
			status: status(models.PhaseInProgress, models.PhaseLocked, models.PhaseLocked, models.PhaseLocked),
			want:   0,
		},
		{
			name:   "one completed",
			status: status(models.PhaseCompleted, models.PhaseInProgress, models.PhaseLocked, models.PhaseLocked),
			want:   25,
		},
		{
			name:   "two completed",
			status: status(models.PhaseCompleted, models.PhaseCompleted, models.PhaseInProgress, models.PhaseLocked),
			want:   50,
		},
		{
			name:   "three completed",
			status: status(models.PhaseCompleted, models.PhaseCompleted, models.PhaseCompleted, models.PhaseInProgress),
			want:   75,
		},
		{
			name:   "all completed",
			status: status(models.PhaseCompleted, models.PhaseCompleted, models.PhaseCompleted, models.PhaseCompleted),
			want:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressPercentage(tt.status); got != tt.want {
				t.Errorf("ProgressPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ProgressPercentage must land on a quarter step no matter what the
// four fields hold, and grow with the completed count.
func TestProgressPercentageIsQuarterStepped(t *testing.T) {
	values := []models.PhaseStatus{models.PhaseLocked, models.PhaseNotStarted, models.PhaseInProgress, models.PhaseCompleted}
	allowed := map[float64]bool{0: true, 25: true, 50: true, 75: true, 100: true}

	prevByCount := map[int]float64{}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				for _, d := range values {
					s := status(a, b, c, d)
					got := ProgressPercentage(s)
					if !allowed[got] {
						t.Fatalf("ProgressPercentage(%v) = %v, not a quarter step", s, got)
					}
					completed := 0
					for _, v := range []models.PhaseStatus{a, b, c, d} {
						if v == models.PhaseCompleted {
							completed++
						}
					}
					if want := float64(completed) * 25; got != want {
						t.Fatalf("ProgressPercentage(%v) = %v, want %v", s, got, want)
					}
					prevByCount[completed] = got
				}
			}
		}
	}
	for i := 1; i <= 4; i++ {
		if prevByCount[i] <= prevByCount[i-1] {
			t.Errorf("progress not monotonic in completed count: %v", prevByCount)
		}
	}
}

func TestCurrentPhase(t *testing.T) {
	tests := []struct {
		name        string
		status      models.ProjectStatus
		wantLabel   string
		wantVariant string
	}{
		{
			name:        "fresh project",
			status:      NewStatus(),
			wantLabel:   "Inicio",
			wantVariant: "purple",
		},
		{
			name:        "nothing underway",
			status:      status(models.PhaseNotStarted, models.PhaseLocked, models.PhaseLocked, models.PhaseLocked),
			wantLabel:   "No Iniciado",
			wantVariant: "gray",
		},
		{
			name:        "planning underway",
			status:      status(models.PhaseCompleted, models.PhaseInProgress, models.PhaseLocked, models.PhaseLocked),
			wantLabel:   "Planificación",
			wantVariant: "orange",
		},
		{
			name:        "execution underway",
			status:      status(models.PhaseCompleted, models.PhaseCompleted, models.PhaseInProgress, models.PhaseLocked),
			wantLabel:   "Ejecución",
			wantVariant: "blue",
		},
		{
			name:        "closing wins over everything",
			status:      status(models.PhaseCompleted, models.PhaseCompleted, models.PhaseCompleted, models.PhaseInProgress),
			wantLabel:   "Cierre",
			wantVariant: "green",
		},
		{
			name:        "closing completed still reads closing",
			status:      status(models.PhaseCompleted, models.PhaseCompleted, models.PhaseCompleted, models.PhaseCompleted),
			wantLabel:   "Cierre",
			wantVariant: "green",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentPhase(tt.status)
			if got.Label != tt.wantLabel || got.Variant != tt.wantVariant {
				t.Errorf("CurrentPhase() = %+v, want {%s %s}", got, tt.wantLabel, tt.wantVariant)
			}
		})
	}
}

// Half-completed example from the dashboard: two phases done, execution
// underway.
func TestCurrentPhaseMidProject(t *testing.T) {
	s := status(models.PhaseCompleted, models.PhaseCompleted, models.PhaseInProgress, models.PhaseLocked)

	if got := ProgressPercentage(s); got != 50 {
		t.Errorf("ProgressPercentage() = %v, want 50", got)
	}
	if got := CurrentPhase(s); got.Label != "Ejecución" {
		t.Errorf("CurrentPhase().Label = %q, want Ejecución", got.Label)
	}
}

func TestIsUnlocked(t *testing.T) {
	s := NewStatus()

	if !IsUnlocked(s, models.PhaseInitiation) {
		t.Error("initiation should be unlocked on a new project")
	}
	for _, phase := range []models.ProjectPhase{models.PhasePlanning, models.PhaseExecution, models.PhaseClosing} {
		if IsUnlocked(s, phase) {
			t.Errorf("%s should be locked on a new project", phase)
		}
	}

	// Unknown values fail closed.
	bad := models.ProjectStatus{Initiation: "garbage"}
	if IsUnlocked(bad, models.PhaseInitiation) {
		t.Error("malformed status value must read as locked")
	}
	if IsUnlocked(s, models.ProjectPhase("monitoring")) {
		t.Error("unknown phase must read as locked")
	}
}

func TestCompleteAndUnlock(t *testing.T) {
	s := NewStatus()

	// Planning is locked: completing it is rejected.
	if _, err := Complete(s, models.PhasePlanning); err == nil {
		t.Fatal("completing a locked phase must fail")
	}

	// Unlocking planning before initiation completes is rejected.
	if _, err := Unlock(s, models.PhasePlanning); err == nil {
		t.Fatal("unlocking with incomplete predecessor must fail")
	}

	s, err := Complete(s, models.PhaseInitiation)
	if err != nil {
		t.Fatalf("Complete(initiation) failed: %v", err)
	}
	if s.Initiation != models.PhaseCompleted {
		t.Fatalf("initiation = %q after Complete", s.Initiation)
	}

	// Completion alone does not unlock the successor.
	if s.Planning != models.PhaseLocked {
		t.Fatalf("planning = %q, completion must not auto-unlock", s.Planning)
	}

	s, err = Unlock(s, models.PhasePlanning)
	if err != nil {
		t.Fatalf("Unlock(planning) failed: %v", err)
	}
	if s.Planning != models.PhaseNotStarted {
		t.Fatalf("planning = %q after Unlock, want not-started", s.Planning)
	}

	s, err = Start(s, models.PhasePlanning)
	if err != nil {
		t.Fatalf("Start(planning) failed: %v", err)
	}
	if s.Planning != models.PhaseInProgress {
		t.Fatalf("planning = %q after Start, want in-progress", s.Planning)
	}

	// Unlock on a non-locked phase is rejected.
	if _, err := Unlock(s, models.PhasePlanning); err == nil {
		t.Fatal("unlocking a non-locked phase must fail")
	}

	// Initiation has no predecessor; unlocking it never applies.
	locked := models.ProjectStatus{Initiation: models.PhaseLocked}
	if _, err := Unlock(locked, models.PhaseInitiation); err == nil {
		t.Fatal("unlocking initiation must fail")
	}
}

func TestValid(t *testing.T) {
	if !Valid(NewStatus()) {
		t.Error("NewStatus must be valid")
	}
	if Valid(models.ProjectStatus{}) {
		t.Error("zero status must be invalid")
	}
	if Valid(status(models.PhaseCompleted, "weird", models.PhaseLocked, models.PhaseLocked)) {
		t.Error("unknown value must be invalid")
	}
}
