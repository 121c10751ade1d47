package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/rotina/internal/conflict"
	"github.com/javiermolinar/rotina/internal/freetime"
	"github.com/javiermolinar/rotina/internal/plan"
)

func TestSamplePlanIsConflictFree(t *testing.T) {
	activities, err := plan.Build(SamplePlan(), 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	friday := time.Date(2026, 10, 16, 0, 0, 0, 0, time.Local)
	conflicts, err := conflict.NewValidator(nil).Validate(activities, friday)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) > 0 {
		t.Errorf("sample plan has conflicts:\n%s", conflict.FormatConflicts(conflicts))
	}
}

func TestProgressBar(t *testing.T) {
	DisableColor()

	tests := []struct {
		name         string
		value, total int
		want         string
	}{
		{"empty total", 5, 0, "[░░░░░░░░░░] (0%)"},
		{"half", 1000, 2000, "[█████░░░░░] (50%)"},
		{"clamped above", 3000, 2000, "[██████████] (100%)"},
		{"clamped below", -5, 10, "[░░░░░░░░░░] (0%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.value, tt.total, 10); got != tt.want {
				t.Errorf("ProgressBar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintActivityRow(t *testing.T) {
	DisableColor()

	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	a := plan.Activity{
		ID:        "work-0-0",
		Type:      plan.TypeWork,
		Name:      "PADARIA DO BAIRRO COM UM NOME MUITO LONGO",
		StartTime: "08:00",
		EndTime:   "12:00",
		Notes:     "levar avental",
		Tracking:  &plan.TrackingState{Completed: true, CompletedAt: &at},
		Override:  &plan.ScheduleOverride{Start: "09:00", End: "13:00", Reason: "atraso"},
	}

	var buf bytes.Buffer
	PrintActivityRow(&buf, a, PrintOpts{Verbose: true, ShowIDs: true}, 12)
	out := buf.String()

	assertContains(t, out, "✓", "09:00-13:00", "Trabalho", "PADARIA DO …", "4h",
		"(ajustado de 08:00-12:00: atraso)", "[work-0-0]", "levar avental")
	if strings.Contains(out, "LONGO") {
		t.Errorf("name was not truncated:\n%s", out)
	}
}

func TestPrintActivityRow_Point(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	PrintActivityRow(&buf, plan.Activity{
		ID: "meal-0", Type: plan.TypeMeal, Name: "Refeição 1", StartTime: "12:00", EndTime: "12:00",
	}, PrintOpts{}, 20)

	out := buf.String()
	if strings.Contains(out, "12:00-12:00") {
		t.Errorf("point activity should show a single time:\n%s", out)
	}
	assertContains(t, out, "○", "12:00", "Refeição")
}

func TestPrintConflicts(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	PrintConflicts(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("no conflicts should print nothing, got %q", buf.String())
	}

	PrintConflicts(&buf, []conflict.Conflict{{
		A: plan.Activity{Name: "PADARIA", StartTime: "08:00", EndTime: "12:00"},
		B: plan.Activity{Name: "Inglês", StartTime: "11:00", EndTime: "13:00"},
	}})
	assertContains(t, buf.String(), "1 conflito(s)", "- PADARIA (08:00-12:00) conflita com Inglês (11:00-13:00)")
}

func TestPrintFreeSlots(t *testing.T) {
	DisableColor()

	var buf bytes.Buffer
	PrintFreeSlots(&buf, nil)
	assertContains(t, buf.String(), "Nenhum tempo livre.")

	buf.Reset()
	PrintFreeSlots(&buf, []freetime.FreeSlot{
		{StartTime: "12:00", EndTime: "13:30", DurationMinutes: 90, Duration: "1h 30min", Suggestion: freetime.LongInterval},
		{StartTime: "16:00", EndTime: "16:30", DurationMinutes: 30, Duration: "30min", Suggestion: freetime.MediumBreak},
	})
	assertContains(t, buf.String(), "12:00-13:30", "Intervalo longo", "Pausa média", "Tempo livre total: 2h")
}
