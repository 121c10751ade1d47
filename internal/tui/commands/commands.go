// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rotina/internal/freetime"
	"github.com/javiermolinar/rotina/internal/plan"
	"github.com/javiermolinar/rotina/internal/planner"
)

// DayService is the subset of the planner the TUI drives.
type DayService interface {
	Day(ctx context.Context, date time.Time) (*plan.DayRecord, error)
	FreeTime(ctx context.Context, date time.Time) ([]freetime.FreeSlot, error)
	SetCompleted(ctx context.Context, date time.Time, id string, done bool) (*plan.Activity, error)
	AddProgress(ctx context.Context, date time.Time, id string, amount int) (*plan.Activity, error)
}

// DayLoadedMsg is sent when a day is loaded. Record is nil if the date has
// no saved plan.
type DayLoadedMsg struct {
	Date   time.Time
	Record *plan.DayRecord
	Free   []freetime.FreeSlot
}

// ActivityUpdatedMsg is sent after a tracking change was persisted.
type ActivityUpdatedMsg struct {
	Date     time.Time
	Activity *plan.Activity
	Status   string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadDay loads the record and free slots of a date.
func LoadDay(svc DayService, date time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rec, err := svc.Day(ctx, date)
		if errors.Is(err, planner.ErrDayNotFound) {
			return DayLoadedMsg{Date: date}
		}
		if err != nil {
			return ErrMsg{Err: err}
		}

		free, err := svc.FreeTime(ctx, date)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return DayLoadedMsg{Date: date, Record: rec, Free: free}
	}
}

// SetCompleted marks an activity as done or not done.
func SetCompleted(svc DayService, date time.Time, id string, done bool) tea.Cmd {
	return func() tea.Msg {
		act, err := svc.SetCompleted(context.Background(), date, id, done)
		if err != nil {
			return ErrMsg{Err: err}
		}

		status := fmt.Sprintf("✓ %s concluído", act.Name)
		if !done {
			status = fmt.Sprintf("○ %s desmarcado", act.Name)
		}
		return ActivityUpdatedMsg{Date: date, Activity: act, Status: status}
	}
}

// AddWater records ml of water against the day's hydration goal.
func AddWater(svc DayService, date time.Time, ml int) tea.Cmd {
	return func() tea.Msg {
		act, err := svc.AddProgress(context.Background(), date, plan.IDHydration, ml)
		if err != nil {
			return ErrMsg{Err: err}
		}

		status := fmt.Sprintf("+%dml (%s)", ml, act.WaterProgress())
		if act.IsCompleted() {
			status += " meta atingida!"
		}
		return ActivityUpdatedMsg{Date: date, Activity: act, Status: status}
	}
}

// CopyText copies text to the system clipboard.
func CopyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copiado para a área de transferência"}
	}
}
