package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-junction/internal/junction"
)

// HUDInfo is what the HUD shows besides the snapshot itself.
type HUDInfo struct {
	Scenario  string
	RunID     string
	Remaining time.Duration // time left in the current signal phase
	Paused    bool
}

// RenderHUD renders the status lines shown under the arena.
func RenderHUD(snap junction.Snapshot, info HUDInfo, th Theme) string {
	sep := th.HUDSeparator.Render("  │  ")
	field := func(label string, value any) string {
		return th.HUDLabel.Render(label+" ") + th.HUDValue.Render(fmt.Sprint(value))
	}
	light := func(name string, green bool) string {
		if green {
			return th.HUDLabel.Render(name+" ") + th.LightGreen.Render("● green")
		}
		return th.HUDLabel.Render(name+" ") + th.LightRed.Render("● red")
	}

	top := []string{
		th.HUDTitle.Render("junction") + " " + th.HUDLabel.Render(info.Scenario),
		field("run", shortID(info.RunID)),
		field("tick", snap.Tick),
		light("N/S", snap.VerticalGreen) + "  " + light("E/W", snap.HorizontalGreen),
		field("switch in", info.Remaining.Round(100*time.Millisecond)),
	}
	if info.Paused {
		top = append(top, th.Paused.Render("PAUSED"))
	}

	st := snap.Stats
	bottom := []string{
		field("active", fmt.Sprintf("%d/%d", snap.Active, snap.ActiveCap)),
		field("queued", fmt.Sprintf("%d/%d", snap.Queued, snap.QueueCap)),
		field("spawned", st.Spawned),
		field("departed", st.Departed),
		field("held red", st.HeldRed),
		field("held illegal", st.HeldIllegal),
	}
	if st.Dropped > 0 {
		bottom = append(bottom, th.HUDWarn.Render(fmt.Sprintf("dropped %d", st.Dropped)))
	}
	if st.Rejected > 0 {
		bottom = append(bottom, th.HUDWarn.Render(fmt.Sprintf("rejected %d", st.Rejected)))
	}
	if !snap.SourceOpen {
		bottom = append(bottom, th.HUDWarn.Render("source closed"))
	}

	return strings.Join(top, sep) + "\n" + strings.Join(bottom, sep)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
