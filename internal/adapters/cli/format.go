// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"math"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/guildmaster/internal/core/quest"
)

const rule = "────────────────────────────────────────────────────────────────────────"

func statusLabel(s quest.Status) string {
	switch s {
	case quest.StatusRunning:
		return color.New(color.FgGreen).Sprintf("%-8s", s)
	case quest.StatusIdle:
		return color.New(color.FgYellow).Sprintf("%-8s", s)
	default:
		return color.New(color.FgRed).Sprintf("%-8s", s)
	}
}

func progressBar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func gold(amount float64) string {
	return color.New(color.FgHiYellow).Sprintf("%.0f gold", math.Floor(amount))
}

func signed(delta int) string {
	switch {
	case delta > 0:
		return color.New(color.FgGreen).Sprintf("+%d", delta)
	case delta < 0:
		return color.New(color.FgRed).Sprintf("%d", delta)
	default:
		return "0"
	}
}

func msDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func humanDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return d.String()
	}
	s := strings.TrimSuffix(d.Truncate(time.Minute).String(), "0s")
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}
