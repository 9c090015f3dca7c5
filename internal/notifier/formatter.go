package notifier

import (
	"fmt"
	"strings"
	"time"

	"MarketBoard/internal/pipeline"
)

// FormatRunSummary formats a fetch run result into a Telegram message.
func FormatRunSummary(res *pipeline.Result) string {
	var b strings.Builder

	snap := res.Snapshot
	b.WriteString(fmt.Sprintf("📊 <b>MarketBoard fetch</b> | %s\n\n", snap.GeneratedAt))
	b.WriteString(fmt.Sprintf("Records: %d in %d groups\n", snap.TotalRecords(), len(snap.GroupOrder)))
	b.WriteString(fmt.Sprintf("Duration: %s\n", res.Duration.Round(time.Millisecond)))

	if len(res.Omitted) > 0 {
		b.WriteString(fmt.Sprintf("\n⚠ Omitted (%d): %s\n", len(res.Omitted), strings.Join(res.Omitted, ", ")))
	}
	return b.String()
}
