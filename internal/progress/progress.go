// Package progress emits throttled, advisory progress diagnostics.
package progress

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum time between two progress lines of one task.
const DefaultInterval = 2 * time.Second

// Reporter logs the completion percentage of one task at most once per
// interval, plus the first update.
type Reporter struct {
	log   zerolog.Logger
	msg   string
	total int
	every rate.Sometimes
}

// New returns a reporter for a task of total units (0 if unknown). log
// should already carry whatever fields identify the task.
func New(log zerolog.Logger, msg string, total int, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{
		log:   log,
		msg:   msg,
		total: total,
		every: rate.Sometimes{First: 1, Interval: interval},
	}
}

// Update records that done units are complete.
func (r *Reporter) Update(done int) {
	if r == nil {
		return
	}
	r.every.Do(func() {
		ev := r.log.Info().Int("done", done)
		if r.total > 0 {
			ev = ev.Int("total", r.total).Str("percent", Percent(done, r.total))
		}
		ev.Msg(r.msg)
	})
}

// Percent formats done/total with two decimals; an empty task is 100%.
func Percent(done, total int) string {
	if total <= 0 {
		return "100.00%"
	}
	return formatPercent(float64(done) * 100 / float64(total))
}
