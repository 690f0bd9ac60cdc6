package report

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"gorm.io/gorm"

	reportDomain "fieldservice-backend/internal/domain/report"
)

// Report numbers follow RPT-YYYYMMDD-NNN with NNN zero-padded to 3 digits
// and restarting at 001 each day.
const numberPrefix = "RPT"

func dayPrefix(day time.Time) string {
	return fmt.Sprintf("%s-%s-", numberPrefix, day.Format("20060102"))
}

// nextNumber computes the next report number for the given day by reading the
// greatest existing number with that day's prefix. It never fails: on an
// internal error it degrades to a random-jittered suffix. The unique index on
// report_number plus the caller's retry loop make the allocation safe under
// concurrent same-day submissions.
func nextNumber(ctx context.Context, repo reportDomain.Repository, day time.Time) string {
	prefix := dayPrefix(day)
	last, err := repo.LastNumberForPrefix(ctx, prefix)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return prefix + "001"
		}
		return fallbackNumber(prefix)
	}
	if len(last) < 3 {
		return fallbackNumber(prefix)
	}
	n, err := strconv.Atoi(last[len(last)-3:])
	if err != nil {
		return fallbackNumber(prefix)
	}
	return fmt.Sprintf("%s%03d", prefix, n+1)
}

func fallbackNumber(prefix string) string {
	return fmt.Sprintf("%s%03d", prefix, rand.Intn(999)+1)
}

// formatElapsed renders a duration as HH:MM:SS. Hours are not wrapped at 24.
func formatElapsed(d time.Duration) string {
	secs := int64(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
