package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateUUIDString() string {
	return uuid.New().String()
}

// GenerateBookID creates the human facing booking reference.
// Format: WTL-YYYYMMDD-XXXXXXXX
func GenerateBookID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("WTL-%s-%s", now.Format("20060102"), suffix)
}
