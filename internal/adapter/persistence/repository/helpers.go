package repository

import (
	"strconv"
	"time"

	"freight_settlement/internal/domain/valueobject"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// expiresAt is the epoch-seconds value read by the DynamoDB TTL on drafts.
func expiresAt(from time.Time, ttl time.Duration) int64 {
	if from.IsZero() {
		from = time.Now().UTC()
	}
	return from.Add(ttl).Unix()
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func ref(s string, set bool) *string {
	if !set {
		return nil
	}
	return &s
}

func decimalPtr(s *string) *valueobject.EditableDecimal {
	if s == nil {
		return nil
	}
	d := valueobject.NewEditableDecimal(*s)
	return &d
}

func rawPtr(d *valueobject.EditableDecimal) *string {
	if d == nil {
		return nil
	}
	s := d.Raw()
	return &s
}

// DynamoDB map keys are strings; stage numbers are stored in decimal.
func intKeyed[V any](m map[string]V) map[int]V {
	out := make(map[int]V, len(m))
	for k, v := range m {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[n] = v
	}
	return out
}

func stringKeyed[V any](m map[int]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[strconv.Itoa(k)] = v
	}
	return out
}
