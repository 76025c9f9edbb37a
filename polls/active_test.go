// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"testing"
	"time"

	"github.com/maina2/pollpro/models"
)

func TestIsActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"no expiry never expires", nil, true},
		{"future expiry is active", &future, true},
		{"past expiry is inactive", &past, false},
		{"expiry equal to now is inactive", &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			poll := models.Poll{ID: "p1", ExpiresAt: tt.expiresAt}
			if got := IsActive(poll, now); got != tt.want {
				t.Errorf("IsActive = %v, want %v", got, tt.want)
			}
		})
	}
}
