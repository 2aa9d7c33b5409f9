// internal/application/helpers_test.go
package application

import (
	"errors"
	"testing"
	"time"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

var fixedNow = time.Date(2024, time.March, 13, 15, 30, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func assertKind(t *testing.T, err error, want domain.Kind) {
	t.Helper()
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *domain.Error of kind %v", err, want)
	}
	if de.Kind != want {
		t.Errorf("error kind = %v, want %v (message %q)", de.Kind, want, de.Message)
	}
}
