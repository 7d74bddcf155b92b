package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

func TestNormalizeResponsibilityCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"7", "1"},
		{"4", "1"},
		{"0", "1"},
		{"W", "1"},
		{"8", "9"},
		{"9", "9"},
		{"1", "1"},
		{"2", "2"},
		{"X", "X"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.NormalizeResponsibilityCode(tt.code), "code %q", tt.code)
	}
}

func TestIsResponsibilityEquivalent(t *testing.T) {
	assert.True(t, domain.IsResponsibilityEquivalent("7", "W"))
	assert.True(t, domain.IsResponsibilityEquivalent("8", "9"))
	assert.True(t, domain.IsResponsibilityEquivalent("1", "0"))
	assert.False(t, domain.IsResponsibilityEquivalent("7", "8"))
	assert.False(t, domain.IsResponsibilityEquivalent("2", "3"))
}
