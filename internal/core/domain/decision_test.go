package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railfleet/fleet_mgmt_app/internal/core/domain"
)

func TestNewValidationDecisionPermitsByDefault(t *testing.T) {
	d := domain.NewValidationDecision()

	assert.True(t, d.CanTransition)
	assert.Empty(t, d.BlockingErrors)
	assert.Empty(t, d.Warnings)
	assert.Empty(t, d.PassedChecks)
	assert.NotNil(t, d.Context)
}

func TestBlockFlipsCanTransition(t *testing.T) {
	d := domain.NewValidationDecision()

	d.Block("MISSING_PDF", "Required PDF attachment is missing.", domain.RoleAdmin)

	assert.False(t, d.CanTransition)
	require.Len(t, d.BlockingErrors, 1)
	assert.Equal(t, "MISSING_PDF", d.BlockingErrors[0].Code)
	assert.Equal(t, domain.DecisionBlock, d.BlockingErrors[0].Decision)
	assert.Equal(t, domain.RoleAdmin, d.BlockingErrors[0].OwningRole)
}

func TestWarnDoesNotAffectCanTransition(t *testing.T) {
	d := domain.NewValidationDecision()

	d.Warn("CAR_REMARKED", "Car RAIL100001 has been remarked to RAIL200001.", domain.RoleAdmin)
	d.Warn("ESTIMATE_VARIANCE_MINOR", "Invoice exceeds estimate by 42.00.", domain.RoleMaintenance)

	assert.True(t, d.CanTransition)
	assert.Len(t, d.Warnings, 2)
	assert.Equal(t, domain.DecisionWarn, d.Warnings[0].Decision)
}

func TestBlocksAccumulate(t *testing.T) {
	d := domain.NewValidationDecision()

	d.Block("MISSING_PDF", "Required PDF attachment is missing.", domain.RoleAdmin)
	d.Block("INVALID_TRANSITION", "Transition from RECEIVED to APPROVED is not permitted.", domain.RoleSystem)
	d.Pass("TXT_PRESENT")
	d.SetContext("carCount", 3)

	assert.False(t, d.CanTransition)
	assert.Len(t, d.BlockingErrors, 2)
	assert.Equal(t, []string{"TXT_PRESENT"}, d.PassedChecks)
	assert.Equal(t, 3, d.Context["carCount"])
}
