package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumDomains(t *testing.T) {
	assert.Len(t, SessionDays(), 7)
	assert.Len(t, Outcomes(), 4)
	assert.Len(t, SessionStatuses(), 5)
	assert.Len(t, SessionTypes(), 8)
	assert.Len(t, DeliveryMethods(), 4)
	assert.Len(t, MissedReasons(), 7)
}

func TestEnumValidation(t *testing.T) {
	for _, d := range SessionDays() {
		assert.True(t, d.Valid())
	}
	assert.False(t, SessionDay("Funday").Valid())
	assert.False(t, SessionDay("").Valid())

	// Values are case sensitive: the wire format stores them verbatim.
	assert.True(t, StatusDNA.Valid())
	assert.False(t, SessionStatus("dna").Valid())

	assert.True(t, OutcomeDataUnavailable.Valid())
	assert.False(t, Outcome("Unknown").Valid())

	assert.True(t, TypeAssessmentParentFamily.Valid())
	assert.False(t, SessionType("Assessment").Valid())

	assert.True(t, DeliveryFaceToFace.Valid())
	assert.False(t, DeliveryMethod("InPerson").Valid())

	assert.True(t, MissedSchoolTransition.Valid())
	assert.False(t, MissedReason("Forgot").Valid())
}
