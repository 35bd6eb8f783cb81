package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RolePatient.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("nurse").Valid())
	assert.False(t, Role("").Valid())
}

func TestProfile_CloneDoesNotShareAvatar(t *testing.T) {
	avatar := "/hko.jpg"
	p := Profile{ID: "JO-2024-00001", Name: "Zaid Omar", AvatarURL: &avatar}

	c := p.Clone()
	*p.AvatarURL = "/changed.jpg"

	require.NotNil(t, c.AvatarURL)
	assert.Equal(t, "/hko.jpg", *c.AvatarURL)
}

func TestSession_CloneNil(t *testing.T) {
	var s *Session
	assert.Nil(t, s.Clone())
}

func TestSession_Role(t *testing.T) {
	s := &Session{User: Profile{Role: RoleDoctor}}
	assert.Equal(t, RoleDoctor, s.Role())
}

func TestSeverity_OrderAndNames(t *testing.T) {
	assert.True(t, SeverityDanger.AtLeast(SeverityWarning))
	assert.True(t, SeverityWarning.AtLeast(SeverityWarning))
	assert.False(t, SeverityGood.AtLeast(SeverityWarning))

	assert.Equal(t, "excellent", SeverityExcellent.String())
	assert.Equal(t, "danger", SeverityDanger.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())

	b, err := SeverityWarning.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "warning", string(b))
}

func TestReadingSet_ReadingsSkipsDiastolic(t *testing.T) {
	rs := ReadingSet{Systolic: 118, Diastolic: 76, HeartRate: 72, Glucose: 95, Temperature: 98.6}
	got := rs.Readings()

	require.Len(t, got, 4)
	assert.Equal(t, Reading{Kind: VitalSystolic, Value: 118}, got[0])
	assert.Equal(t, Reading{Kind: VitalTemperature, Value: 98.6}, got[3])
}

func TestVitalKind_Unit(t *testing.T) {
	assert.Equal(t, "mmHg", VitalSystolic.Unit())
	assert.Equal(t, "bpm", VitalHeartRate.Unit())
	assert.Equal(t, "", VitalKind("weight").Unit())
}
