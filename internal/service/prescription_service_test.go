package service

import (
	"testing"
	"time"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidUntil(t *testing.T) {
	got, err := parseValidUntil("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseValidUntil("2026-09-15")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *got)

	_, err = parseValidUntil("15/09/2026")
	require.Error(t, err)
	httpErr, ok := err.(*serverutils.HTTPError)
	require.True(t, ok)
	assert.Equal(t, 400, httpErr.Code)
}

func TestMedicationsRoundTrip(t *testing.T) {
	in := []dto.MedicationDTO{
		{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days", Instructions: "after meals"},
		{Name: "Paracetamol", Dosage: "1g", Frequency: "as needed"},
	}

	entities := medicationsFromDTO(in)
	require.Len(t, entities, 2)
	assert.Equal(t, "Amoxicillin", entities[0].Name)
	assert.Equal(t, "as needed", entities[1].Frequency)

	out := medicationsToDTO(entities)
	assert.Equal(t, in, out)
}
