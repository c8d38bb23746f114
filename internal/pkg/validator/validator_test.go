package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"))
	assert.True(t, IsValidUUID("A1B2C3D4-E5F6-4A7B-8C9D-0E1F2A3B4C5D"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("a1b2c3d4e5f64a7b8c9d0e1f2a3b4c5d"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidMonthKey(t *testing.T) {
	valid := []string{"2025_01", "2025_09", "2025_12", "1999_06"}
	for _, key := range valid {
		assert.True(t, IsValidMonthKey(key), key)
	}

	invalid := []string{"2025_13", "2025_00", "2025-01", "202501", "25_01", "2025_1", ""}
	for _, key := range invalid {
		assert.False(t, IsValidMonthKey(key), key)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-06-32")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2025-06-15T08:31:00Z")
	assert.True(t, ok)

	ts, ok := IsValidDateTime("2025-06-15T08:31:00+07:00")
	assert.True(t, ok)
	_, offset := ts.Zone()
	assert.Equal(t, 7*3600, offset)

	_, ok = IsValidDateTime("2025-06-15 08:31:00")
	assert.False(t, ok)

	_, ok = IsValidDateTime("2025-06-15")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"morning", "evening", "double"}
	assert.True(t, IsInSlice("morning", slice))
	assert.False(t, IsInSlice("night", slice))
	assert.False(t, IsInSlice("", slice))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "presence", Message: "unrecognized presence value"},
		{Field: "advance", Message: "must not be negative"},
	}

	assert.Equal(t, "presence: unrecognized presence value; advance: must not be negative", errs.Error())
	assert.Equal(t, map[string]string{
		"presence": "unrecognized presence value",
		"advance":  "must not be negative",
	}, errs.ToMap())
}
