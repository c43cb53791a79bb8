package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice_GroupsThousands(t *testing.T) {
	assert.Equal(t, "$12.500", Price(12500))
	assert.Equal(t, "$1.250.000", Price(1250000))
}

func TestPrice_NoFractionDigits(t *testing.T) {
	assert.Equal(t, "$42", Price(42.4))
	assert.Equal(t, "$0", Price(0))
}

func TestClock_RFC3339(t *testing.T) {
	assert.Equal(t, "18:05", Clock("2025-07-14T18:05:33Z"))
	assert.Equal(t, "09:30", Clock("2025-07-14T09:30:00-05:00"))
}

func TestClock_Malformed(t *testing.T) {
	assert.Equal(t, "", Clock(""))
	assert.Equal(t, "", Clock("ayer a las ocho"))
}
