package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDeliveryStatus(t *testing.T) {
	cases := []struct {
		current string
		next    string
	}{
		{DeliveryStatusPendiente, DeliveryStatusPreparando},
		{DeliveryStatusPreparando, DeliveryStatusListo},
		{DeliveryStatusListo, DeliveryStatusEntregado},
		{DeliveryStatusEntregado, DeliveryStatusPendiente},
		{"", DeliveryStatusPendiente},
		{"CANCELADO", DeliveryStatusPendiente},
	}

	for _, c := range cases {
		assert.Equal(t, c.next, NextDeliveryStatus(c.current), "from %q", c.current)
	}
}

func TestDeliveryOrder_IsActive(t *testing.T) {
	assert.True(t, DeliveryOrder{Status: DeliveryActive, StatusOrder: DeliveryStatusPendiente}.IsActive())
	assert.True(t, DeliveryOrder{Status: DeliveryActive, StatusOrder: DeliveryStatusListo}.IsActive())
	assert.False(t, DeliveryOrder{Status: DeliveryActive, StatusOrder: DeliveryStatusEntregado}.IsActive())
	assert.False(t, DeliveryOrder{Status: DeliveryInactive, StatusOrder: DeliveryStatusPendiente}.IsActive())
}

func TestTableStatusText(t *testing.T) {
	assert.Equal(t, "Disponible", TableStatusText(TableStatusAvailable))
	assert.Equal(t, "Ocupada", TableStatusText(TableStatusOccupied))
	assert.Equal(t, "Solicitando atención", TableStatusText(TableStatusRequestingAttention))
	assert.Equal(t, "Reservada", TableStatusText(TableStatusReserved))
	assert.Equal(t, "Desconocido", TableStatusText(0))
	assert.Equal(t, "Desconocido", TableStatusText(99))
}
