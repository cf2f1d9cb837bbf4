package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceValidation(t *testing.T) {
	_, err := NewService("", "Spa Access", 50)
	assert.NotNil(t, IsInputError(err))

	_, err = NewService("SV002", "Spa Access", 0)
	assert.NotNil(t, IsInputError(err))

	service, err := NewService("SV002", "Spa Access", 50)
	assert.NoError(t, err)
	assert.True(t, service.Available)
}

func TestServiceSetPrice(t *testing.T) {
	service, err := NewService("SV002", "Spa Access", 50)
	assert.NoError(t, err)

	assert.NotNil(t, IsInputError(service.SetPrice(-1)))
	assert.Equal(t, 50.0, service.Price)

	assert.NoError(t, service.SetPrice(60))
	assert.Equal(t, 60.0, service.Price)
}

func TestServiceString(t *testing.T) {
	service, err := NewService("SV002", "Spa Access", 50)
	assert.NoError(t, err)
	assert.Equal(t, "Service SV002: Spa Access ($50.00) - Available", service.String())

	service.SetAvailability(false)
	assert.Equal(t, "Service SV002: Spa Access ($50.00) - Unavailable", service.String())
}
