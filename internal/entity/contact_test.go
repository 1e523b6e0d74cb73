package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContactRequest_DefaultsService(t *testing.T) {
	c, err := NewContactRequest("Awa Koné", "", "awa@example.com", "", "", "Bonjour", false)

	assert.NoError(t, err)
	assert.Equal(t, DefaultContactService, c.Service)
	// Le consentement soumis est conservé tel quel, même à false.
	assert.False(t, c.Consent)
}

func TestNewContactRequest_RejectsUnknownService(t *testing.T) {
	c, err := NewContactRequest("Awa Koné", "", "awa@example.com", "", "comptabilite", "Bonjour", true)

	assert.Nil(t, c)
	assert.Error(t, err)
}

func TestContactServiceLabel(t *testing.T) {
	assert.Equal(t, "Paie externalisée", ContactServiceLabel(ServicePaie))
	assert.Equal(t, "inconnu", ContactServiceLabel("inconnu"))
}

func TestIsValidContactService(t *testing.T) {
	assert.True(t, IsValidContactService(ServiceMulti))
	assert.False(t, IsValidContactService(""))
	assert.False(t, IsValidContactService("rh"))
}
