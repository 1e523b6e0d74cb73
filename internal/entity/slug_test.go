package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "gestion-rh-externalisee", Slugify("Gestion RH externalisée"))
	assert.Equal(t, "creation-d-entreprise", Slugify("Création d'entreprise"))
	assert.Equal(t, "paie-et-declarations", Slugify("  Paie et déclarations  "))
	assert.Equal(t, "offre-2026", Slugify("Offre 2026 !"))
	assert.Equal(t, "a-b", Slugify("a --- b"))
	assert.Equal(t, "", Slugify("***"))
}
