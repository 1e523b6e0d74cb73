package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestimonial_RatingBounds(t *testing.T) {
	_, err := NewTestimonial("Awa Koné", "AK", "DRH", "Ivoire Telecom", "Excellent accompagnement.", 5, 0)
	assert.NoError(t, err)

	_, err = NewTestimonial("Awa Koné", "AK", "DRH", "", "Excellent.", 0, 0)
	assert.EqualError(t, err, "rating must be between 1 and 5")

	_, err = NewTestimonial("Awa Koné", "AK", "DRH", "", "Excellent.", 6, 0)
	assert.EqualError(t, err, "rating must be between 1 and 5")
}

func TestNewTestimonial_RequiresQuote(t *testing.T) {
	_, err := NewTestimonial("Awa Koné", "AK", "DRH", "", "   ", 4, 0)
	assert.EqualError(t, err, "quote is required")
}
