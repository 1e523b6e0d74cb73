package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewNewsletterCampaign_StartsAsDraft(t *testing.T) {
	c, err := NewNewsletterCampaign("Lancement 2026", "Nos voeux", "<p>Bonne année</p>")

	assert.NoError(t, err)
	assert.Equal(t, CampaignStatusDraft, c.Status)
	assert.Nil(t, c.ScheduledAt)
	assert.Nil(t, c.SentAt)
}

func TestNewNewsletterCampaign_RequiresBody(t *testing.T) {
	c, err := NewNewsletterCampaign("Titre", "Sujet", "")

	assert.Nil(t, c)
	assert.EqualError(t, err, "body_html is required")
}

func TestCampaignIsDue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	due := &NewsletterCampaign{Status: CampaignStatusScheduled, ScheduledAt: &past}
	assert.True(t, due.IsDue(now))

	notYet := &NewsletterCampaign{Status: CampaignStatusScheduled, ScheduledAt: &future}
	assert.False(t, notYet.IsDue(now))

	draft := &NewsletterCampaign{Status: CampaignStatusDraft, ScheduledAt: &past}
	assert.False(t, draft.IsDue(now))

	noDate := &NewsletterCampaign{Status: CampaignStatusScheduled}
	assert.False(t, noDate.IsDue(now))

	exactly := &NewsletterCampaign{Status: CampaignStatusScheduled, ScheduledAt: &now}
	assert.True(t, exactly.IsDue(now))
}
