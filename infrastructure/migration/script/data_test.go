package main

import (
	"testing"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/internal/usecases/contacting"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderCampaigns(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	campaigns := placeholderCampaigns(now)

	require.Len(t, campaigns, len(campaignList))

	ids := make(map[string]struct{}, len(campaigns))
	for _, c := range campaigns {
		assert.Len(t, c.ID, idLength)
		assert.True(t, c.Status.IsValid(), c.Status)
		assert.True(t, c.Type.IsValid(), c.Type)
		ids[c.ID] = struct{}{}

		if c.StartDate != nil {
			require.NotNil(t, c.EndDate)
			assert.True(t, c.EndDate.After(*c.StartDate))
		}
	}
	assert.Len(t, ids, len(campaigns))

	scheduled := campaigns[3]
	assert.Equal(t, domain.CampaignStatusScheduled, scheduled.Status)
	assert.True(t, scheduled.StartDate.After(now))
	assert.Nil(t, scheduled.Performance.CTR)
}

func TestPlaceholderContacts_ContainDuplicates(t *testing.T) {
	contacts := placeholderContacts(time.Now())

	for _, c := range contacts {
		_, err := uuid.Parse(c.ID)
		assert.NoError(t, err)
	}

	groups := contacting.FindDuplicateGroups(contacts)

	reasons := make([]string, 0, len(groups))
	for _, g := range groups {
		reasons = append(reasons, g.Reason)
	}
	assert.ElementsMatch(t, []string{contacting.ReasonEmail, contacting.ReasonName, contacting.ReasonDomain}, reasons)
}
