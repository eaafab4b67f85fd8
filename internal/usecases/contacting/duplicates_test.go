package contacting

import (
	"testing"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupIDs(group domain.DuplicateGroup) []string {
	result := make([]string, 0, len(group.Contacts))
	for _, c := range group.Contacts {
		result = append(result, c.ID)
	}
	return result
}

func TestFindDuplicateGroups(t *testing.T) {
	contacts := []domain.Contact{
		{ID: "1", FirstName: "Maria", LastName: "Lima", Email: "Maria@Acme.com "},
		{ID: "2", FirstName: "maria", LastName: " lima", Email: "maria@acme.com"},
		{ID: "3", FirstName: "João", LastName: "Reis", Email: "joao@acme.com"},
		{ID: "4", FirstName: "Pedro", Email: "pedro@gmail.com"},
		{ID: "5", FirstName: "Paula", Email: "paula@gmail.com"},
		{ID: "6", FirstName: "Carla", Email: ""},
		{ID: "7", FirstName: "carla"},
	}

	groups := FindDuplicateGroups(contacts)

	require.Len(t, groups, 3)

	assert.Equal(t, ReasonEmail, groups[0].Reason)
	assert.Equal(t, "maria@acme.com", groups[0].MatchValue)
	assert.Equal(t, 95, groups[0].Similarity)
	assert.Equal(t, []string{"1", "2"}, groupIDs(groups[0]))

	// o grupo por nome de Maria tem os mesmos membros do grupo por email e não se repete
	assert.Equal(t, ReasonName, groups[1].Reason)
	assert.Equal(t, "carla", groups[1].MatchValue)
	assert.Equal(t, 85, groups[1].Similarity)
	assert.Equal(t, []string{"6", "7"}, groupIDs(groups[1]))

	assert.Equal(t, ReasonDomain, groups[2].Reason)
	assert.Equal(t, "acme.com", groups[2].MatchValue)
	assert.Equal(t, 70, groups[2].Similarity)
	assert.Equal(t, []string{"1", "2", "3"}, groupIDs(groups[2]))
}

func TestFindDuplicateGroups_FreeMailIsNotABusinessDomain(t *testing.T) {
	contacts := []domain.Contact{
		{ID: "1", FirstName: "A", Email: "a@hotmail.com"},
		{ID: "2", FirstName: "B", Email: "b@hotmail.com"},
	}

	assert.Empty(t, FindDuplicateGroups(contacts))
}

func TestFindDuplicateGroups_NoContacts(t *testing.T) {
	assert.Empty(t, FindDuplicateGroups(nil))
}
