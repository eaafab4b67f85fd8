package contacting

import (
	"errors"
	"testing"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mergeNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func mergeFixture() []domain.Contact {
	return []domain.Contact{
		{
			ID:        "c1",
			FirstName: "Ana",
			LastName:  "Souza",
			Email:     "a@x.com",
			Company:   "",
			Tags:      []string{"vip"},
			Notes:     "Cliente desde 2021",
			Score:     40,
		},
		{
			ID:        "c2",
			FirstName: "Ana",
			LastName:  "S.",
			Email:     "a@x.com",
			Company:   "Acme",
			Phone:     "+55 11 99999-0000",
			Tags:      []string{"lead"},
			Notes:     "",
			Score:     75,
		},
		{
			ID:       "c3",
			Email:    "ana@acme.com",
			Company:  "Acme Corp",
			JobTitle: "CMO",
			Tags:     []string{"vip", "webinar"},
			Notes:    "Veio do webinar",
			Score:    10,
		},
		{
			ID:        "c4",
			FirstName: "Bruno",
			Email:     "bruno@y.com",
		},
	}
}

func TestPreviewMerge(t *testing.T) {
	contacts := mergeFixture()

	result, err := PreviewMerge(contacts, []string{"c1", "c2"}, "c1", mergeNow)
	require.NoError(t, err)

	merged := result.Merged
	assert.Equal(t, "c1", merged.ID)
	assert.Equal(t, "a@x.com", merged.Email)
	assert.Equal(t, "Acme", merged.Company)
	assert.Equal(t, "Souza", merged.LastName)
	assert.Equal(t, "+55 11 99999-0000", merged.Phone)
	assert.Equal(t, []string{"vip", "lead"}, merged.Tags)
	assert.Equal(t, "Cliente desde 2021", merged.Notes)
	assert.Equal(t, 75, merged.Score)
	assert.Equal(t, mergeNow, merged.UpdatedAt)
	assert.Equal(t, []string{"c2"}, result.RemovedIDs)

	assert.Equal(t, mergeFixture(), contacts, "a prévia não deve alterar a lista")
}

func TestPreviewMerge_FallbackFollowsSelectionOrder(t *testing.T) {
	contacts := mergeFixture()

	result, err := PreviewMerge(contacts, []string{"c3", "c1", "c2"}, "c1", mergeNow)
	require.NoError(t, err)

	merged := result.Merged
	assert.Equal(t, "Acme Corp", merged.Company, "c3 vem antes de c2 na seleção")
	assert.Equal(t, "CMO", merged.JobTitle)
	assert.Equal(t, []string{"vip", "webinar", "lead"}, merged.Tags)
	assert.Equal(t, "Cliente desde 2021\n\nVeio do webinar", merged.Notes)
	assert.Equal(t, 75, merged.Score)
	assert.Equal(t, []string{"c3", "c2"}, result.RemovedIDs)
}

func TestPreviewMerge_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		master   string
		wantErr  error
		wantCode string
	}{
		{name: "apenas um selecionado", selected: []string{"c1"}, master: "c1", wantErr: ErrInvalidMergeSelection, wantCode: apiErrors.ErrInvalidMergeSelection},
		{name: "ids repetidos contam uma vez", selected: []string{"c1", "c1"}, master: "c1", wantErr: ErrInvalidMergeSelection, wantCode: apiErrors.ErrInvalidMergeSelection},
		{name: "master fora da seleção", selected: []string{"c1", "c2"}, master: "c3", wantErr: ErrInvalidMergeSelection, wantCode: apiErrors.ErrInvalidMergeSelection},
		{name: "master vazio", selected: []string{"c1", "c2"}, master: "", wantErr: ErrInvalidMergeSelection, wantCode: apiErrors.ErrInvalidMergeSelection},
		{name: "id inexistente", selected: []string{"c1", "c9"}, master: "c1", wantErr: ErrContactNotFound, wantCode: apiErrors.ErrContactNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contacts := mergeFixture()

			result, err := PreviewMerge(contacts, tt.selected, tt.master, mergeNow)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)

			var contactErr *ContactError
			require.True(t, errors.As(err, &contactErr))
			assert.Equal(t, tt.wantCode, contactErr.Code)

			assert.Equal(t, mergeFixture(), contacts)
		})
	}
}

func TestConfirmMerge(t *testing.T) {
	contacts := mergeFixture()

	result, err := PreviewMerge(contacts, []string{"c1", "c2", "c3"}, "c2", mergeNow)
	require.NoError(t, err)

	next := ConfirmMerge(contacts, *result)

	require.Len(t, next, 2)
	assert.Equal(t, result.Merged, next[0])
	assert.Equal(t, "c4", next[1].ID)
	assert.Equal(t, "Acme", next[0].Company, "master vence quando preenchido")
	assert.Equal(t, "S.", next[0].LastName)

	assert.Equal(t, mergeFixture(), contacts, "a confirmação devolve uma nova lista")
}
