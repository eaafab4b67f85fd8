package contacting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/repository/mocks"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockContactRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactRepository(ctrl)

	return &Service{
		contactRepository: repo,
		now:               func() time.Time { return mergeNow },
	}, repo
}

func TestService_ConfirmMerge(t *testing.T) {
	svc, repo := newTestService(t)
	fixture := mergeFixture()

	repo.EXPECT().GetContactsByIDs(gomock.Any(), []string{"c1", "c2"}).Return(fixture[:2], nil)
	repo.EXPECT().CommitMerge(gomock.Any(), gomock.Any(), []string{"c2"}).
		DoAndReturn(func(_ context.Context, merged *domain.Contact, _ []string) error {
			assert.Equal(t, "c1", merged.ID)
			assert.Equal(t, "Acme", merged.Company)
			return nil
		})

	result, err := svc.ConfirmMerge(context.Background(), domain.MergeRequest{ContactIDs: []string{"c1", "c2"}, MasterID: "c1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"vip", "lead"}, result.Merged.Tags)
}

func TestService_ConfirmMerge_CommitFailure(t *testing.T) {
	svc, repo := newTestService(t)
	fixture := mergeFixture()

	repo.EXPECT().GetContactsByIDs(gomock.Any(), gomock.Any()).Return(fixture[:2], nil)
	repo.EXPECT().CommitMerge(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))

	_, err := svc.ConfirmMerge(context.Background(), domain.MergeRequest{ContactIDs: []string{"c1", "c2"}, MasterID: "c1"})
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}

func TestService_PreviewMerge_InvalidSelectionSkipsRepository(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.PreviewMerge(context.Background(), domain.MergeRequest{ContactIDs: []string{"c1"}, MasterID: "c1"})
	assert.ErrorIs(t, err, ErrInvalidMergeSelection)

	_, err = svc.ConfirmMerge(context.Background(), domain.MergeRequest{ContactIDs: []string{"c1", "c2"}, MasterID: "c9"})
	assert.ErrorIs(t, err, ErrInvalidMergeSelection)
}

func TestService_FindDuplicates(t *testing.T) {
	svc, repo := newTestService(t)

	repo.EXPECT().ListContacts(gomock.Any()).Return(mergeFixture(), nil)

	groups, err := svc.FindDuplicates(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, groups)
	assert.Equal(t, ReasonEmail, groups[0].Reason)
	assert.Equal(t, []string{"c1", "c2"}, groupIDs(groups[0]))
}
