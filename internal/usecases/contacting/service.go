package contacting

import (
	"context"
	"time"

	"github.com/digisolai/digisol.ai-sub002/infrastructure/repository"
	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type ContactService interface {
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	FindDuplicates(ctx context.Context) ([]domain.DuplicateGroup, error)
	PreviewMerge(ctx context.Context, request domain.MergeRequest) (*domain.MergeResult, error)
	ConfirmMerge(ctx context.Context, request domain.MergeRequest) (*domain.MergeResult, error)
}

type Service struct {
	contactRepository repository.ContactRepository
	now               func() time.Time
}

func NewService(contactRepository repository.ContactRepository) ContactService {
	return &Service{
		contactRepository: contactRepository,
		now:               time.Now,
	}
}

func (s *Service) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contactRepository.ListContacts(ctx)
	if err != nil {
		logrus.WithError(err).Error("contacts: failed to list contacts")
		return nil, NewContactError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, nil, "Falha ao listar contatos")
	}

	return contacts, nil
}

func (s *Service) FindDuplicates(ctx context.Context) ([]domain.DuplicateGroup, error) {
	contacts, err := s.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	return FindDuplicateGroups(contacts), nil
}

func (s *Service) PreviewMerge(ctx context.Context, request domain.MergeRequest) (*domain.MergeResult, error) {
	selection, masterID, err := validateSelection(request.ContactIDs, request.MasterID)
	if err != nil {
		return nil, err
	}

	contacts, err := s.contactRepository.GetContactsByIDs(ctx, selection)
	if err != nil {
		logrus.WithError(err).WithField("contact_ids", selection).Error("contacts: failed to load merge selection")
		return nil, NewContactError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, selection, "Falha ao consultar contatos")
	}

	return PreviewMerge(contacts, selection, masterID, s.now())
}

// ConfirmMerge recalcula a prévia a partir do estado atual e grava o resultado em uma transação
func (s *Service) ConfirmMerge(ctx context.Context, request domain.MergeRequest) (*domain.MergeResult, error) {
	result, err := s.PreviewMerge(ctx, request)
	if err != nil {
		return nil, err
	}

	if err := s.contactRepository.CommitMerge(ctx, &result.Merged, result.RemovedIDs); err != nil {
		logrus.WithError(err).WithField("master_id", result.Merged.ID).Error("contacts: failed to commit merge")
		return nil, NewContactError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ContactIDs, "Falha ao mesclar contatos")
	}

	logrus.WithFields(logrus.Fields{
		"master_id": result.Merged.ID,
		"removed":   result.RemovedIDs,
	}).Info("contacts: merge confirmed")

	return result, nil
}
