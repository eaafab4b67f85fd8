package contacting

import (
	"fmt"
	"strings"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/domain"
	"github.com/digisolai/digisol.ai-sub002/pkg/apiErrors"
)

const notesSeparator = "\n\n"

// PreviewMerge calcula o registro resultante da mesclagem sem alterar a lista de entrada.
// O master fornece os campos de identidade; campos vazios no master são preenchidos com o
// primeiro valor não vazio entre os demais selecionados, na ordem da seleção.
func PreviewMerge(contacts []domain.Contact, selectedIDs []string, masterID string, now time.Time) (*domain.MergeResult, error) {
	selection, masterID, err := validateSelection(selectedIDs, masterID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Contact, len(contacts))
	for i := range contacts {
		byID[contacts[i].ID] = &contacts[i]
	}

	var missing []string
	for _, id := range selection {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, NewContactError(ErrContactNotFound, apiErrors.ErrContactNotFound, missing,
			fmt.Sprintf("unknown ids: %s", strings.Join(missing, ", ")))
	}

	master := *byID[masterID]
	others := make([]domain.Contact, 0, len(selection)-1)
	removed := make([]string, 0, len(selection)-1)
	for _, id := range selection {
		if id == masterID {
			continue
		}
		others = append(others, *byID[id])
		removed = append(removed, id)
	}

	merged := master
	merged.Tags = append([]string{}, master.Tags...)

	for _, field := range fallbackFields {
		if *field(&merged) != "" {
			continue
		}
		for i := range others {
			if value := *field(&others[i]); value != "" {
				*field(&merged) = value
				break
			}
		}
	}

	notes := make([]string, 0, len(selection))
	if strings.TrimSpace(master.Notes) != "" {
		notes = append(notes, master.Notes)
	}

	for _, other := range others {
		merged.Tags = unionTags(merged.Tags, other.Tags)
		if strings.TrimSpace(other.Notes) != "" {
			notes = append(notes, other.Notes)
		}
		if other.Score > merged.Score {
			merged.Score = other.Score
		}
	}

	merged.Notes = strings.Join(notes, notesSeparator)
	merged.UpdatedAt = now

	return &domain.MergeResult{
		Merged:     merged,
		RemovedIDs: removed,
	}, nil
}

// ConfirmMerge devolve uma nova lista com o master substituído pelo registro mesclado
// e os demais selecionados removidos. A lista de entrada nunca é alterada.
func ConfirmMerge(contacts []domain.Contact, result domain.MergeResult) []domain.Contact {
	removed := make(map[string]struct{}, len(result.RemovedIDs))
	for _, id := range result.RemovedIDs {
		removed[id] = struct{}{}
	}

	next := make([]domain.Contact, 0, len(contacts))
	for _, contact := range contacts {
		if _, ok := removed[contact.ID]; ok {
			continue
		}
		if contact.ID == result.Merged.ID {
			contact = result.Merged
		}
		next = append(next, contact)
	}

	return next
}

// validateSelection exige ao menos dois ids distintos e o master entre eles
func validateSelection(selectedIDs []string, masterID string) ([]string, string, error) {
	selection := uniqueIDs(selectedIDs)
	masterID = strings.TrimSpace(masterID)

	if len(selection) < 2 || !contains(selection, masterID) {
		return nil, "", NewContactError(ErrInvalidMergeSelection, apiErrors.ErrInvalidMergeSelection, selection, "")
	}

	return selection, masterID, nil
}

var fallbackFields = []func(c *domain.Contact) *string{
	func(c *domain.Contact) *string { return &c.FirstName },
	func(c *domain.Contact) *string { return &c.LastName },
	func(c *domain.Contact) *string { return &c.Email },
	func(c *domain.Contact) *string { return &c.Phone },
	func(c *domain.Contact) *string { return &c.Company },
	func(c *domain.Contact) *string { return &c.JobTitle },
	func(c *domain.Contact) *string { return &c.Source },
	func(c *domain.Contact) *string { return &c.Status },
	func(c *domain.Contact) *string { return &c.Priority },
	func(c *domain.Contact) *string { return &c.AIPersona },
	func(c *domain.Contact) *string { return &c.AIActivitySummary },
	func(c *domain.Contact) *string { return &c.AINextAction },
}

func unionTags(current, extra []string) []string {
	seen := make(map[string]struct{}, len(current)+len(extra))
	for _, tag := range current {
		seen[tag] = struct{}{}
	}

	for _, tag := range extra {
		if _, ok := seen[tag]; ok || tag == "" {
			continue
		}
		seen[tag] = struct{}{}
		current = append(current, tag)
	}

	return current
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func contains(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
