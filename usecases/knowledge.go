package usecases

import (
	"errors"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
	"strings"
)

type KnowledgeUseCase struct {
	KnowledgeRepo repositories.KnowledgeRepository
}

func NewKnowledgeUseCase(knowledgeRepo repositories.KnowledgeRepository) *KnowledgeUseCase {
	return &KnowledgeUseCase{KnowledgeRepo: knowledgeRepo}
}

// CreateEntry adds a knowledge-base entry stamped with the editing user.
func (uc *KnowledgeUseCase) CreateEntry(entry *entities.KnowledgeEntry, updatedBy string) error {
	if entry.Content == "" {
		return errors.New("content is required")
	}
	entry.UpdatedBy = updatedBy
	return uc.KnowledgeRepo.Create(entry)
}

// GetEntry retrieves an entry by id.
func (uc *KnowledgeUseCase) GetEntry(id string) (*entities.KnowledgeEntry, error) {
	if id == "" {
		return nil, errors.New("entry id is required")
	}
	return uc.KnowledgeRepo.GetByID(id)
}

// ListEntries returns the whole knowledge base, paginated.
func (uc *KnowledgeUseCase) ListEntries(page, limit int) ([]entities.KnowledgeEntry, int, error) {
	entries, err := uc.KnowledgeRepo.GetAll()
	if err != nil {
		return nil, 0, err
	}
	return Paginate(entries, page, limit), len(entries), nil
}

// UpdateEntry merges the provided fields into an existing entry.
func (uc *KnowledgeUseCase) UpdateEntry(id string, updates *entities.KnowledgeEntry, updatedBy string) (*entities.KnowledgeEntry, error) {
	if id == "" {
		return nil, errors.New("entry id is required")
	}
	existing, err := uc.KnowledgeRepo.GetByID(id)
	if err != nil {
		return nil, errors.New("knowledge entry not found")
	}
	if updates.Tag != "" {
		existing.Tag = updates.Tag
	}
	if updates.Content != "" {
		existing.Content = updates.Content
	}
	existing.UpdatedBy = updatedBy
	if err := uc.KnowledgeRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteEntry removes exactly the addressed entry.
func (uc *KnowledgeUseCase) DeleteEntry(id string) error {
	if id == "" {
		return errors.New("entry id is required")
	}
	if _, err := uc.KnowledgeRepo.GetByID(id); err != nil {
		return errors.New("knowledge entry not found")
	}
	return uc.KnowledgeRepo.Delete(id)
}

// AssembleText concatenates the entire knowledge base into the text block
// sent with every chat prompt. No ranking, chunking or truncation is done;
// the full knowledge base always goes out verbatim.
func (uc *KnowledgeUseCase) AssembleText() (string, error) {
	entries, err := uc.KnowledgeRepo.GetAll()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, e := range entries {
		if e.Tag != "" {
			b.WriteString("[" + e.Tag + "]\n")
		}
		b.WriteString(e.Content)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
