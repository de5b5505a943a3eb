package contact

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/khoahotran/network-os/internal/domain/contact"
)

type ListContactsUseCase struct {
	contactRepo contact.Repository
}

func NewListContactsUseCase(repo contact.Repository) *ListContactsUseCase {
	return &ListContactsUseCase{contactRepo: repo}
}

type ListContactsInput struct {
	Query     string
	Category  string
	Industry  string
	Tag       string
	MinWarmth *int
	Limit     int
	Offset    int
}

type ContactWithStatus struct {
	Contact      *contact.Contact
	WarmthStatus string
}

type ListContactsOutput struct {
	Contacts []ContactWithStatus
}

// Execute lists contacts with warmth recomputed per contact and the result
// re-sorted on the fresh scores (the stored ordering may be stale).
func (uc *ListContactsUseCase) Execute(ctx context.Context, input ListContactsInput) (*ListContactsOutput, error) {
	filter := contact.ListFilter{
		Query:     input.Query,
		Category:  input.Category,
		Industry:  input.Industry,
		Tag:       input.Tag,
		MinWarmth: input.MinWarmth,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}

	contacts, err := uc.contactRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list contacts failed: %w", err)
	}

	now := time.Now().UTC()
	results := make([]ContactWithStatus, len(contacts))
	for i, c := range contacts {
		c.WarmthScore = c.CurrentWarmth(now)
		results[i] = ContactWithStatus{
			Contact:      c,
			WarmthStatus: contact.WarmthStatus(c.WarmthScore),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Contact.WarmthScore > results[j].Contact.WarmthScore
	})

	return &ListContactsOutput{Contacts: results}, nil
}
