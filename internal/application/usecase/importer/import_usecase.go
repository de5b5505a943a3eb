package importer

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/network-os/adapters/event"
	"github.com/khoahotran/network-os/adapters/linkedin"
	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/internal/domain/matching"
	"github.com/khoahotran/network-os/internal/domain/profile"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

const profileLockKey = "user-profile"

// Locker is an advisory lock shared by concurrent imports. Acquire returns
// false when the key is already held.
type Locker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// EventPublisher notifies downstream consumers about import results.
type EventPublisher interface {
	PublishContactCreated(ctx context.Context, payload event.ContactEventPayload) error
	PublishImportCompleted(ctx context.Context, payload event.ImportEventPayload) error
}

type ImportUseCase struct {
	contactRepo contact.Repository
	profileRepo profile.Repository
	locker      Locker
	events      EventPublisher
	logger      logger.Logger
}

func NewImportUseCase(
	contactRepo contact.Repository,
	profileRepo profile.Repository,
	locker Locker,
	events EventPublisher,
	log logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		contactRepo: contactRepo,
		profileRepo: profileRepo,
		locker:      locker,
		events:      events,
		logger:      log,
	}
}

type ImportInput struct {
	Payload  []byte
	Filename string
}

// RowError describes a single connection row that was flagged or failed. Rows
// are surfaced here instead of being silently dropped.
type RowError struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Reason string `json:"reason"`
}

type ImportOutcome struct {
	CreatedCount   int        `json:"created_count"`
	SkippedCount   int        `json:"skipped_count"`
	FailedCount    int        `json:"failed_count"`
	SkippedEmails  []string   `json:"skipped_emails"`
	RowErrors      []RowError `json:"row_errors,omitempty"`
	ProfileCreated bool       `json:"profile_created"`
	FilesProcessed int        `json:"files_processed"`
}

// Execute runs the whole import batch synchronously: decode the payload,
// create or merge the owner profile, tag every candidate against it, and
// persist candidates with per-email dedup. One row's failure never aborts the
// batch; only an unreadable archive is a hard error.
func (uc *ImportUseCase) Execute(ctx context.Context, input ImportInput) (*ImportOutcome, error) {
	ctx, span := otel.Tracer("importer").Start(ctx, "import.execute")
	defer span.End()

	bundle, err := uc.decode(input)
	if err != nil {
		return nil, err
	}

	outcome := &ImportOutcome{
		SkippedEmails: make([]string, 0),
	}
	if bundle.Profile != "" {
		outcome.FilesProcessed++
	}
	if bundle.Positions != "" {
		outcome.FilesProcessed++
	}
	if bundle.Connections != "" {
		outcome.FilesProcessed++
	}

	userProfile, err := uc.syncProfile(ctx, bundle, outcome)
	if err != nil {
		return nil, err
	}

	if bundle.Connections != "" {
		uc.importConnections(ctx, bundle.Connections, userProfile, outcome)
	}

	span.SetAttributes(
		attribute.Int("import.created", outcome.CreatedCount),
		attribute.Int("import.skipped", outcome.SkippedCount),
		attribute.Int("import.failed", outcome.FailedCount),
	)

	if uc.events != nil {
		payload := event.ImportEventPayload{
			CreatedCount: outcome.CreatedCount,
			SkippedCount: outcome.SkippedCount,
			FailedCount:  outcome.FailedCount,
		}
		if err := uc.events.PublishImportCompleted(ctx, payload); err != nil {
			uc.logger.Warn("Failed to publish import completed event", zap.Error(err))
		}
	}

	return outcome, nil
}

// decode turns the raw payload into a bundle: either a ZIP export or a bare
// Connections CSV. The bytes pass through unchanged from the transport layer.
func (uc *ImportUseCase) decode(input ImportInput) (linkedin.Bundle, error) {
	if linkedin.IsArchive(input.Payload) || strings.HasSuffix(strings.ToLower(input.Filename), ".zip") {
		bundle, err := linkedin.ExtractBundle(input.Payload)
		if err != nil {
			return linkedin.Bundle{}, apperror.NewInvalidInput("unreadable export archive", err)
		}
		return bundle, nil
	}
	return linkedin.Bundle{Connections: string(input.Payload)}, nil
}

// syncProfile creates or merges the owner profile from the profile/positions
// payloads and returns the profile to match contacts against (which may
// pre-exist even when the bundle carries no profile data).
func (uc *ImportUseCase) syncProfile(ctx context.Context, bundle linkedin.Bundle, outcome *ImportOutcome) (*profile.UserProfile, error) {
	var incoming *profile.UserProfile
	if bundle.Profile != "" {
		incoming = linkedin.ParseProfile(bundle.Profile)
	}
	if bundle.Positions != "" {
		positions := linkedin.ParsePositions(bundle.Positions)
		if len(positions) > 0 {
			if incoming == nil {
				incoming = &profile.UserProfile{}
			}
			incoming.WorkHistory = positions
			if current, ok := profile.CurrentPosition(positions); ok {
				incoming.CurrentCompany = current.Company
				incoming.CurrentRole = current.Title
			}
		}
	}

	if incoming == nil {
		return uc.loadProfile(ctx)
	}

	uc.lock(ctx, profileLockKey)
	defer uc.unlock(ctx, profileLockKey)

	existing, err := uc.loadProfile(ctx)
	if err != nil {
		return nil, err
	}

	merged := profile.Merge(existing, incoming)
	if err := uc.profileRepo.Upsert(ctx, merged); err != nil {
		return nil, err
	}
	outcome.ProfileCreated = existing == nil

	return merged, nil
}

func (uc *ImportUseCase) loadProfile(ctx context.Context) (*profile.UserProfile, error) {
	existing, err := uc.profileRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (uc *ImportUseCase) importConnections(ctx context.Context, text string, userProfile *profile.UserProfile, outcome *ImportOutcome) {
	candidates := linkedin.ParseConnections(text)
	now := time.Now().UTC()

	for _, candidate := range candidates {
		if !candidate.Valid() {
			outcome.FailedCount++
			outcome.RowErrors = append(outcome.RowErrors, RowError{
				Name:   candidate.Name,
				Email:  candidate.Email,
				Reason: candidate.InvalidReason,
			})
			continue
		}

		tags := candidate.Tags
		if userProfile != nil {
			result := matching.Match(userProfile, &candidate)
			tags = contact.MergeTags(tags, result.Tags)
		}

		uc.persistCandidate(ctx, candidate, tags, now, outcome)
	}
}

func (uc *ImportUseCase) persistCandidate(ctx context.Context, candidate contact.ParsedContact, tags []string, now time.Time, outcome *ImportOutcome) {
	email := strings.TrimSpace(candidate.Email)

	if email != "" {
		uc.lock(ctx, email)
		defer uc.unlock(ctx, email)

		_, err := uc.contactRepo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			outcome.SkippedCount++
			outcome.SkippedEmails = append(outcome.SkippedEmails, email)
			return
		case !errors.Is(err, contact.ErrContactNotFound):
			outcome.FailedCount++
			outcome.RowErrors = append(outcome.RowErrors, RowError{Name: candidate.Name, Email: email, Reason: err.Error()})
			return
		}
	}

	c := &contact.Contact{
		Name:          candidate.Name,
		Role:          candidate.Role,
		Company:       candidate.Company,
		Location:      "Unknown",
		PriorityScore: 50,
		Tags:          tags,
		Notes:         candidate.Notes,
		Interests:     []string{},
		Expertise:     []string{},
	}
	if email != "" {
		c.Email = &email
	}
	c.WarmthScore = c.CurrentWarmth(now)

	if err := uc.contactRepo.Create(ctx, c); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			// Lost the compare-and-insert race to a concurrent import.
			outcome.SkippedCount++
			outcome.SkippedEmails = append(outcome.SkippedEmails, email)
			return
		}
		uc.logger.Error("Failed to create imported contact", err, zap.String("name", candidate.Name))
		outcome.FailedCount++
		outcome.RowErrors = append(outcome.RowErrors, RowError{Name: candidate.Name, Email: email, Reason: err.Error()})
		return
	}

	outcome.CreatedCount++
	if uc.events != nil {
		payload := event.ContactEventPayload{ContactID: c.ID.String(), Name: c.Name}
		if err := uc.events.PublishContactCreated(ctx, payload); err != nil {
			uc.logger.Warn("Failed to publish contact created event", zap.Error(err))
		}
	}
}

// lock best-effort acquires an advisory lock, polling while another import
// holds it. Import correctness degrades gracefully when Redis is down, so
// lock errors only log.
func (uc *ImportUseCase) lock(ctx context.Context, key string) {
	if uc.locker == nil {
		return
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		ok, err := uc.locker.Acquire(ctx, key)
		if err != nil {
			uc.logger.Warn("Failed to acquire import lock", zap.String("key", key), zap.Error(err))
			return
		}
		if ok {
			return
		}
		if time.Now().After(deadline) {
			uc.logger.Warn("Timed out waiting for import lock", zap.String("key", key))
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (uc *ImportUseCase) unlock(ctx context.Context, key string) {
	if uc.locker == nil {
		return
	}
	if err := uc.locker.Release(ctx, key); err != nil {
		uc.logger.Warn("Failed to release import lock", zap.String("key", key), zap.Error(err))
	}
}
