package importer

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/network-os/adapters/event"
	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/internal/domain/profile"
	"github.com/khoahotran/network-os/pkg/apperror"
	"github.com/khoahotran/network-os/pkg/logger"
)

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []*contact.Contact
}

func (r *fakeContactRepo) Create(_ context.Context, c *contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.Email != nil {
		for _, existing := range r.contacts {
			if existing.Email != nil && strings.EqualFold(*existing.Email, *c.Email) {
				return apperror.NewConflict("contact", "email", *c.Email)
			}
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.contacts = append(r.contacts, c)
	return nil
}

func (r *fakeContactRepo) GetByID(_ context.Context, id uuid.UUID) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, contact.ErrContactNotFound
}

func (r *fakeContactRepo) GetByEmail(_ context.Context, email string) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.Email != nil && strings.EqualFold(*c.Email, email) {
			return c, nil
		}
	}
	return nil, contact.ErrContactNotFound
}

func (r *fakeContactRepo) List(_ context.Context, _ contact.ListFilter) ([]*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*contact.Contact(nil), r.contacts...), nil
}

func (r *fakeContactRepo) Update(_ context.Context, _ *contact.Contact) error { return nil }

func (r *fakeContactRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type fakeProfileRepo struct {
	mu      sync.Mutex
	profile *profile.UserProfile
	upserts int
}

func (r *fakeProfileRepo) Get(_ context.Context) (*profile.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profile == nil {
		return nil, profile.ErrProfileNotFound
	}
	copied := *r.profile
	return &copied, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *profile.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *p
	r.profile = &copied
	r.upserts++
	return nil
}

type fakeLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func (l *fakeLocker) Acquire(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held == nil {
		l.held = make(map[string]bool)
	}
	if l.held[key] {
		return false, nil
	}
	l.held[key] = true
	return true, nil
}

func (l *fakeLocker) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

type fakePublisher struct {
	mu               sync.Mutex
	contactEvents    []event.ContactEventPayload
	importCompletion []event.ImportEventPayload
}

func (p *fakePublisher) PublishContactCreated(_ context.Context, payload event.ContactEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contactEvents = append(p.contactEvents, payload)
	return nil
}

func (p *fakePublisher) PublishImportCompleted(_ context.Context, payload event.ImportEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.importCompletion = append(p.importCompletion, payload)
	return nil
}

func newTestUseCase() (*ImportUseCase, *fakeContactRepo, *fakeProfileRepo, *fakePublisher) {
	contactRepo := &fakeContactRepo{}
	profileRepo := &fakeProfileRepo{}
	publisher := &fakePublisher{}
	uc := NewImportUseCase(contactRepo, profileRepo, &fakeLocker{}, publisher, logger.NewNop())
	return uc, contactRepo, profileRepo, publisher
}

const connectionsCSV = "Notes:\n" +
	`"When exporting your connection data, you may notice that some emails are missing."` + "\n" +
	"First Name,Last Name,URL,Email Address,Company,Position,Connected On\n" +
	"Jane,Doe,https://linkedin.com/in/janedoe,jane@acme.com,Acme Corp,Software Engineer,01 Jan 2024\n" +
	"Bob,Jones,,bob@initech.com,Initech,Manager,02 Jan 2024\n" +
	"Mallory,Mal,,not-an-email,Evil Corp,Hacker,03 Jan 2024\n" +
	"Carol,Brown,,,,,04 Jan 2024\n"

func buildExportZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func Test_Execute_BareConnectionsCSV(t *testing.T) {
	uc, contactRepo, _, publisher := newTestUseCase()

	outcome, err := uc.Execute(context.Background(), ImportInput{Payload: []byte(connectionsCSV)})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.CreatedCount)
	assert.Equal(t, 0, outcome.SkippedCount)
	assert.Equal(t, 1, outcome.FailedCount)
	assert.Equal(t, 1, outcome.FilesProcessed)
	assert.False(t, outcome.ProfileCreated)

	require.Len(t, outcome.RowErrors, 1)
	assert.Equal(t, "Mallory Mal", outcome.RowErrors[0].Name)
	assert.Contains(t, outcome.RowErrors[0].Reason, "missing '@'")

	require.Len(t, contactRepo.contacts, 3)
	jane, err := contactRepo.GetByEmail(context.Background(), "jane@acme.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", jane.Name)
	assert.Equal(t, "Software Engineer", jane.Role)
	assert.Equal(t, "Unknown", jane.Location)
	assert.Equal(t, 50, jane.PriorityScore)
	assert.Equal(t, 50, jane.WarmthScore)
	assert.Contains(t, jane.Tags, "LinkedIn Import")
	assert.Contains(t, jane.Notes, "LinkedIn: https://linkedin.com/in/janedoe")

	assert.Len(t, publisher.contactEvents, 3)
	require.Len(t, publisher.importCompletion, 1)
	assert.Equal(t, 3, publisher.importCompletion[0].CreatedCount)
}

func Test_Execute_Idempotent(t *testing.T) {
	uc, contactRepo, _, _ := newTestUseCase()
	input := ImportInput{Payload: []byte(connectionsCSV)}

	first, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 3, first.CreatedCount)

	second, err := uc.Execute(context.Background(), input)
	require.NoError(t, err)

	// Emailed rows dedup by address. Carol has no email, so she is created
	// again; there is nothing to key her on.
	assert.Equal(t, 1, second.CreatedCount)
	assert.Equal(t, 2, second.SkippedCount)
	assert.ElementsMatch(t, []string{"jane@acme.com", "bob@initech.com"}, second.SkippedEmails)
	assert.Len(t, contactRepo.contacts, 4)
}

func Test_Execute_ZipBundleWithProfile(t *testing.T) {
	uc, contactRepo, profileRepo, _ := newTestUseCase()

	payload := buildExportZip(t, map[string]string{
		"Profile.csv": "Field,Value,Extra\n" +
			"First Name,John,\n" +
			"Last Name,Smith,\n" +
			"Headline,Software Engineer at Acme Corp,\n",
		"Positions.csv": "Company Name,Title,Location,Started On,Finished On\n" +
			"Acme Corp,Software Engineer,SF,Jan 2022,\n" +
			"Initech,QA Engineer,Austin,Mar 2019,Dec 2021\n",
		"Connections.csv": connectionsCSV,
	})

	outcome, err := uc.Execute(context.Background(), ImportInput{Payload: payload, Filename: "export.zip"})
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.FilesProcessed)
	assert.True(t, outcome.ProfileCreated)
	assert.Equal(t, 3, outcome.CreatedCount)
	assert.Equal(t, 1, outcome.FailedCount)

	require.NotNil(t, profileRepo.profile)
	assert.Equal(t, "John", profileRepo.profile.FirstName)
	assert.Equal(t, "Acme Corp", profileRepo.profile.CurrentCompany)
	assert.Equal(t, "Software Engineer", profileRepo.profile.CurrentRole)
	require.Len(t, profileRepo.profile.WorkHistory, 2)

	// Jane shares role and current company with the owner.
	jane, err := contactRepo.GetByEmail(context.Background(), "jane@acme.com")
	require.NoError(t, err)
	assert.Contains(t, jane.Tags, "Similar Role - Software Engineer")
	assert.Contains(t, jane.Tags, "Current Colleague - Acme Corp")
	assert.Contains(t, jane.Tags, "High-Value Connection")
	assert.Contains(t, jane.Tags, "LinkedIn Import")

	// Bob was only ever a colleague at Initech.
	bob, err := contactRepo.GetByEmail(context.Background(), "bob@initech.com")
	require.NoError(t, err)
	assert.Contains(t, bob.Tags, "Former Colleague - Initech")
	assert.NotContains(t, bob.Tags, "High-Value Connection")
}

func Test_Execute_ProfileMergePreservesExisting(t *testing.T) {
	uc, _, profileRepo, _ := newTestUseCase()
	profileRepo.profile = &profile.UserProfile{
		FirstName: "John",
		LastName:  "Smith",
		Summary:   "Existing summary",
	}

	payload := buildExportZip(t, map[string]string{
		"Profile.csv": "Field,Value,Extra\n" +
			"Headline,New headline,\n",
	})

	outcome, err := uc.Execute(context.Background(), ImportInput{Payload: payload})
	require.NoError(t, err)

	assert.False(t, outcome.ProfileCreated)
	assert.Equal(t, "John", profileRepo.profile.FirstName)
	assert.Equal(t, "Existing summary", profileRepo.profile.Summary)
	assert.Equal(t, "New headline", profileRepo.profile.Headline)
}

func Test_Execute_MatchesAgainstStoredProfile(t *testing.T) {
	// No profile data in the payload, but a stored profile still drives
	// relationship matching.
	uc, contactRepo, profileRepo, _ := newTestUseCase()
	profileRepo.profile = &profile.UserProfile{
		CurrentCompany: "Acme Corp",
		CurrentRole:    "Software Engineer",
	}

	_, err := uc.Execute(context.Background(), ImportInput{Payload: []byte(connectionsCSV)})
	require.NoError(t, err)

	jane, err := contactRepo.GetByEmail(context.Background(), "jane@acme.com")
	require.NoError(t, err)
	assert.Contains(t, jane.Tags, "Current Colleague - Acme Corp")
	assert.Equal(t, 0, profileRepo.upserts)
}

func Test_Execute_CorruptArchive(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), ImportInput{Payload: []byte("PK\x03\x04garbage")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func Test_Execute_ZipExtensionWithoutMagic(t *testing.T) {
	// A .zip filename forces archive decoding even if the magic is absent.
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), ImportInput{
		Payload:  []byte("First Name,Last Name\nAda,Lovelace\n"),
		Filename: "export.ZIP",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func Test_Execute_CreateConflictCountsAsSkip(t *testing.T) {
	uc, contactRepo, _, _ := newTestUseCase()

	email := "jane@acme.com"
	seeded := &contact.Contact{ID: uuid.New(), Name: "Jane Seeded", Email: &email}
	contactRepo.contacts = append(contactRepo.contacts, seeded)

	outcome, err := uc.Execute(context.Background(), ImportInput{Payload: []byte(connectionsCSV)})
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.CreatedCount)
	assert.Equal(t, 1, outcome.SkippedCount)
	assert.Equal(t, []string{"jane@acme.com"}, outcome.SkippedEmails)
}
