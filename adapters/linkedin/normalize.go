package linkedin

import (
	"fmt"
	"strings"

	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/internal/domain/profile"
)

// TagImported marks every contact created from a LinkedIn export.
const TagImported = "LinkedIn Import"

// Header-label synonyms vary per export vintage, so every lookup goes through
// a small synonym table instead of a fixed column name.
var (
	firstNameKeys = []string{"First Name", "First"}
	lastNameKeys  = []string{"Last Name", "Last"}
	emailKeys     = []string{"Email Address", "E-mail Address", "Email"}
	companyKeys   = []string{"Company", "Organization"}
	roleKeys      = []string{"Position", "Role", "Job Title", "Title"}
	urlKeys       = []string{"URL", "LinkedIn", "Profile URL"}

	positionCompanyKeys = []string{"Company Name", "Company"}
	positionTitleKeys   = []string{"Title", "Position"}
	startDateKeys       = []string{"Started On", "Start Date"}
	endDateKeys         = []string{"Finished On", "End Date"}
)

// ParseProfile reads Profile.csv. The export is a key/value table: column 0
// holds the field label, column 1 the value.
func ParseProfile(text string) *profile.UserProfile {
	return MapProfileRows(parseTable(text, genericHeader))
}

// MapProfileRows folds key/value rows into a profile fragment. Unrecognized
// keys are ignored.
func MapProfileRows(rows []RawRow) *profile.UserProfile {
	p := &profile.UserProfile{}
	for _, row := range rows {
		key := normalizeKey(row.ValueAt(0))
		value := strings.TrimSpace(row.ValueAt(1))
		if key == "" || value == "" {
			continue
		}

		switch key {
		case "firstname", "first":
			p.FirstName = value
		case "lastname", "last":
			p.LastName = value
		case "headline":
			p.Headline = value
		case "summary":
			p.Summary = value
		case "industry", "industries":
			p.Industries = append(p.Industries, value)
		case "skills":
			p.Skills = append(p.Skills, value)
		}
	}
	return p
}

// ParsePositions reads Positions.csv into the owner's work history. Rows
// where both company and title are blank are dropped.
func ParsePositions(text string) []profile.Position {
	var positions []profile.Position
	for _, row := range parseTable(text, genericHeader) {
		pos := profile.Position{
			Company:   row.Get(positionCompanyKeys...),
			Title:     row.Get(positionTitleKeys...),
			StartDate: row.Get(startDateKeys...),
			EndDate:   row.Get(endDateKeys...),
		}
		if pos.Company == "" && pos.Title == "" {
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

// ParseConnections reads Connections.csv into contact candidates. Rows with
// an empty full name are rejected outright; rows with a malformed email are
// kept but flagged with InvalidReason so the caller can surface them instead
// of silently dropping data.
func ParseConnections(text string) []contact.ParsedContact {
	rows := parseTable(text, connectionsHeader)

	var candidates []contact.ParsedContact
	for _, row := range rows {
		firstName := row.Get(firstNameKeys...)
		lastName := row.Get(lastNameKeys...)
		name := strings.TrimSpace(firstName + " " + lastName)
		if name == "" {
			continue
		}

		email := row.Get(emailKeys...)
		company := strings.TrimSpace(row.Get(companyKeys...))
		if company == "" {
			company = "Unknown"
		}
		role := strings.TrimSpace(row.Get(roleKeys...))
		if role == "" {
			role = "Unknown"
		}
		url := row.Get(urlKeys...)

		candidate := contact.ParsedContact{
			Name:       name,
			Email:      email,
			Company:    company,
			Role:       role,
			ProfileURL: url,
			Tags:       []string{TagImported},
			Notes:      connectionNotes(url),
		}
		if email != "" && !strings.Contains(email, "@") {
			candidate.InvalidReason = fmt.Sprintf("email %q is missing '@'", email)
		}

		candidates = append(candidates, candidate)
	}
	return candidates
}

func connectionNotes(url string) string {
	if url != "" {
		return fmt.Sprintf("LinkedIn: %s\nImported from LinkedIn connections", url)
	}
	return "Imported from LinkedIn connections"
}
