package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MapProfileRows(t *testing.T) {
	rows := []RawRow{
		NewRawRow([]string{"col0", "col1"}, []string{"First Name", "Ada"}),
		NewRawRow([]string{"col0", "col1"}, []string{"Last Name", "Lovelace"}),
		NewRawRow([]string{"col0", "col1"}, []string{"Headline", "Engineer at Analytical Engines"}),
		NewRawRow([]string{"col0", "col1"}, []string{"Industry", "Computing"}),
		NewRawRow([]string{"col0", "col1"}, []string{"Unknown Field", "ignored"}),
		NewRawRow([]string{"col0", "col1"}, []string{"Summary", ""}),
	}

	p := MapProfileRows(rows)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "Lovelace", p.LastName)
	assert.Equal(t, "Engineer at Analytical Engines", p.Headline)
	assert.Equal(t, []string{"Computing"}, p.Industries)
	assert.Empty(t, p.Summary)
	assert.Empty(t, p.Skills)
}

func Test_ParseProfile(t *testing.T) {
	text := "Field,Value,Extra\n" +
		"First Name,John,\n" +
		"Last Name,Smith,\n" +
		"Headline,Software Engineer at Acme Corp,\n"

	p := ParseProfile(text)
	assert.Equal(t, "John", p.FirstName)
	assert.Equal(t, "Smith", p.LastName)
	assert.Equal(t, "Software Engineer at Acme Corp", p.Headline)
}

func Test_ParsePositions(t *testing.T) {
	text := "Company Name,Title,Description,Location,Started On,Finished On\n" +
		"Acme Corp,Software Engineer,,SF,Jan 2022,\n" +
		"Initech,QA Analyst,,Austin,Mar 2019,Dec 2021\n" +
		",,,,,\n"

	positions := ParsePositions(text)
	require.Len(t, positions, 2)

	assert.Equal(t, "Acme Corp", positions[0].Company)
	assert.Equal(t, "Software Engineer", positions[0].Title)
	assert.True(t, positions[0].Current())

	assert.Equal(t, "Initech", positions[1].Company)
	assert.Equal(t, "Dec 2021", positions[1].EndDate)
	assert.False(t, positions[1].Current())
}

func Test_ParseConnections(t *testing.T) {
	text := "Notes:\n" +
		`"When exporting your connection data, you may notice that some emails are missing."` + "\n" +
		"First Name,Last Name,URL,Email Address,Company,Position,Connected On\n" +
		"Jane,Doe,https://linkedin.com/in/janedoe,jane@acme.com,Acme Corp,Software Engineer,01 Jan 2024\n" +
		"Bob,Jones,,bobjones.net,Initech,Manager,02 Jan 2024\n" +
		"Carol,Brown,,,,,03 Jan 2024\n" +
		",,,,,,04 Jan 2024\n"

	candidates := ParseConnections(text)
	require.Len(t, candidates, 3)

	jane := candidates[0]
	assert.Equal(t, "Jane Doe", jane.Name)
	assert.Equal(t, "jane@acme.com", jane.Email)
	assert.Equal(t, "Acme Corp", jane.Company)
	assert.Equal(t, "Software Engineer", jane.Role)
	assert.Equal(t, []string{TagImported}, jane.Tags)
	assert.Contains(t, jane.Notes, "LinkedIn: https://linkedin.com/in/janedoe")
	assert.True(t, jane.Valid())

	bob := candidates[1]
	assert.Equal(t, "Bob Jones", bob.Name)
	assert.False(t, bob.Valid())
	assert.Contains(t, bob.InvalidReason, "missing '@'")

	carol := candidates[2]
	assert.Equal(t, "Carol Brown", carol.Name)
	assert.Equal(t, "Unknown", carol.Company)
	assert.Equal(t, "Unknown", carol.Role)
	assert.Empty(t, carol.Email)
	assert.True(t, carol.Valid())
	assert.Equal(t, "Imported from LinkedIn connections", carol.Notes)
}

func Test_ParseConnections_NoHeaderMatch(t *testing.T) {
	// A file with no recognizable connections header degrades to zero
	// candidates because name lookups come back empty.
	text := "garbage line one\ngarbage line two\n"
	assert.Empty(t, ParseConnections(text))
}
