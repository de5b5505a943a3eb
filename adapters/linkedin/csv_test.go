package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_TokenizeLine(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "plain fields",
			line:     "a,b,c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "quoted comma stays in field",
			line:     `"Smith, John",Acme`,
			expected: []string{"Smith, John", "Acme"},
		},
		{
			name:     "doubled quote is a literal quote",
			line:     `"He said ""hi""",x`,
			expected: []string{`He said "hi"`, "x"},
		},
		{
			name:     "fields are trimmed",
			line:     "  a , b ,c  ",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "trailing comma yields empty field",
			line:     "a,b,",
			expected: []string{"a", "b", ""},
		},
		{
			name:     "unterminated quote is tolerated",
			line:     `"unclosed,still one field`,
			expected: []string{"unclosed,still one field"},
		},
		{
			name:     "empty line is one empty field",
			line:     "",
			expected: []string{""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tokenizeLine(tc.line))
		})
	}
}

func Test_NormalizeKey(t *testing.T) {
	assert.Equal(t, "emailaddress", normalizeKey("E-mail Address"))
	assert.Equal(t, "emailaddress", normalizeKey("Email Address"))
	assert.Equal(t, "firstname", normalizeKey("First Name"))
	assert.Equal(t, "", normalizeKey("---"))
}

func Test_ParseTable_HeaderAfterPreamble(t *testing.T) {
	text := "Notes:\n" +
		`"When exporting your connection data, you may notice that some emails are missing."` + "\n" +
		"\n" +
		"First Name,Last Name,Email Address,Company,Position,Connected On\n" +
		"Ada,Lovelace,ada@example.com,Analytical Engines,Engineer,01 Jan 2024\n"

	rows := parseTable(text, connectionsHeader)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada", rows[0].Get("First Name"))
	assert.Equal(t, "Lovelace", rows[0].Get("Last Name"))
	assert.Equal(t, "ada@example.com", rows[0].Get("Email Address"))
}

func Test_ParseTable_FallbackToFirstLine(t *testing.T) {
	// No line satisfies the connections predicate, so line 0 becomes the
	// header and the remaining lines become rows under its columns.
	text := "colA,colB\n1,2\n3,4\n"

	rows := parseTable(text, connectionsHeader)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].Get("colA"))
	assert.Equal(t, "4", rows[1].Get("colB"))
}

func Test_ParseTable_StripsBOMAndCRLF(t *testing.T) {
	text := "\ufeffFirst Name,Last Name,Email Address\r\nGrace,Hopper,grace@example.com\r\n"

	rows := parseTable(text, connectionsHeader)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grace", rows[0].Get("First Name"))
}

func Test_ParseTable_RaggedRow(t *testing.T) {
	text := "First Name,Last Name,Email Address,Company\nAda,Lovelace\n"

	rows := parseTable(text, connectionsHeader)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada", rows[0].Get("First Name"))
	assert.Equal(t, "", rows[0].Get("Email Address"))
	assert.Equal(t, "", rows[0].Get("Company"))
}

func Test_ParseTable_TooShort(t *testing.T) {
	assert.Nil(t, parseTable("", genericHeader))
	assert.Nil(t, parseTable("only one line", genericHeader))
	assert.Nil(t, parseTable("header\n\n\n", genericHeader))
}

func Test_RawRow_ValueAt(t *testing.T) {
	row := NewRawRow([]string{"First Name", "Last Name"}, []string{"Ada"})
	assert.Equal(t, "Ada", row.ValueAt(0))
	assert.Equal(t, "", row.ValueAt(1))
	assert.Equal(t, "", row.ValueAt(5))
	assert.Equal(t, "", row.ValueAt(-1))
}
