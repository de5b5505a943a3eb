package linkedin

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
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

func Test_IsArchive(t *testing.T) {
	payload := buildZip(t, map[string]string{"Connections.csv": "a,b\n1,2\n"})
	assert.True(t, IsArchive(payload))
	assert.False(t, IsArchive([]byte("First Name,Last Name\n")))
	assert.False(t, IsArchive([]byte("PK")))
	assert.False(t, IsArchive(nil))
}

func Test_ExtractBundle_BindsRecognizedEntries(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"Profile.csv":      "First Name,Last Name\nJohn,Smith\n",
		"Positions.csv":    "Company Name,Title\nAcme,Engineer\n",
		"Connections.csv":  "First Name,Last Name\nAda,Lovelace\n",
		"Invitations.csv":  "ignored",
		"media/avatar.png": "binary junk",
	})

	bundle, err := ExtractBundle(payload)
	require.NoError(t, err)
	assert.Contains(t, bundle.Profile, "John,Smith")
	assert.Contains(t, bundle.Positions, "Acme,Engineer")
	assert.Contains(t, bundle.Connections, "Ada,Lovelace")
	assert.False(t, bundle.Empty())
}

func Test_ExtractBundle_CaseInsensitiveNames(t *testing.T) {
	payload := buildZip(t, map[string]string{
		"export/CONNECTIONS.CSV": "First Name,Last Name\nAda,Lovelace\n",
	})

	bundle, err := ExtractBundle(payload)
	require.NoError(t, err)
	assert.Contains(t, bundle.Connections, "Ada,Lovelace")
	assert.Empty(t, bundle.Profile)
	assert.Empty(t, bundle.Positions)
}

func Test_ExtractBundle_FirstMatchWins(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	// Ordered writes: the first connections-like entry must win.
	f, err := w.Create("Connections.csv")
	require.NoError(t, err)
	_, err = f.Write([]byte("First Name,Last Name\nFirst,Winner\n"))
	require.NoError(t, err)
	f, err = w.Create("backup/connections.csv")
	require.NoError(t, err)
	_, err = f.Write([]byte("First Name,Last Name\nSecond,Loser\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	bundle, err := ExtractBundle(buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, bundle.Connections, "First,Winner")
	assert.NotContains(t, bundle.Connections, "Second,Loser")
}

func Test_ExtractBundle_CorruptArchive(t *testing.T) {
	_, err := ExtractBundle([]byte("PK\x03\x04 this is not a real zip"))
	assert.Error(t, err)
}

func Test_ExtractBundle_NoRecognizedEntries(t *testing.T) {
	payload := buildZip(t, map[string]string{"Messages.csv": "from,to\na,b\n"})

	bundle, err := ExtractBundle(payload)
	require.NoError(t, err)
	assert.True(t, bundle.Empty())
}
