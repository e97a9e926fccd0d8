package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/consent-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_ReplacesParticipants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.json")
	content := `[{"role":"ребенок","full_name":"Иванов Иван"},{"role":"итого","full_name":"1"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	session := &types.Session{Participants: []types.Participant{{FullName: "старый"}, {FullName: "список"}}}
	rows, err := Upload(session, path, DefaultClassifier())
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	require.Len(t, session.Participants, 1)
	assert.Equal(t, "Иванов Иван", session.Participants[0].FullName)
}

func TestUpload_MalformedLeavesSessionUnchanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"full_name":`), 0644))

	previous := []types.Participant{{FullName: "Петрова Анна", Variant: types.VariantEscort}}
	session := &types.Session{Participants: previous}

	_, err := Upload(session, path, DefaultClassifier())
	require.Error(t, err)
	assert.Equal(t, previous, session.Participants)
}

func TestUpload_NonArrayClearsParticipants(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"rows": []}`), 0644))

	session := &types.Session{Participants: []types.Participant{{FullName: "Петрова Анна"}}}
	rows, err := Upload(session, path, DefaultClassifier())
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.Empty(t, session.Participants)
}
