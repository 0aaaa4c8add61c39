package handlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `{
  "hands": [
    {
      "id": "h1",
      "startedAt": 1700000000000,
      "cents": true,
      "dealerSeat": 2,
      "players": [
        {"id": "p1", "name": "Alice", "seat": 1, "hand": ["As", "Ks"]},
        {"id": "p2", "name": "Bob", "seat": 2}
      ],
      "events": [
        {"at": 1700000000100, "payload": {"type": 3, "seat": 1, "value": 50}},
        {"at": 1700000000200, "payload": {"type": 9, "turn": 1, "pot": 150}},
        {"at": 1700000000300, "payload": {"type": 12, "seat": 1, "hand": {"name": "Pair of Aces"}}}
      ]
    }
  ]
}`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	f, err := ReadFile(writeSample(t, sampleFile))
	require.NoError(t, err)
	require.Len(t, f.Hands, 1)

	h := f.Hands[0]
	assert.Equal(t, "h1", h.ID)
	assert.Equal(t, int64(1700000000000), h.StartedAt)
	assert.True(t, h.Cents)
	assert.Equal(t, 2, h.DealerSeat)

	require.Len(t, h.Players, 2)
	assert.Equal(t, []string{"As", "Ks"}, h.Players[0].Hand)
	assert.Nil(t, h.Players[1].Hand)

	require.Len(t, h.Events, 3)
	require.NotNil(t, h.Events[0].Payload.Type)
	assert.Equal(t, 3, *h.Events[0].Payload.Type)
	require.NotNil(t, h.Events[0].Payload.Value)
	assert.Equal(t, 50.0, *h.Events[0].Payload.Value)
	assert.Equal(t, 1, h.Events[1].Payload.Turn)
	require.NotNil(t, h.Events[1].Payload.Pot)
	assert.Equal(t, 150.0, *h.Events[1].Payload.Pot)
}

func TestReadFileKeepsRawPayload(t *testing.T) {
	f, err := ReadFile(writeSample(t, sampleFile))
	require.NoError(t, err)

	// Fields the typed payload does not model survive in the raw bytes.
	raw := string(f.Hands[0].Events[2].RawPayload)
	assert.Contains(t, raw, `"hand"`)
	assert.Contains(t, raw, "Pair of Aces")
}

func TestReadFileAbsentValueStaysNil(t *testing.T) {
	f, err := ReadFile(writeSample(t, `{"hands":[{"id":"h1","startedAt":1,"players":[],
		"events":[{"at":1,"payload":{"type":0,"seat":1}}]}]}`))
	require.NoError(t, err)
	assert.Nil(t, f.Hands[0].Events[0].Payload.Value)
	assert.Nil(t, f.Hands[0].Events[0].Payload.Pot)
}

func TestReadFileMalformed(t *testing.T) {
	_, err := ReadFile(writeSample(t, `{"hands": [`))
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}

	files, err := ListFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.json", filepath.Base(files[0]))
	assert.Equal(t, "b.json", filepath.Base(files[1]))
}

func TestListFilesEmptyDir(t *testing.T) {
	files, err := ListFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
