package ingest

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handtrack/internal/store"
)

const goodFile = `{
  "hands": [
    {
      "id": "h1",
      "startedAt": 1700000000000,
      "dealerSeat": 1,
      "players": [
        {"id": "p1", "name": "Alice", "seat": 1},
        {"id": "p2", "name": "Bob", "seat": 2}
      ],
      "events": [
        {"at": 1, "payload": {"type": 3, "seat": 1, "value": 1}},
        {"at": 2, "payload": {"type": 2, "seat": 2, "value": 2}},
        {"at": 3, "payload": {"type": 11, "seat": 1}},
        {"at": 4, "payload": {"type": 10, "seat": 2, "value": 3}}
      ]
    },
    {
      "id": "h2",
      "players": [],
      "events": []
    }
  ]
}`

func newBatch(t *testing.T) (*Batch, *store.Store) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Batch{
		Store:  db,
		Logger: log.New(io.Discard),
		Clock:  quartz.NewMock(t),
	}, db
}

func TestIngestFileSkipsMalformedHands(t *testing.T) {
	b, db := newBatch(t)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(goodFile), 0644))

	res, err := b.IngestFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Ingested)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "h2", res.Failures[0].HandID)

	events, err := db.AllEvents()
	require.NoError(t, err)
	assert.Len(t, events, 4)

	names, err := db.DisplayNames()
	require.NoError(t, err)
	assert.Equal(t, "Alice", names["p1"])
	assert.Equal(t, "Bob", names["p2"])
}

func TestIngestFileUnreadable(t *testing.T) {
	b, _ := newBatch(t)
	_, err := b.IngestFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestIngestDirMovesCommittedFiles(t *testing.T) {
	b, db := newBatch(t)

	root := t.TempDir()
	drop := filepath.Join(root, "drop")
	require.NoError(t, os.MkdirAll(drop, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(drop, "good.json"), []byte(goodFile), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(drop, "bad.json"), []byte("{"), 0644))

	res, err := b.IngestDir(drop)
	require.NoError(t, err)

	require.Len(t, res.Files, 1)
	assert.Equal(t, 1, res.Files[0].Ingested)
	require.Len(t, res.Failed, 1)

	// The committed file moved aside; the broken one stays for inspection.
	assert.NoFileExists(t, filepath.Join(drop, "good.json"))
	assert.FileExists(t, filepath.Join(root, "ingested", "good.json"))
	assert.FileExists(t, filepath.Join(drop, "bad.json"))

	events, err := db.AllEvents()
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestIngestDirEmpty(t *testing.T) {
	b, _ := newBatch(t)

	res, err := b.IngestDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Empty(t, res.Failed)
}
