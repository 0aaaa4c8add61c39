package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/handtrack/internal/handlog"
	"github.com/lox/handtrack/internal/store"
)

// Batch ingests hand-history files sequentially: each file is fully
// normalized and committed before the next is read. One bad file or hand
// never aborts the batch.
type Batch struct {
	Store  *store.Store
	Logger *log.Logger

	// Clock is swappable for tests; the real clock is used when nil.
	Clock quartz.Clock
}

// HandFailure records one malformed hand that was skipped.
type HandFailure struct {
	HandID string
	Err    error
}

// FileResult reports what one file contributed.
type FileResult struct {
	Path     string
	Ingested int
	Failures []HandFailure
}

// DirResult reports a whole drop-directory run.
type DirResult struct {
	Files  []FileResult
	Failed map[string]error // file path → read/decode error
}

func (b *Batch) clock() quartz.Clock {
	if b.Clock != nil {
		return b.Clock
	}
	return quartz.NewReal()
}

// IngestFile normalizes and commits every hand in one file. Malformed hands
// are skipped and reported in the result; a storage write failure aborts the
// file since continuing would leave it half-committed.
func (b *Batch) IngestFile(path string) (*FileResult, error) {
	start := b.clock().Now()

	f, err := handlog.ReadFile(path)
	if err != nil {
		return nil, err
	}

	res := &FileResult{Path: path}
	for i, hand := range f.Hands {
		rec, err := normalizeHand(hand)
		if err != nil {
			id := hand.ID
			if id == "" {
				id = fmt.Sprintf("record %d", i+1)
			}
			b.Logger.Warn("skipping malformed hand", "file", filepath.Base(path), "hand", id, "err", err)
			res.Failures = append(res.Failures, HandFailure{HandID: id, Err: err})
			continue
		}
		if err := b.commit(rec); err != nil {
			return res, err
		}
		res.Ingested++
	}

	b.Logger.Info("ingested file",
		"file", filepath.Base(path),
		"hands", res.Ingested,
		"skipped", len(res.Failures),
		"elapsed", b.clock().Since(start))
	return res, nil
}

// IngestDir processes every *.json file in dir, moving each successfully
// ingested file to a sibling "ingested" directory so re-runs only see new
// exports. Files that fail to read or decode are logged and left in place.
func (b *Batch) IngestDir(dir string) (*DirResult, error) {
	files, err := handlog.ListFiles(dir)
	if err != nil {
		return nil, err
	}

	res := &DirResult{Failed: make(map[string]error)}
	if len(files) == 0 {
		b.Logger.Warn("no JSON files found", "dir", dir)
		return res, nil
	}

	ingestedDir := filepath.Join(dir, "..", "ingested")
	if err := os.MkdirAll(ingestedDir, 0o755); err != nil {
		return nil, fmt.Errorf("create ingested directory: %w", err)
	}

	for _, path := range files {
		fileRes, err := b.IngestFile(path)
		if err != nil {
			b.Logger.Error("failed to ingest file", "file", filepath.Base(path), "err", err)
			res.Failed[path] = err
			continue
		}
		res.Files = append(res.Files, *fileRes)

		dest := filepath.Join(ingestedDir, filepath.Base(path))
		if err := os.Rename(path, dest); err != nil {
			b.Logger.Error("ingested but could not move file", "file", filepath.Base(path), "err", err)
		}
	}
	return res, nil
}

// commit writes one hand's rows. Reference rows go first so events never
// point at missing hands.
func (b *Batch) commit(rec *handRecord) error {
	if err := b.Store.UpsertHand(rec.hand); err != nil {
		return fmt.Errorf("upsert hand %s: %w", rec.hand.ID, err)
	}
	for _, obs := range rec.names {
		if err := b.Store.ObserveName(obs.playerID, obs.name); err != nil {
			return fmt.Errorf("observe name for %s: %w", obs.playerID, err)
		}
	}
	for _, hc := range rec.cards {
		if err := b.Store.UpsertHoleCards(hc); err != nil {
			return fmt.Errorf("upsert hole cards for %s: %w", hc.PlayerID, err)
		}
	}
	if err := b.Store.AppendEvents(rec.events); err != nil {
		return err
	}
	return nil
}
