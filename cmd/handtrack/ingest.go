package main

import (
	"fmt"
	"os"

	"github.com/lox/handtrack/internal/ingest"
)

// IngestCmd loads hand history exports into the database. A directory is
// swept for *.json files, each moved aside once committed; a single file is
// ingested in place.
type IngestCmd struct {
	Path string `arg:"" type:"path" help:"Hand history JSON file or directory of exports"`
}

func (c *IngestCmd) Run(g *Globals) error {
	e, err := setup(g)
	if err != nil {
		return err
	}
	defer e.Close()

	batch := &ingest.Batch{Store: e.store, Logger: e.logger}

	info, err := os.Stat(c.Path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		res, err := batch.IngestFile(c.Path)
		if err != nil {
			return err
		}
		fmt.Printf("Ingested %d hands from %s (%d skipped)\n", res.Ingested, res.Path, len(res.Failures))
		return nil
	}

	res, err := batch.IngestDir(c.Path)
	if err != nil {
		return err
	}

	hands, skipped := 0, 0
	for _, f := range res.Files {
		hands += f.Ingested
		skipped += len(f.Failures)
	}
	fmt.Printf("Ingested %d hands from %d files (%d hands skipped, %d files failed)\n",
		hands, len(res.Files), skipped, len(res.Failed))
	if len(res.Failed) > 0 {
		return fmt.Errorf("%d files failed to ingest", len(res.Failed))
	}
	return nil
}
