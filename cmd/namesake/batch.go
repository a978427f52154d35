package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/namesake/internal/debug"
	"github.com/standardbeagle/namesake/internal/entity"
	nserrors "github.com/standardbeagle/namesake/internal/errors"
	"github.com/standardbeagle/namesake/internal/match"
	"github.com/standardbeagle/namesake/internal/version"
)

// maxLineSize bounds a single JSON entity line
const maxLineSize = 16 * 1024 * 1024

// BatchRecord is one scored pair in batch output
type BatchRecord struct {
	QueryID  string  `json:"query_id"`
	ResultID string  `json:"result_id"`
	Score    float64 `json:"score"`
	Detail   string  `json:"detail"`
	Build    string  `json:"build"`
}

func batchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("batch requires at least one candidate glob")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if w := c.Int("workers"); w > 0 {
		cfg.Engine.Workers = w
	}

	queries, err := readEntities(c.String("queries"))
	if err != nil {
		return err
	}
	files, err := expandGlobs(c.Args().Slice())
	if err != nil {
		return err
	}
	var candidates []*entity.Proxy
	var errs []error
	for _, path := range files {
		es, err := readEntities(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		candidates = append(candidates, es...)
	}
	if err := nserrors.NewMultiError(errs).ErrOrNil(); err != nil {
		return err
	}
	debug.Log("BATCH", "%d queries x %d candidates from %d files", len(queries), len(candidates), len(files))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, err := runBatch(ctx, match.NewEngine(cfg), queries, candidates, c.Float64("threshold"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.App.Writer)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

// runBatch scores every query against every candidate and returns the pairs
// scoring at least threshold, best first
func runBatch(ctx context.Context, engine *match.Engine, queries, candidates []*entity.Proxy, threshold float64) ([]BatchRecord, error) {
	pairs := make([]match.Pair, 0, len(queries)*len(candidates))
	for _, q := range queries {
		for _, r := range candidates {
			pairs = append(pairs, match.Pair{Query: q, Result: r})
		}
	}

	results, err := engine.Batch(ctx, pairs)
	if err != nil {
		return nil, err
	}

	var records []BatchRecord
	build := version.BuildID()
	for i, res := range results {
		if res.Score < threshold {
			continue
		}
		records = append(records, BatchRecord{
			QueryID:  pairs[i].Query.(*entity.Proxy).ID,
			ResultID: pairs[i].Result.(*entity.Proxy).ID,
			Score:    res.Score,
			Detail:   res.Detail,
			Build:    build,
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	return records, nil
}

// expandGlobs resolves doublestar patterns ("data/**/*.jsonl") to a sorted,
// de-duplicated file list. A pattern matching nothing is an error.
func expandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// readEntities reads one JSON entity per line; blank lines are skipped
func readEntities(path string) ([]*entity.Proxy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var out []*entity.Proxy
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(bytes.TrimSpace(data)) == 0 {
			continue
		}
		e, err := entity.DecodeProxyAt(path, line, data)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, nserrors.NewInputError(path, line, err)
	}
	return out, nil
}
