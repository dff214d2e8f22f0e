package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/deptscrape"
)

// Ensure Reader implements deptscrape.RecordReader at compile time.
var _ deptscrape.RecordReader = (*Reader)(nil)

// Reader loads page records back from a run directory, typically to
// feed the CMS uploader.
type Reader struct {
	dir string
}

// NewReader creates a Reader for the given run directory.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// ReadRecords loads every record JSON in the directory, ordered by
// file number. metadata.json is skipped.
func (r *Reader) ReadRecords(ctx context.Context) ([]*deptscrape.PageRecord, error) {
	matches, err := filepath.Glob(filepath.Join(r.dir, "*.json"))
	if err != nil {
		return nil, err
	}

	type numbered struct {
		n    int
		path string
	}
	var files []numbered
	for _, path := range matches {
		name := filepath.Base(path)
		if name == "metadata.json" {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		files = append(files, numbered{n: n, path: path})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].n < files[j].n })

	records := make([]*deptscrape.PageRecord, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, err
		}

		var rec deptscrape.PageRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, deptscrape.Errorf(deptscrape.EPARSE, "parsing %s: %v", filepath.Base(f.path), err)
		}
		records = append(records, &rec)
	}

	return records, nil
}
