// Package jsonstore persists a journal lookup as the data.json file read by
// the browser extension.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"jifdict/domain/journal"
	"jifdict/internal/errors"

	"github.com/google/renameio/v2"
)

const indent = "  "

// Store reads and writes lookup files
type Store struct{}

// NewStore creates a Store
func NewStore() *Store {
	return &Store{}
}

// Encode writes lookup to w as 2-space indented JSON in insertion order.
// Non-ASCII and HTML characters are written verbatim.
func Encode(w io.Writer, lookup *journal.Lookup) error {
	compact, err := lookup.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal lookup: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return fmt.Errorf("indent lookup: %w", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// WriteLookup replaces the file at path with the encoded lookup. The write
// is atomic: readers see either the old file or the complete new one.
func (s *Store) WriteLookup(ctx context.Context, path string, lookup *journal.Lookup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return errors.Wrapf(err, "create pending file for %s", path)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			log.Printf("[JSONStore] cleanup pending file: %v", err)
		}
	}()

	if err := Encode(pendingFile, lookup); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return errors.Wrapf(err, "atomically replace %s", path)
	}
	return nil
}

// LoadLookup reads a lookup file previously written by WriteLookup
func (s *Store) LoadLookup(ctx context.Context, path string) (*journal.Lookup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.LoadFailure(path, err)
	}

	lookup := journal.NewLookup()
	if err := lookup.UnmarshalJSON(data); err != nil {
		return nil, errors.LoadFailure(path, err)
	}
	return lookup, nil
}
