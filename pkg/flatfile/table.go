package flatfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// Codec turns entities into fixed-width lines and back. Decode is total:
// malformed or truncated lines yield an entity with blank fields, never an
// error. Encode fails only on schema misconfiguration (*SchemaError).
type Codec[T any] interface {
	Encode(rec T) (string, error)
	Decode(line string) T
}

// Table is one flat text file of newline-delimited fixed-width records of a
// single type. All operations serialize behind the table's mutex, so
// compound steps like scan-for-max-id-then-append are atomic relative to
// other operations on the same table. Nothing guards against other
// processes touching the file; the system assumes a single writer.
type Table[T any] struct {
	path  string
	codec Codec[T]
	mu    sync.Mutex
}

func NewTable[T any](path string, codec Codec[T]) *Table[T] {
	return &Table[T]{path: path, codec: codec}
}

func (t *Table[T]) Path() string { return t.path }

// ReadAll decodes every non-blank line in file order. A missing file is an
// empty table, not an error.
func (t *Table[T]) ReadAll() ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.readAll()
}

// FindFirst scans in file order and returns the first matching record.
func (t *Table[T]) FindFirst(pred func(T) bool) (T, bool, error) {
	var zero T
	recs, err := t.ReadAll()
	if err != nil {
		return zero, false, err
	}
	for _, rec := range recs {
		if pred(rec) {
			return rec, true, nil
		}
	}
	return zero, false, nil
}

// Append encodes rec and appends one line, creating the file if absent.
// It never reads or rewrites existing content.
func (t *Table[T]) Append(rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.appendRecords([]T{rec})
}

// Insert runs fn with the table's current records and appends whatever fn
// returns, all inside one critical section. Check-then-act steps (duplicate
// detection, next-id allocation) go through here so the check and the
// append cannot interleave with another operation on the same file. fn may
// return a domain error to abort, or no records to append nothing.
func (t *Table[T]) Insert(fn func(existing []T) ([]T, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	existing, err := t.readAll()
	if err != nil {
		return err
	}
	recs, err := fn(existing)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return nil
	}
	return t.appendRecords(recs)
}

// Upsert replaces the first record matched by the extractor with rec,
// keeping its position, or appends rec when nothing matches. The whole
// file is rewritten either way.
func (t *Table[T]) Upsert(match func(T) bool, rec T) (created bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	recs, err := t.readAll()
	if err != nil {
		return false, err
	}
	replaced := false
	for i := range recs {
		if match(recs[i]) {
			recs[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		recs = append(recs, rec)
	}
	if err := t.rewrite(recs); err != nil {
		return false, err
	}
	return !replaced, nil
}

// RemoveWhere drops every matching record and rewrites the remainder.
// Removing the last record leaves an empty file, not a blank line.
func (t *Table[T]) RemoveWhere(pred func(T) bool) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	recs, err := t.readAll()
	if err != nil {
		return 0, err
	}
	kept := recs[:0]
	removed := 0
	for _, rec := range recs {
		if pred(rec) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := t.rewrite(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (t *Table[T]) readAll() ([]T, error) {
	data, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("flatfile: read %s: %w", t.path, err)
	}
	var recs []T
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		recs = append(recs, t.codec.Decode(line))
	}
	return recs, nil
}

func (t *Table[T]) appendRecords(recs []T) error {
	var b strings.Builder
	for _, rec := range recs {
		line, err := t.codec.Encode(rec)
		if err != nil {
			return err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("flatfile: open %s: %w", t.path, err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return fmt.Errorf("flatfile: append %s: %w", t.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("flatfile: close %s: %w", t.path, err)
	}
	return nil
}

func (t *Table[T]) rewrite(recs []T) error {
	var b strings.Builder
	for _, rec := range recs {
		line, err := t.codec.Encode(rec)
		if err != nil {
			return err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(t.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("flatfile: rewrite %s: %w", t.path, err)
	}
	return nil
}
