package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/scrollhead/pkg/errors"
)

// Summary describes a stored trace without its events.
type Summary struct {
	Name      string
	ID        string
	CreatedAt time.Time
	Events    int
	Duration  time.Duration
}

// FileStore is a file-based trace store. Each trace is a JSON file named
// after the trace.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// DefaultDir returns $XDG_DATA_HOME/scrollhead/traces, falling back to
// ~/.local/share/scrollhead/traces.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "scrollhead", "traces"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "scrollhead", "traces"), nil
}

// NewFileStore creates a trace store rooted at baseDir. If baseDir is empty,
// [DefaultDir] is used.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create trace dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) tracePath(name string) string {
	return filepath.Join(s.baseDir, name+".json")
}

// Get loads the named trace. A missing trace is a TRACE_NOT_FOUND error.
func (s *FileStore) Get(ctx context.Context, name string) (*Trace, error) {
	if err := errors.ValidateName(name); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.tracePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeTraceNotFound, "trace %q not found", name)
		}
		return nil, fmt.Errorf("read trace file: %w", err)
	}
	return Decode(data)
}

// Set validates and writes t, replacing any trace with the same name.
func (s *FileStore) Set(ctx context.Context, t *Trace) error {
	if err := t.Validate(); err != nil {
		return err
	}
	data, err := Encode(t)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.tracePath(t.Name), data, 0600); err != nil {
		return fmt.Errorf("write trace file: %w", err)
	}
	return nil
}

// Delete removes the named trace. A missing trace is a TRACE_NOT_FOUND error.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.tracePath(name)); err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeTraceNotFound, "trace %q not found", name)
		}
		return fmt.Errorf("remove trace file: %w", err)
	}
	return nil
}

// List returns a summary of every readable trace, sorted by name. Files that
// fail to parse are skipped.
func (s *FileStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read trace dir: %w", err)
	}

	var out []Summary
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		t, err := Decode(data)
		if err != nil {
			continue
		}
		out = append(out, Summary{
			Name:      t.Name,
			ID:        t.ID,
			CreatedAt: t.CreatedAt,
			Events:    len(t.Events),
			Duration:  t.Duration(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Path returns the base directory for trace files.
func (s *FileStore) Path() string {
	return s.baseDir
}

// Encode serializes a trace as indented JSON.
func Encode(t *Trace) ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal trace: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses and validates a JSON trace.
func Decode(data []byte) (*Trace, error) {
	var t Trace
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTrace, err, "parse trace")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
