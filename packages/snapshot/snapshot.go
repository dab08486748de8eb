// Package snapshot stores JSON snapshots of values and checks later values
// against them. Each group of snapshots lives in one file, keyed by name.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/abdul-hamid-achik/testy/packages/assertions"
	"github.com/tidwall/pretty"
)

const (
	// Dir is the conventional directory name for snapshot files
	Dir = "__snapshots__"
	// Ext is the file extension for snapshot files
	Ext = ".snap.json"
)

// Manager handles snapshot storage and comparison. It is safe for
// concurrent use.
type Manager struct {
	baseDir    string
	updateMode bool

	mu    sync.Mutex
	files map[string]map[string]json.RawMessage // group -> {name -> value}
}

// NewManager creates a manager that keeps its files in baseDir. In update
// mode missing or differing snapshots are rewritten instead of failing.
func NewManager(baseDir string, updateMode bool) *Manager {
	return &Manager{
		baseDir:    baseDir,
		updateMode: updateMode,
		files:      make(map[string]map[string]json.RawMessage),
	}
}

// Result is the outcome of one snapshot comparison.
type Result struct {
	Passed     bool
	IsNew      bool
	WasUpdated bool
	// Err is the mismatch, as an assertion failure, when Passed is false.
	Err error
}

// Compare checks actual against the snapshot stored as name in group.
// The error is reserved for storage and encoding problems.
func (m *Manager) Compare(group, name string, actual any) (*Result, error) {
	if name == "" {
		return nil, errors.New("snapshot name is required")
	}

	data, err := json.Marshal(actual)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot %q: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots, err := m.load(group)
	if err != nil {
		return nil, err
	}

	expected, exists := snapshots[name]
	if !exists {
		if !m.updateMode {
			return &Result{Err: assertions.Fail("snapshot %q does not exist (run with --update-snapshots to create)", name)}, nil
		}
		snapshots[name] = data
		if err := m.save(group, snapshots); err != nil {
			return nil, err
		}
		return &Result{Passed: true, IsNew: true}, nil
	}

	mismatch := assertions.JSONEquals(expected, data, "snapshot %q", name)
	if mismatch == nil {
		return &Result{Passed: true}, nil
	}
	if !m.updateMode {
		return &Result{Err: mismatch}, nil
	}

	snapshots[name] = data
	if err := m.save(group, snapshots); err != nil {
		return nil, err
	}
	return &Result{Passed: true, WasUpdated: true}, nil
}

// Match is Compare as an assertion: it returns nil when the snapshot holds
// and an assertion failure when it does not.
func (m *Manager) Match(group, name string, actual any) error {
	res, err := m.Compare(group, name, actual)
	if err != nil {
		return err
	}
	return res.Err
}

// Path returns the file that stores group.
func (m *Manager) Path(group string) string {
	return filepath.Join(m.baseDir, group+Ext)
}

func (m *Manager) load(group string) (map[string]json.RawMessage, error) {
	if cached, ok := m.files[group]; ok {
		return cached, nil
	}

	snapshots := make(map[string]json.RawMessage)
	data, err := os.ReadFile(m.Path(group))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.files[group] = snapshots
			return snapshots, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("reading %s: %w", m.Path(group), err)
	}

	m.files[group] = snapshots
	return snapshots, nil
}

func (m *Manager) save(group string, snapshots map[string]json.RawMessage) error {
	if err := os.MkdirAll(m.baseDir, 0755); err != nil {
		return err
	}

	// Keys come out sorted, so files diff cleanly between updates.
	data, err := json.Marshal(snapshots)
	if err != nil {
		return err
	}

	m.files[group] = snapshots
	return os.WriteFile(m.Path(group), pretty.Pretty(data), 0644)
}
