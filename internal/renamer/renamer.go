// Package renamer places a generated base name on disk without ever
// overwriting an existing file.
package renamer

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Strategy selects how an occupied target path is resolved.
type Strategy string

const (
	StrategyVersion   Strategy = "version"
	StrategyTimestamp Strategy = "timestamp"
	StrategyHash      Strategy = "hash"
)

// maxVersionProbe caps the version counter probe. The loop terminates on
// any real filesystem, but a stat error masquerading as "exists" must not
// spin forever.
const maxVersionProbe = 10000

// ErrTargetOccupied reports that conflict resolution could not find a free
// path.
var ErrTargetOccupied = errors.New("target path already exists")

// Coordinator renames files with conflict-safe target selection. The
// conflict probe is serialized per target directory so concurrent renames
// cannot claim the same suffix.
type Coordinator struct {
	strategy Strategy
	preview  bool
	now      func() time.Time

	mu       sync.Mutex
	dirLocks map[string]*sync.Mutex
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithPreview makes Rename compute the target path without moving the
// file.
func WithPreview(preview bool) Option {
	return func(c *Coordinator) { c.preview = preview }
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// New builds a coordinator for the given strategy.
func New(strategy Strategy, opts ...Option) *Coordinator {
	c := &Coordinator{
		strategy: strategy,
		now:      time.Now,
		dirLocks: make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Rename moves originalPath to newBaseName (plus the original extension)
// in the same directory, resolving conflicts per the configured strategy.
// It returns the final path. The move either fully happens or the original
// file is left untouched.
func (c *Coordinator) Rename(originalPath, newBaseName string) (string, error) {
	if _, err := os.Lstat(originalPath); err != nil {
		return "", fmt.Errorf("source file not found: %w", err)
	}

	dir := filepath.Dir(originalPath)
	ext := filepath.Ext(originalPath)
	target := filepath.Join(dir, newBaseName+ext)

	lock := c.dirLock(dir)
	lock.Lock()
	defer lock.Unlock()

	target, err := c.resolveConflict(target)
	if err != nil {
		return "", err
	}

	if c.preview {
		return target, nil
	}

	if err := os.Rename(originalPath, target); err != nil {
		return "", fmt.Errorf("failed to rename file: %w", err)
	}
	return target, nil
}

// dirLock returns the mutex serializing conflict probes for dir.
func (c *Coordinator) dirLock(dir string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.dirLocks[dir]
	if !ok {
		lock = &sync.Mutex{}
		c.dirLocks[dir] = lock
	}
	return lock
}

// resolveConflict returns a free path for target, or target itself when
// unoccupied.
func (c *Coordinator) resolveConflict(target string) (string, error) {
	occupied, err := exists(target)
	if err != nil {
		return "", err
	}
	if !occupied {
		return target, nil
	}

	dir := filepath.Dir(target)
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	switch c.strategy {
	case StrategyTimestamp:
		// Second-granularity suffix; two collisions within the same second
		// surface as an error below.
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, c.now().Format("20060102_150405"), ext))
		return c.checkFree(candidate)

	case StrategyHash:
		// Hash of the base name; if the suffixed path is also occupied the
		// collision surfaces as an error below.
		sum := md5.Sum([]byte(stem))
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%s%s", stem, hex.EncodeToString(sum[:])[:8], ext))
		return c.checkFree(candidate)

	default: // StrategyVersion
		for counter := 2; counter <= maxVersionProbe; counter++ {
			candidate := filepath.Join(dir, fmt.Sprintf("%s_v%d%s", stem, counter, ext))
			occupied, err := exists(candidate)
			if err != nil {
				return "", err
			}
			if !occupied {
				return candidate, nil
			}
		}
		return "", fmt.Errorf("%w: no free version suffix for %s after %d probes", ErrTargetOccupied, target, maxVersionProbe)
	}
}

func (c *Coordinator) checkFree(candidate string) (string, error) {
	occupied, err := exists(candidate)
	if err != nil {
		return "", err
	}
	if occupied {
		return "", fmt.Errorf("%w: %s", ErrTargetOccupied, candidate)
	}
	return candidate, nil
}

// exists distinguishes a real stat error from absence; a permission error
// must not be treated as a free slot.
func exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("can't check target path %s: %w", path, err)
}
