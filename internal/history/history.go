// Package history persists REPL command history.
//
// Several REPL sessions may run at once. Each one appends only the lines it
// entered, under an exclusive lock, and the file is replaced atomically so
// a crash never leaves a truncated history behind.
package history

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// DefaultMaxLines is the number of trailing lines kept on disk.
const DefaultMaxLines = 1000

// Load returns the lines stored at path. A missing file yields no lines.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading history: %w", err)
	}

	return splitLines(data), nil
}

// Append adds lines to the history at path, keeping at most maxLines
// trailing lines (DefaultMaxLines if maxLines <= 0).
func Append(path string, lines []string, maxLines int) error {
	return appendWithTimeout(path, lines, maxLines, LockTimeout)
}

func appendWithTimeout(path string, lines []string, maxLines int, timeout time.Duration) error {
	if len(lines) == 0 {
		return nil
	}

	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	lock, lockErr := acquireLockWithTimeout(path, timeout)
	if lockErr != nil {
		return fmt.Errorf("acquiring lock: %w", lockErr)
	}

	defer lock.release()

	existing, loadErr := Load(path)
	if loadErr != nil {
		return loadErr
	}

	merged := append(existing, lines...)
	if len(merged) > maxLines {
		merged = merged[len(merged)-maxLines:]
	}

	content := strings.Join(merged, "\n") + "\n"

	writeErr := atomic.WriteFile(path, strings.NewReader(content))
	if writeErr != nil {
		return fmt.Errorf("writing history: %w", writeErr)
	}

	// atomic.WriteFile doesn't set permissions for new files
	_ = os.Chmod(path, filePerms)

	return nil
}

func splitLines(data []byte) []string {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
