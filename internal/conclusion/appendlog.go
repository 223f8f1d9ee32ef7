package conclusion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Separator divides rendered records inside the log file.
const Separator = "\n\n---\n\n"

// blockHeaderPrefix marks a block that already carries its own structural
// header; blocks without it get a synthetic "## Entry at ..." header.
const blockHeaderPrefix = "## "

// ErrInvalidPath is returned when a project path is empty.
var ErrInvalidPath = errors.New("conclusion: project path is empty")

// EntryType distinguishes the kinds of entries a write can produce.
type EntryType string

const (
	EntryThought    EntryType = "thought"
	EntryConclusion EntryType = "conclusion"
)

// SaveResult describes one completed file write.
type SaveResult struct {
	FilePath  string    `json:"filePath"`
	Type      EntryType `json:"type"`
	Timestamp int64     `json:"timestamp"`
}

// AppendLog owns the single markdown log file per project root. Writes are
// pure appends expressed as read-merge-rewrite: the existing content is
// read in full, the new block is joined with the fixed separator, and the
// result replaces the file through a temp-file rename so a crash can never
// leave the file half-written. Existing content is never dropped.
type AppendLog struct {
	dataDir string
	logger  *zap.Logger
	now     func() time.Time
}

// NewAppendLog creates an AppendLog writing under <projectPath>/<dataDir>/.
// An empty dataDir falls back to DefaultDataDir; a nil logger is replaced
// by a no-op logger.
func NewAppendLog(dataDir string, logger *zap.Logger) *AppendLog {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AppendLog{dataDir: dataDir, logger: logger, now: time.Now}
}

// FilePath returns the absolute path of the log file for a project.
func (l *AppendLog) FilePath(projectPath string) string {
	return filepath.Join(projectPath, l.dataDir, LogFileName)
}

// Append merges block into the project's log file, creating the data
// directory and the file on first use. Blocks that do not carry the
// structural record header are prefixed with a synthetic entry header.
//
// I/O failures are logged and returned as errors; the previous file
// content is left untouched because a failed write never reaches the
// rename step.
func (l *AppendLog) Append(projectPath, block string) (SaveResult, error) {
	if strings.TrimSpace(projectPath) == "" {
		return SaveResult{}, ErrInvalidPath
	}

	now := l.now()
	dir := filepath.Join(projectPath, l.dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.logger.Error("creating data directory failed",
			zap.String("dir", dir), zap.Error(err))
		return SaveResult{}, fmt.Errorf("conclusion: create data dir: %w", err)
	}

	if !strings.HasPrefix(block, blockHeaderPrefix) {
		block = fmt.Sprintf("## Entry at %s\n\n%s",
			now.Format("2006-01-02 15:04:05"), block)
	}

	path := l.FilePath(projectPath)
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		l.logger.Error("reading log file failed",
			zap.String("path", path), zap.Error(err))
		return SaveResult{}, fmt.Errorf("conclusion: read log file: %w", err)
	}

	var final string
	if len(existing) == 0 {
		final = block
	} else {
		final = string(existing) + Separator + block
	}

	if err := replaceFile(path, []byte(final)); err != nil {
		l.logger.Error("writing log file failed",
			zap.String("path", path), zap.Error(err))
		return SaveResult{}, fmt.Errorf("conclusion: write log file: %w", err)
	}

	return SaveResult{FilePath: path, Timestamp: now.UnixMilli()}, nil
}

// replaceFile atomically replaces path with data: write to a temp file in
// the same directory, then rename over the target.
func replaceFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, LogFileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
