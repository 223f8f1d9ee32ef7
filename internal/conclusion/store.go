package conclusion

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/LLM-Booster/mcp-booster/internal/search"
	"github.com/LLM-Booster/mcp-booster/internal/templates"
)

// Store is the conclusion store facade: it orchestrates metadata building,
// rendering and the append-only log for writes, and feeds the in-memory
// inverted index that serves Search.
//
// The store is built for single-process, single-writer use: Record and
// AppendRaw serialize on an internal mutex, and the index lives only as
// long as the store — it is rebuilt empty on every process start.
type Store struct {
	cfg      Config
	renderer *Renderer
	log      *AppendLog
	index    *search.Index
	logger   *zap.Logger

	writeMu sync.Mutex
}

// NewStore creates a Store with the given configuration and an explicit
// logger handle (store lifetime). A nil logger is replaced by a no-op
// logger.
func NewStore(cfg Config, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	engine := templates.NewEngine(logger)
	builder := NewBuilder(cfg.DefaultCategory)

	return &Store{
		cfg:      cfg,
		renderer: NewRenderer(builder, engine, logger),
		log:      NewAppendLog(cfg.DataDir, logger),
		index:    search.NewIndex(),
		logger:   logger,
	}
}

// Record renders a conclusion for the why/what pair, persists it to the
// project's log file, and indexes the rendered text under the new
// metadata id. Raw thought entries supplied in opts are saved first, each
// as its own log entry, so the returned list always ends with the
// conclusion entry.
//
// Persistence failures are returned as errors; rendering and indexing
// failures degrade gracefully so a best-effort record is still saved.
func (s *Store) Record(projectPath, whyChange, whatChange string, opts Options) ([]SaveResult, error) {
	if strings.TrimSpace(projectPath) == "" {
		return nil, ErrInvalidPath
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var results []SaveResult
	for i, thought := range opts.Thoughts {
		res, err := s.log.Append(projectPath, thought)
		if err != nil {
			return results, fmt.Errorf("conclusion: saving thought %d: %w", i+1, err)
		}
		res.Type = EntryThought
		results = append(results, res)
	}

	markdown, meta := s.renderer.Render(whyChange, whatChange, opts)

	res, err := s.log.Append(projectPath, markdown)
	if err != nil {
		return results, fmt.Errorf("conclusion: saving conclusion: %w", err)
	}
	res.Type = EntryConclusion
	results = append(results, res)

	s.indexRecord(meta.ID, markdown)

	s.logger.Info("conclusion recorded",
		zap.String("id", meta.ID),
		zap.String("category", meta.Category),
		zap.String("file", res.FilePath))

	return results, nil
}

// AppendRaw persists a lightweight interaction summary straight to the
// log, skipping metadata, templating and indexing. The log prefixes the
// text with a synthetic entry header.
func (s *Store) AppendRaw(projectPath, text string) (SaveResult, error) {
	if strings.TrimSpace(projectPath) == "" {
		return SaveResult{}, ErrInvalidPath
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.log.Append(projectPath, text)
	if err != nil {
		return SaveResult{}, err
	}
	res.Type = EntryThought
	return res, nil
}

// Search returns the ids of recorded conclusions matching query, most
// relevant first, capped at the configured maximum. It is available
// before any Record call and simply returns nothing then.
func (s *Store) Search(query string) []string {
	ids := s.index.Search(query)
	if s.cfg.MaxSearchResults > 0 && len(ids) > s.cfg.MaxSearchResults {
		ids = ids[:s.cfg.MaxSearchResults]
	}
	return ids
}

// indexRecord absorbs the rendered text into the index. An indexing
// failure is logged and swallowed: the file write already succeeded and
// must not be rolled back or reported as failed.
func (s *Store) indexRecord(id, text string) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Warn("indexing conclusion failed",
				zap.String("id", id), zap.Any("panic", rec))
		}
	}()
	s.index.Add(id, text)
}

// LogFilePath returns the path of the conclusion log for a project.
func (s *Store) LogFilePath(projectPath string) string {
	return s.log.FilePath(projectPath)
}

// IndexedCount returns the number of conclusions indexed this session.
func (s *Store) IndexedCount() int {
	return s.index.Len()
}

// DataDir returns the per-project data directory name in use.
func (s *Store) DataDir() string {
	return s.cfg.DataDir
}
