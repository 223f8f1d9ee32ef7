package conclusion

// DefaultCategory is applied when the caller supplies no category.
const DefaultCategory = "feature"

// DefaultDataDir is the per-project subdirectory holding the conclusion log.
const DefaultDataDir = "booster-data"

// LogFileName is the single markdown file the store appends to.
const LogFileName = "conclusion.md"

// Config holds conclusion store configuration.
type Config struct {
	// DataDir is the subdirectory created under each project path.
	DataDir string
	// DefaultCategory is used when a record carries no category.
	DefaultCategory string
	// MaxSearchResults caps Search output; zero or negative means no cap.
	MaxSearchResults int
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:          DefaultDataDir,
		DefaultCategory:  DefaultCategory,
		MaxSearchResults: 20,
	}
}

func (c Config) withDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = DefaultCategory
	}
	return c
}
