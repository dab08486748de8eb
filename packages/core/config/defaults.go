package config

// DefaultConcurrency mirrors the runner's parallel default.
const DefaultConcurrency = 5

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Suite:       "all",
		Reporters:   []string{"console"},
		Parallel:    BoolPtr(false),
		Concurrency: DefaultConcurrency,
		Verbose:     BoolPtr(false),
		NoColor:     BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.Suite == defaults.Suite &&
		c.Reporter() == defaults.Reporter() &&
		len(c.Reporters) <= 1 &&
		c.OutputFile == defaults.OutputFile &&
		c.GetParallel() == defaults.GetParallel() &&
		c.Concurrency == defaults.Concurrency &&
		c.NameFilter == defaults.NameFilter &&
		c.HistoryDB == defaults.HistoryDB &&
		c.SnapshotDir == defaults.SnapshotDir &&
		c.Rate == defaults.Rate &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor()
}
