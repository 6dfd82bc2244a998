package corpusgen

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/myenglish-corpus/internal/adapter/source"
	"github.com/heartmarshall/myenglish-corpus/internal/corpus/emit"
	"github.com/heartmarshall/myenglish-corpus/internal/domain"
)

// LevelConfig is the YAML form of a domain.Level.
type LevelConfig struct {
	Name          string   `yaml:"name"`
	Target        int      `yaml:"target"`
	MinDifficulty int      `yaml:"min_difficulty"`
	MaxDifficulty int      `yaml:"max_difficulty"`
	Aliases       []string `yaml:"aliases"`
	Topic         string   `yaml:"topic"`
}

// Level converts the config into a domain level.
func (l LevelConfig) Level() domain.Level {
	return domain.Level{
		Name:    l.Name,
		Target:  l.Target,
		Range:   domain.DifficultyRange{Min: l.MinDifficulty, Max: l.MaxDifficulty},
		Aliases: l.Aliases,
		Topic:   l.Topic,
	}
}

// Config holds corpus generation settings. Sources are merged in the listed
// order after the embedded core seed and before the root combinations.
type Config struct {
	Sources           []source.Spec `yaml:"sources"`
	Levels            []LevelConfig `yaml:"levels"`
	OutputDir         string        `yaml:"output_dir"           env:"CORPUS_OUTPUT_DIR"           env-default:"data"`
	TablesPath        string        `yaml:"tables_path"          env:"CORPUS_TABLES_PATH"`
	Seed              uint64        `yaml:"seed"                 env:"CORPUS_SEED"`
	MaxDerivedPerBase int           `yaml:"max_derived_per_base" env:"CORPUS_MAX_DERIVED_PER_BASE"`
	Order             emit.Order    `yaml:"order"                env:"CORPUS_ORDER"                env-default:"assembly"`
	UseCoreSeed       bool          `yaml:"use_core_seed"        env:"CORPUS_USE_CORE_SEED"`
	UseRoots          bool          `yaml:"use_roots"            env:"CORPUS_USE_ROOTS"`
	DryRun            bool          `yaml:"dry_run"              env:"CORPUS_DRY_RUN"`
}

// DefaultSeed is the example writer seed used when none is configured.
const DefaultSeed = 42

// DefaultLevels returns the five standard exam levels, sized so that the
// embedded core seed and the root table alone can fill each of them. Full
// exam-size word lists (cet4 4500 up to gre 12000) need file sources and
// their own level targets.
func DefaultLevels() []LevelConfig {
	return []LevelConfig{
		{Name: "cet4", Target: 300, MinDifficulty: 1, MaxDifficulty: 3},
		{Name: "cet6", Target: 400, MinDifficulty: 2, MaxDifficulty: 4},
		{Name: "toefl", Target: 480, MinDifficulty: 2, MaxDifficulty: 4},
		{Name: "ielts", Target: 450, MinDifficulty: 2, MaxDifficulty: 4},
		{Name: "gre", Target: 480, MinDifficulty: 3, MaxDifficulty: 5},
	}
}

// DefaultConfig returns the configuration used for keys absent from YAML
// and ENV. Booleans and the level list are preset here rather than through
// env-default tags, so that an explicit false or an empty list is kept.
func DefaultConfig() Config {
	return Config{
		Levels:      DefaultLevels(),
		OutputDir:   "data",
		Seed:        DefaultSeed,
		Order:       emit.OrderAssembly,
		UseCoreSeed: true,
		UseRoots:    true,
	}
}

// LoadConfig reads corpus configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("corpus config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("corpus config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("corpus config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("corpus config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks levels, order and sources.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("levels: at least one level is required"))
	}
	names := make(map[string]bool, len(c.Levels))
	for i, l := range c.Levels {
		if err := l.Level().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("levels[%d] %q: %w", i, l.Name, err))
		}
		key := domain.NormalizeText(l.Name)
		if names[key] {
			errs = append(errs, fmt.Errorf("levels[%d]: duplicate level %q", i, l.Name))
		}
		names[key] = true
	}

	if !c.Order.IsValid() {
		errs = append(errs, fmt.Errorf("order: unknown value %q", c.Order))
	}
	if c.MaxDerivedPerBase < 0 {
		errs = append(errs, fmt.Errorf("max_derived_per_base must be >= 0 (got %d)", c.MaxDerivedPerBase))
	}

	if len(c.Sources) == 0 && !c.UseCoreSeed {
		errs = append(errs, errors.New("sources: no file sources and core seed disabled"))
	}
	for i, s := range c.Sources {
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("sources[%d]: path is required", i))
			continue
		}
		if s.Format != "" && !s.Format.IsValid() {
			errs = append(errs, fmt.Errorf("sources[%d]: unknown format %q", i, s.Format))
		}
	}

	return errors.Join(errs...)
}

// DomainLevels returns the configured levels in order.
func (c *Config) DomainLevels() []domain.Level {
	levels := make([]domain.Level, len(c.Levels))
	for i, l := range c.Levels {
		levels[i] = l.Level()
	}
	return levels
}
