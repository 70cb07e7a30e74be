package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

const (
	DefaultMaxInput    int64 = 10000
	DefaultHistoryFile       = "/tmp/factorial_history"

	configDirName  = ".factorial"
	configFileName = "config.json"
)

type Config struct {
	MaxInput    int64  `json:"max_input"`
	HistoryFile string `json:"history_file"`
	GroupDigits bool   `json:"group_digits"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxInput:    DefaultMaxInput,
		HistoryFile: DefaultHistoryFile,
	}
}

// FilePath builds the path to ~/.factorial/config.json.
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to detect home directory")
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LoadConfigFile reads configuration from ~/.factorial/config.json.
// A missing file yields Default().
func LoadConfigFile() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Load reads configuration from path. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "open config %s", path)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func saveConfigFile(cfg Config) error {
	path, err := FilePath()
	if err != nil {
		return err
	}
	return Save(path, cfg)
}

// InteractiveSetup launches a CLI wizard to collect configuration from the user
// and saves the result to ~/.factorial/config.json.
func InteractiveSetup() (Config, error) {
	fmt.Println("🔧 Initial configuration (factorial)")

	cfg := Default()

	limitPrompt := promptui.Prompt{
		Label:    "Largest n to compute",
		Default:  strconv.FormatInt(DefaultMaxInput, 10),
		Validate: validateLimit,
	}
	limit, err := limitPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.MaxInput, _ = strconv.ParseInt(strings.TrimSpace(limit), 10, 64)

	historyPrompt := promptui.Prompt{
		Label:   "History file",
		Default: DefaultHistoryFile,
	}
	history, err := historyPrompt.Run()
	if err != nil {
		return cfg, err
	}
	if history = strings.TrimSpace(history); history != "" {
		cfg.HistoryFile = history
	}

	groupSel := promptui.Select{
		Label: "Group digits in results (1,234,567)",
		Items: []string{"no", "yes"},
	}
	_, group, err := groupSel.Run()
	if err != nil {
		return cfg, err
	}
	cfg.GroupDigits = group == "yes"

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	if err := saveConfigFile(cfg); err != nil {
		return cfg, err
	}

	fmt.Println("Configuration saved to ~/.factorial/config.json ✅")

	return cfg, nil
}

func validateLimit(input string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n <= 0 {
		return errors.New("limit must be positive")
	}
	return nil
}

// Validate checks the configuration and fills in an empty history file.
func (c *Config) Validate() error {
	if c.MaxInput <= 0 {
		return errors.Errorf("max_input must be positive, got %d", c.MaxInput)
	}

	if strings.TrimSpace(c.HistoryFile) == "" {
		c.HistoryFile = DefaultHistoryFile
	}

	return nil
}
