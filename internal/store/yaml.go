package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bornholm/effortcalc/internal/model"
	"gopkg.in/yaml.v3"
)

// EstimateFileSuffix is the suffix of estimate files
const EstimateFileSuffix = ".estimate.yml"

// YAMLStore handles reading and writing estimate and config files
type YAMLStore struct {
	configFile string
}

// NewYAMLStore creates a new YAML store with the given config file path
func NewYAMLStore(configFile string) *YAMLStore {
	return &YAMLStore{
		configFile: configFile,
	}
}

// DefaultConfigFile returns the default config file name
const DefaultConfigFile = ".effortcalc.yml"

// LoadConfig loads the configuration from the config file.
// If no specific config file is set, it searches for the config file
// starting from the current directory and traversing up to parent directories.
// Environment overrides are applied and the result is validated.
func (s *YAMLStore) LoadConfig() (*model.Config, error) {
	config, err := s.loadConfig()
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (s *YAMLStore) loadConfig() (*model.Config, error) {
	// If a specific config file is set, use it directly
	if s.configFile != "" && s.configFile != DefaultConfigFile {
		return loadConfigFromFile(s.configFile)
	}

	configPath, err := findConfigFile(DefaultConfigFile)
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		return model.DefaultConfig(), nil
	}

	return loadConfigFromFile(configPath)
}

// findConfigFile searches for the config file starting from the current directory
// and traversing up to parent directories until it finds the file or reaches the root
func findConfigFile(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// loadConfigFromFile loads the configuration from a specific file path.
// Values missing from the file keep their default.
func loadConfigFromFile(configPath string) (*model.Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultConfig(), nil
		}
		return nil, err
	}

	config := model.DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the config file
func (s *YAMLStore) SaveConfig(config *model.Config) error {
	configPath := s.configFile
	if configPath == "" {
		configPath = DefaultConfigFile
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// LoadEstimate loads an estimate from a file
func (s *YAMLStore) LoadEstimate(path string) (*model.Estimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeEstimate(data)
}

// LoadOrCreateEstimate loads an estimate from a file, or creates a new one from
// the given input if it doesn't exist
func (s *YAMLStore) LoadOrCreateEstimate(path string, label string, input model.EstimationInput) (*model.Estimate, bool, error) {
	estimate, err := s.LoadEstimate(path)
	if err == nil {
		return estimate, false, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, err
	}

	estimate, err = s.CreateEstimate(path, label, input)
	if err != nil {
		return nil, false, err
	}
	return estimate, true, nil
}

// SaveEstimate saves an estimate to a file
func (s *YAMLStore) SaveEstimate(path string, estimate *model.Estimate) error {
	data, err := yaml.Marshal(estimate)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// CreateEstimate creates a new estimate file
func (s *YAMLStore) CreateEstimate(path string, label string, input model.EstimationInput) (*model.Estimate, error) {
	estimate := model.NewEstimate(label, input)

	if err := s.SaveEstimate(path, estimate); err != nil {
		return nil, err
	}

	return estimate, nil
}

// ListEstimates lists all estimate files in a directory
func (s *YAMLStore) ListEstimates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	return FilterEstimateFiles(entries), nil
}

// DecodeEstimate parses an estimate document
func DecodeEstimate(data []byte) (*model.Estimate, error) {
	estimate := &model.Estimate{}
	if err := yaml.Unmarshal(data, estimate); err != nil {
		return nil, err
	}
	return estimate, nil
}

// EstimateFileName returns the file name of an estimate with the given label
func EstimateFileName(label string) string {
	safeName := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(label), " ", "-"))
	return safeName + EstimateFileSuffix
}

// FilterEstimateFiles returns the names of the estimate files among entries
func FilterEstimateFiles(entries []os.DirEntry) []string {
	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), EstimateFileSuffix) {
			files = append(files, entry.Name())
		}
	}
	return files
}

// Store interface for dependency injection
type Store interface {
	LoadConfig() (*model.Config, error)
	SaveConfig(config *model.Config) error
	LoadEstimate(path string) (*model.Estimate, error)
	SaveEstimate(path string, estimate *model.Estimate) error
	CreateEstimate(path string, label string, input model.EstimationInput) (*model.Estimate, error)
	ListEstimates(dir string) ([]string, error)
}

// Ensure YAMLStore implements Store interface
var _ Store = (*YAMLStore)(nil)
