package mcp

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bornholm/effortcalc/internal/model"
	"github.com/bornholm/effortcalc/internal/store"
	"gopkg.in/yaml.v3"
)

// ChrootedStore is a store that is restricted to a specific directory
type ChrootedStore struct {
	root *os.Root
}

// NewChrootedStore creates a new store restricted to the given directory
func NewChrootedStore(dir string) (*ChrootedStore, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open root directory: %w", err)
	}

	return &ChrootedStore{
		root: root,
	}, nil
}

// Close closes the root directory
func (s *ChrootedStore) Close() error {
	return s.root.Close()
}

// writeFile writes data to a file within the chrooted directory
func (s *ChrootedStore) writeFile(path string, data []byte) error {
	f, err := s.root.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(data)
	return err
}

// LoadEstimate loads an estimate from a file
func (s *ChrootedStore) LoadEstimate(path string) (*model.Estimate, error) {
	data, err := fs.ReadFile(s.root.FS(), path)
	if err != nil {
		return nil, err
	}

	return store.DecodeEstimate(data)
}

// SaveEstimate saves an estimate to a file
func (s *ChrootedStore) SaveEstimate(path string, estimate *model.Estimate) error {
	data, err := yaml.Marshal(estimate)
	if err != nil {
		return err
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := s.root.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return s.writeFile(path, data)
}

// CreateEstimate creates a new estimate file
func (s *ChrootedStore) CreateEstimate(path string, label string, input model.EstimationInput) (*model.Estimate, error) {
	estimate := model.NewEstimate(label, input)

	if err := s.SaveEstimate(path, estimate); err != nil {
		return nil, err
	}

	return estimate, nil
}

// ListEstimates lists all estimate files in a directory
func (s *ChrootedStore) ListEstimates(dir string) ([]string, error) {
	entries, err := fs.ReadDir(s.root.FS(), dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	return store.FilterEstimateFiles(entries), nil
}

// DeleteEstimate deletes an estimate file
func (s *ChrootedStore) DeleteEstimate(path string) error {
	return s.root.Remove(path)
}
