package artifacts

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

const (
	// ChainIDFile marks a chain directory, hardhat-deploy style
	ChainIDFile = ".chainId"

	maxSuggestions = 3
)

// FileRepository stores named artifacts as <root>/<chainId>/<Name>.json
type FileRepository struct {
	rootDir   string
	mu        sync.RWMutex
	artifacts map[uint64]map[string]*models.Artifact
}

// NewFileRepository creates a repository rooted at the configured deployments directory
func NewFileRepository(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return NewFileRepositoryAt(cfg.DeploymentsDir)
}

// NewFileRepositoryAt creates a repository rooted at rootDir and loads existing artifacts
func NewFileRepositoryAt(rootDir string) (*FileRepository, error) {
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create deployments directory: %w", err)
	}

	r := &FileRepository{
		rootDir:   rootDir,
		artifacts: make(map[uint64]map[string]*models.Artifact),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load artifacts: %w", err)
	}

	return r, nil
}

// load reads every chain directory under the root
func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.rootDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		chainID, err := strconv.ParseUint(entry.Name(), 10, 64)
		if err != nil {
			// not a chain directory
			continue
		}
		if err := r.loadChain(chainID); err != nil {
			return fmt.Errorf("failed to load chain %d: %w", chainID, err)
		}
	}

	return nil
}

func (r *FileRepository) loadChain(chainID uint64) error {
	dir := r.chainDir(chainID)
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}

	byName := make(map[string]*models.Artifact, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		var artifact models.Artifact
		if err := json.Unmarshal(data, &artifact); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(file), err)
		}
		if artifact.Name == "" {
			artifact.Name = strings.TrimSuffix(filepath.Base(file), ".json")
		}
		artifact.ChainID = chainID
		byName[artifact.Name] = &artifact
	}
	r.artifacts[chainID] = byName
	return nil
}

// GetArtifact returns a copy of the artifact, or an ArtifactNotFoundError with close matches
func (r *FileRepository) GetArtifact(ctx context.Context, chainID uint64, name string) (*models.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artifact, ok := r.artifacts[chainID][name]
	if !ok {
		return nil, &domain.ArtifactNotFoundError{
			Name:        name,
			ChainID:     chainID,
			Suggestions: r.suggest(chainID, name),
		}
	}

	copied := *artifact
	return &copied, nil
}

// ListArtifacts returns copies of all artifacts of a chain sorted by name
func (r *FileRepository) ListArtifacts(ctx context.Context, chainID uint64) ([]*models.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Artifact, 0, len(r.artifacts[chainID]))
	for _, artifact := range r.artifacts[chainID] {
		copied := *artifact
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// SaveArtifact writes the artifact, superseding any previous one with the same name
func (r *FileRepository) SaveArtifact(ctx context.Context, artifact *models.Artifact) error {
	if artifact.Name == "" {
		return fmt.Errorf("artifact name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := r.chainDir(artifact.ChainID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create chain directory: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, ChainIDFile), []byte(strconv.FormatUint(artifact.ChainID, 10))); err != nil {
		return fmt.Errorf("failed to write chain ID marker: %w", err)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}
	if err := writeFileAtomic(r.artifactPath(artifact.ChainID, artifact.Name), data); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	if r.artifacts[artifact.ChainID] == nil {
		r.artifacts[artifact.ChainID] = make(map[string]*models.Artifact)
	}
	copied := *artifact
	copied.Reused = false
	r.artifacts[artifact.ChainID][artifact.Name] = &copied

	return nil
}

// DeleteArtifact removes an artifact
func (r *FileRepository) DeleteArtifact(ctx context.Context, chainID uint64, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.artifacts[chainID][name]; !ok {
		return &domain.ArtifactNotFoundError{Name: name, ChainID: chainID}
	}

	if err := os.Remove(r.artifactPath(chainID, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove artifact file: %w", err)
	}
	delete(r.artifacts[chainID], name)

	return nil
}

// suggest returns names on the chain that fuzzily match name. Caller holds the lock.
func (r *FileRepository) suggest(chainID uint64, name string) []string {
	names := make([]string, 0, len(r.artifacts[chainID]))
	for n := range r.artifacts[chainID] {
		names = append(names, n)
	}
	sort.Strings(names)

	matches := fuzzy.Find(name, names)
	suggestions := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}

func (r *FileRepository) chainDir(chainID uint64) string {
	return filepath.Join(r.rootDir, strconv.FormatUint(chainID, 10))
}

func (r *FileRepository) artifactPath(chainID uint64, name string) string {
	return filepath.Join(r.chainDir(chainID), name+".json")
}

// writeFileAtomic writes to a temp file first, then renames it over path
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// Ensure the repository implements the interface
var _ usecase.ArtifactStore = (*FileRepository)(nil)
