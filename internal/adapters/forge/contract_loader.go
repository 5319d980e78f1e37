package forge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

// CompiledContract is a contract ready to be deployed
type CompiledContract struct {
	Name     string
	ABI      abi.ABI
	RawABI   json.RawMessage
	Bytecode []byte
}

// bytecodeObject represents bytecode information in a Foundry artifact
type bytecodeObject struct {
	Object         string         `json:"object"`
	LinkReferences map[string]any `json:"linkReferences"`
}

// foundryArtifact is the part of out/<File>.sol/<Name>.json needed for deployment
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode bytecodeObject  `json:"bytecode"`
}

// ContractLoader reads compiled contracts from the Foundry out directory
type ContractLoader struct {
	outDir string
	mu     sync.Mutex
	cache  map[string]*CompiledContract
}

// NewContractLoader creates a loader for the configured out directory
func NewContractLoader(cfg *config.RuntimeConfig) *ContractLoader {
	return NewContractLoaderAt(cfg.OutDir)
}

// NewContractLoaderAt creates a loader for outDir
func NewContractLoaderAt(outDir string) *ContractLoader {
	return &ContractLoader{
		outDir: outDir,
		cache:  make(map[string]*CompiledContract),
	}
}

// Load returns the compiled contract named name
func (l *ContractLoader) Load(name string) (*CompiledContract, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if compiled, ok := l.cache[name]; ok {
		return compiled, nil
	}

	path, err := l.findArtifact(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact for %s: %w", name, err)
	}

	compiled, err := parseArtifact(name, data)
	if err != nil {
		return nil, err
	}

	l.cache[name] = compiled
	return compiled, nil
}

// findArtifact looks at out/<Name>.sol/<Name>.json first, then any out/*/<Name>.json
func (l *ContractLoader) findArtifact(name string) (string, error) {
	direct := filepath.Join(l.outDir, name+".sol", name+".json")
	if _, err := os.Stat(direct); err == nil {
		return direct, nil
	}

	matches, err := filepath.Glob(filepath.Join(l.outDir, "*", name+".json"))
	if err != nil {
		return "", fmt.Errorf("failed to search artifacts: %w", err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no compiled artifact for %s in %s (did you run forge build?)", name, l.outDir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple compiled artifacts for %s: %s", name, strings.Join(matches, ", "))
	}
}

// parseArtifact decodes the ABI and creation bytecode of a Foundry artifact
func parseArtifact(name string, data []byte) (*CompiledContract, error) {
	var artifact foundryArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact for %s: %w", name, err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(string(artifact.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI for %s: %w", name, err)
	}

	if len(artifact.Bytecode.LinkReferences) > 0 {
		return nil, fmt.Errorf("%s requires linked libraries, which are not supported", name)
	}

	object := artifact.Bytecode.Object
	if !strings.HasPrefix(object, "0x") {
		object = "0x" + object
	}
	bytecode, err := hexutil.Decode(object)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytecode for %s: %w", name, err)
	}
	if len(bytecode) == 0 {
		return nil, fmt.Errorf("%s has no creation bytecode (abstract contract or interface?)", name)
	}

	return &CompiledContract{
		Name:     name,
		ABI:      parsedABI,
		RawABI:   artifact.ABI,
		Bytecode: bytecode,
	}, nil
}
