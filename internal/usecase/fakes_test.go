package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// memStore is an in-memory ArtifactStore
type memStore struct {
	mu        sync.Mutex
	artifacts map[uint64]map[string]*models.Artifact
}

func newMemStore() *memStore {
	return &memStore{artifacts: make(map[uint64]map[string]*models.Artifact)}
}

func (s *memStore) GetArtifact(ctx context.Context, chainID uint64, name string) (*models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.artifacts[chainID][name]
	if !ok {
		return nil, &domain.ArtifactNotFoundError{Name: name, ChainID: chainID}
	}
	copied := *a
	return &copied, nil
}

func (s *memStore) ListArtifacts(ctx context.Context, chainID uint64) ([]*models.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Artifact
	for _, a := range s.artifacts[chainID] {
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) SaveArtifact(ctx context.Context, artifact *models.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.artifacts[artifact.ChainID] == nil {
		s.artifacts[artifact.ChainID] = make(map[string]*models.Artifact)
	}
	copied := *artifact
	copied.Reused = false
	s.artifacts[artifact.ChainID][artifact.Name] = &copied
	return nil
}

func (s *memStore) DeleteArtifact(ctx context.Context, chainID uint64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artifacts[chainID][name]; !ok {
		return &domain.ArtifactNotFoundError{Name: name, ChainID: chainID}
	}
	delete(s.artifacts[chainID], name)
	return nil
}

// fakeChain deploys contracts at sequential addresses and remembers which have code
type fakeChain struct {
	chainID  uint64
	from     common.Address
	next     int64
	requests []usecase.DeployRequest
	code     map[common.Address]bool
	failOn   map[string]error
}

func newFakeChain(chainID uint64) *fakeChain {
	return &fakeChain{
		chainID: chainID,
		from:    common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		next:    0x1000,
		code:    make(map[common.Address]bool),
		failOn:  make(map[string]error),
	}
}

func (c *fakeChain) ChainID(ctx context.Context) (uint64, error) {
	return c.chainID, nil
}

func (c *fakeChain) HasCode(ctx context.Context, address common.Address) (bool, error) {
	return c.code[address], nil
}

func (c *fakeChain) DeployerAddress(ctx context.Context) (common.Address, error) {
	return c.from, nil
}

func (c *fakeChain) Deploy(ctx context.Context, req usecase.DeployRequest) (*usecase.DeployReceipt, error) {
	c.requests = append(c.requests, req)
	if err, ok := c.failOn[req.ContractName]; ok {
		return nil, err
	}

	c.next++
	addr := common.BigToAddress(big.NewInt(c.next))
	c.code[addr] = true

	return &usecase.DeployReceipt{
		Address:         addr,
		TransactionHash: common.BigToHash(big.NewInt(c.next)),
		BlockNumber:     uint64(len(c.requests)),
	}, nil
}

// deployed returns the contract names in deployment order
func (c *fakeChain) deployed() []string {
	names := make([]string, 0, len(c.requests))
	for _, req := range c.requests {
		names = append(names, req.ContractName)
	}
	return names
}

// staticBook is a map-backed LiveAddressBook
type staticBook map[uint64]models.DependencyAddresses

func (b staticBook) Lookup(chainID uint64) (*models.DependencyAddresses, bool) {
	addrs, ok := b[chainID]
	if !ok {
		return nil, false
	}
	return &addrs, true
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  { m.infos = append(m.infos, message) }
func (m *MockProgressSink) Error(message string) { m.errors = append(m.errors, message) }

func (m *MockProgressSink) stages() []string {
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Stage)
	}
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEnv builds an environment for calling the step use cases directly
func newEnv(chain *fakeChain, store *memStore, book usecase.LiveAddressBook, force bool) (*usecase.Environment, *MockProgressSink) {
	progress := &MockProgressSink{}
	log := discardLogger()
	return &usecase.Environment{
		ChainID:     chain.chainID,
		Class:       domain.ClassifyNetwork(chain.chainID),
		Deployer:    chain.from,
		Deployments: usecase.NewDeployments(chain.chainID, chain.from, force, store, chain, chain, progress, log),
		AddressBook: book,
		Progress:    progress,
		Logger:      log,
		Result:      usecase.NewRunResult(chain.chainID),
	}, progress
}

func addr(n int64) common.Address {
	return common.BigToAddress(big.NewInt(n))
}

var errBoom = fmt.Errorf("boom")
