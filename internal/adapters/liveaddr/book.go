package liveaddr

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the only supported live address table version
const FormatVersion = 1

// File is the on-disk layout of the live address table
type File struct {
	Version  int              `yaml:"version" validate:"required,eq=1"`
	Networks map[string]Entry `yaml:"networks" validate:"dive,keys,numeric,endkeys"`
}

// Entry holds the dependency addresses of one live chain
type Entry struct {
	LinkToken      string `yaml:"linkToken" validate:"required,eth_addr"`
	VRFCoordinator string `yaml:"vrfCoordinator" validate:"required,eth_addr"`
}

// Book is a read-only table of live dependency addresses keyed by chain ID
type Book struct {
	entries map[uint64]models.DependencyAddresses
}

// NewBook loads the table from the configured path. A missing file yields an empty book.
func NewBook(cfg *config.RuntimeConfig) (*Book, error) {
	if cfg.AddressBookPath == "" {
		return &Book{entries: map[uint64]models.DependencyAddresses{}}, nil
	}
	return Load(cfg.AddressBookPath)
}

// Load reads and validates the table at path
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Book{entries: map[uint64]models.DependencyAddresses{}}, nil
		}
		return nil, fmt.Errorf("failed to read live address book: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML live address table
func Parse(data []byte) (*Book, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAddressBook, err)
	}

	validate := validator.New()
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAddressBook, err)
	}

	book := &Book{entries: make(map[uint64]models.DependencyAddresses, len(file.Networks))}
	for key, entry := range file.Networks {
		chainID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid chain ID %q", domain.ErrInvalidAddressBook, key)
		}
		if domain.ClassifyNetwork(chainID).IsLocal() {
			return nil, fmt.Errorf("%w: chain %d is the local network and uses mocks", domain.ErrInvalidAddressBook, chainID)
		}
		// Map values are not reached by dive on the keys
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("%w: chain %d: %v", domain.ErrInvalidAddressBook, chainID, err)
		}
		addrs := models.DependencyAddresses{
			Token:       common.HexToAddress(entry.LinkToken),
			Coordinator: common.HexToAddress(entry.VRFCoordinator),
		}
		if addrs.Token == (common.Address{}) || addrs.Coordinator == (common.Address{}) {
			return nil, fmt.Errorf("%w: chain %d has a zero address", domain.ErrInvalidAddressBook, chainID)
		}
		book.entries[chainID] = addrs
	}

	return book, nil
}

// Lookup returns the addresses configured for chainID
func (b *Book) Lookup(chainID uint64) (*models.DependencyAddresses, bool) {
	entry, ok := b.entries[chainID]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// ChainIDs returns the chains with configured addresses
func (b *Book) ChainIDs() []uint64 {
	ids := make([]uint64, 0, len(b.entries))
	for id := range b.entries {
		ids = append(ids, id)
	}
	return ids
}

// Ensure the book implements the interface
var _ usecase.LiveAddressBook = (*Book)(nil)
