package liveaddr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/config"
)

const rinkeby = `version: 1
networks:
  "4":
    linkToken: "0x01be23585060835e02b77ef475b0cc51aa1e0709"
    vrfCoordinator: "0xb3dccb4cf7a26f6cf6b120cf5a73875b7bbc655b"
`

func TestParse(t *testing.T) {
	book, err := Parse([]byte(rinkeby))
	require.NoError(t, err)

	addrs, ok := book.Lookup(4)
	require.True(t, ok)
	assert.Equal(t, common.HexToAddress("0x01be23585060835e02b77ef475b0cc51aa1e0709"), addrs.Token)
	assert.Equal(t, common.HexToAddress("0xb3dccb4cf7a26f6cf6b120cf5a73875b7bbc655b"), addrs.Coordinator)
	assert.Equal(t, []uint64{4}, book.ChainIDs())

	_, ok = book.Lookup(1)
	assert.False(t, ok)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing version",
			data: "networks: {}\n",
		},
		{
			name: "unsupported version",
			data: "version: 2\nnetworks: {}\n",
		},
		{
			name: "bad address",
			data: "version: 1\nnetworks:\n  \"4\":\n    linkToken: \"0x1234\"\n    vrfCoordinator: \"0xb3dccb4cf7a26f6cf6b120cf5a73875b7bbc655b\"\n",
		},
		{
			name: "missing coordinator",
			data: "version: 1\nnetworks:\n  \"4\":\n    linkToken: \"0x01be23585060835e02b77ef475b0cc51aa1e0709\"\n",
		},
		{
			name: "non numeric chain",
			data: "version: 1\nnetworks:\n  rinkeby:\n    linkToken: \"0x01be23585060835e02b77ef475b0cc51aa1e0709\"\n    vrfCoordinator: \"0xb3dccb4cf7a26f6cf6b120cf5a73875b7bbc655b\"\n",
		},
		{
			name: "local chain",
			data: "version: 1\nnetworks:\n  \"31337\":\n    linkToken: \"0x01be23585060835e02b77ef475b0cc51aa1e0709\"\n    vrfCoordinator: \"0xb3dccb4cf7a26f6cf6b120cf5a73875b7bbc655b\"\n",
		},
		{
			name: "zero token",
			data: "version: 1\nnetworks:\n  \"4\":\n    linkToken: \"0x0000000000000000000000000000000000000000\"\n    vrfCoordinator: \"0xb3dccb4cf7a26f6cf6b120cf5a73875b7bbc655b\"\n",
		},
		{
			name: "not yaml",
			data: "version: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrInvalidAddressBook)
			assert.Nil(t, book)
		})
	}
}

func TestParse_MalformedEntryNeverResolves(t *testing.T) {
	data := "version: 1\nnetworks:\n  \"4\":\n    linkToken: \"not-an-address\"\n"

	book, err := Parse([]byte(data))
	require.ErrorIs(t, err, domain.ErrInvalidAddressBook)
	assert.Contains(t, err.Error(), "chain 4")
	assert.Nil(t, book)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is an empty book", func(t *testing.T) {
		book, err := Load(filepath.Join(dir, "missing.yaml"))
		require.NoError(t, err)
		assert.Empty(t, book.ChainIDs())
	})

	t.Run("reads the configured path", func(t *testing.T) {
		path := filepath.Join(dir, "live-addresses.yaml")
		require.NoError(t, os.WriteFile(path, []byte(rinkeby), 0644))

		book, err := NewBook(&config.RuntimeConfig{AddressBookPath: path})
		require.NoError(t, err)
		_, ok := book.Lookup(4)
		assert.True(t, ok)
	})

	t.Run("no path is an empty book", func(t *testing.T) {
		book, err := NewBook(&config.RuntimeConfig{})
		require.NoError(t, err)
		_, ok := book.Lookup(4)
		assert.False(t, ok)
	})
}
