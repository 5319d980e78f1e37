package models

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifact_ArgsEqual(t *testing.T) {
	a := &Artifact{Args: []string{"0xAbC0000000000000000000000000000000000001"}}

	assert.True(t, a.ArgsEqual([]string{"0xabc0000000000000000000000000000000000001"}))
	assert.False(t, a.ArgsEqual([]string{"0xabc0000000000000000000000000000000000002"}))
	assert.False(t, a.ArgsEqual(nil))
	assert.True(t, (&Artifact{}).ArgsEqual([]string{}))
}

func TestArtifact_ReusedIsNotPersisted(t *testing.T) {
	a := Artifact{
		Name:    "LinkToken",
		ChainID: 31337,
		Address: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		Reused:  true,
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "reused")
	assert.Contains(t, string(data), `"chainId":31337`)
}

func TestDependencyAddresses_ConstructorArgs(t *testing.T) {
	d := DependencyAddresses{
		Token:       common.HexToAddress("0x01"),
		Coordinator: common.HexToAddress("0x02"),
	}
	assert.Equal(t, []any{d.Token, d.Coordinator}, d.ConstructorArgs())
}
