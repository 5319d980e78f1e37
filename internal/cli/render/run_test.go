package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

func localRunResult() *usecase.RunResult {
	token := &models.Artifact{Name: "LinkToken", Address: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), Reused: true}
	coordinator := &models.Artifact{Name: "VRFCoordinatorMock", Address: common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")}
	svg := &models.Artifact{Name: "RandomSVG", Address: common.HexToAddress("0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0")}

	result := usecase.NewRunResult(31337)
	result.Class = domain.NetworkLocal
	for _, s := range []domain.RunState{domain.StateClassified, domain.StateMocksProvisioned, domain.StateResolved, domain.StateDependentDeployed, domain.StateDone} {
		result.Advance(s)
	}
	result.ExecutedSteps = []string{usecase.StepDeployMocks, usecase.StepDeployRandomSVG}
	result.Mocks = &usecase.MockSet{Token: token, Coordinator: coordinator}
	result.Dependencies = &models.DependencyAddresses{Token: token.Address, Coordinator: coordinator.Address}
	result.Dependent = svg
	return result
}

func TestRunRenderer_Text(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, NewRunRenderer(&buf, false).Render(localRunResult()))

	out := buf.String()
	assert.Contains(t, out, "Network: Local (31337)")
	assert.Contains(t, out, "State:   Done")
	assert.Contains(t, out, "Steps:   00_deploy_mocks, 01_deploy_random_svg")
	assert.Contains(t, out, "0x5FbDB2315678afecb367f032d93F642f64180aa3  reused")
	assert.Contains(t, out, "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0  deployed")
	assert.NotContains(t, out, "Failed:")
}

func TestRunRenderer_Failed(t *testing.T) {
	color.NoColor = true

	result := usecase.NewRunResult(1)
	result.Class = domain.NetworkLive
	result.Advance(domain.StateClassified)
	result.Advance(domain.StateSkipped)
	result.ExecutedSteps = []string{usecase.StepDeployMocks}
	result.FailedStep = usecase.StepDeployRandomSVG
	result.Advance(domain.StateFailed)

	var buf bytes.Buffer
	require.NoError(t, NewRunRenderer(&buf, false).Render(result))

	out := buf.String()
	assert.Contains(t, out, "Network: Live (1)")
	assert.Contains(t, out, "State:   Failed")
	assert.Contains(t, out, "Failed:  01_deploy_random_svg")
	assert.NotContains(t, out, "Artifacts")
}

func TestRunRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRunRenderer(&buf, true).Render(localRunResult()))

	var decoded struct {
		ChainID     uint64   `json:"chainId"`
		Network     string   `json:"network"`
		State       string   `json:"state"`
		Transitions []string `json:"transitions"`
		Artifacts   []struct {
			Name string `json:"name"`
		} `json:"artifacts"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, uint64(31337), decoded.ChainID)
	assert.Equal(t, "local", decoded.Network)
	assert.Equal(t, "done", decoded.State)
	assert.Len(t, decoded.Transitions, 6)
	require.Len(t, decoded.Artifacts, 3)
	assert.Equal(t, "VRFCoordinatorMock", decoded.Artifacts[1].Name)
	assert.Equal(t, "0x5fbdb2315678afecb367f032d93f642f64180aa3", decoded.Dependencies["linkToken"])
}

func TestRunRenderer_NilResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRunRenderer(&buf, false).Render(nil))
	assert.Empty(t, buf.String())
}
