package domain

// RunState is a stage of a deployment run
type RunState string

const (
	StateStart             RunState = "start"
	StateClassified        RunState = "classified"
	StateMocksProvisioned  RunState = "mocks_provisioned"
	StateSkipped           RunState = "skipped"
	StateResolved          RunState = "resolved"
	StateDependentDeployed RunState = "dependent_deployed"
	StateDone              RunState = "done"
	StateFailed            RunState = "failed"
)

// IsTerminal reports whether no further transition can happen
func (s RunState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// Selection tags shared by the deployment steps
const (
	TagAll   = "all"
	TagMocks = "mocks"
	TagRSVG  = "rsvg"
	TagSVG   = "svg"
)

// Artifact names
const (
	LinkTokenName          = "LinkToken"
	VRFCoordinatorMockName = "VRFCoordinatorMock"
	RandomSVGName          = "RandomSVG"
)
