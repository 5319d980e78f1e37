package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
)

// StepFunc runs one deployment step against an explicit environment
type StepFunc func(ctx context.Context, env *Environment) error

// Step is a named deployment step with its selection tags
type Step struct {
	Name string
	Tags []string
	Run  StepFunc
}

// Steps is an ordered list of deployment steps
type Steps []Step

// Select returns the steps, in order, that carry at least one of tags.
// No tags selects the steps tagged "all".
func (s Steps) Select(tags []string) (Steps, error) {
	tags = lo.Uniq(lo.Compact(lo.Map(tags, func(t string, _ int) string {
		return strings.TrimSpace(t)
	})))
	if len(tags) == 0 {
		tags = []string{domain.TagAll}
	}

	selected := lo.Filter(s, func(step Step, _ int) bool {
		return len(lo.Intersect(step.Tags, tags)) > 0
	})
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoStepsSelected, strings.Join(tags, ", "))
	}
	return selected, nil
}

// Names returns the step names in order
func (s Steps) Names() []string {
	return lo.Map(s, func(step Step, _ int) string { return step.Name })
}

// Step names
const (
	StepDeployMocks     = "00_deploy_mocks"
	StepDeployRandomSVG = "01_deploy_random_svg"
)

// NewDefaultSteps registers the mock and RandomSVG steps
func NewDefaultSteps(mocks *ProvisionMocks, resolve *ResolveDependencies, dependent *DeployDependent) Steps {
	return Steps{
		{
			Name: StepDeployMocks,
			Tags: []string{domain.TagAll, domain.TagMocks, domain.TagRSVG, domain.TagSVG},
			Run: func(ctx context.Context, env *Environment) error {
				if !env.Class.IsLocal() {
					env.Logger.Debug("skipping mocks on live network", "chainId", env.ChainID)
					env.Result.Advance(domain.StateSkipped)
					return nil
				}
				set, err := mocks.Run(ctx, env)
				if err != nil {
					return err
				}
				env.Result.Mocks = set
				env.Result.Advance(domain.StateMocksProvisioned)
				return nil
			},
		},
		{
			Name: StepDeployRandomSVG,
			Tags: []string{domain.TagAll, domain.TagRSVG, domain.TagSVG},
			Run: func(ctx context.Context, env *Environment) error {
				deps, err := resolve.Run(ctx, env.Class, env)
				if err != nil {
					return err
				}
				env.Result.Dependencies = deps
				env.Result.Advance(domain.StateResolved)

				artifact, err := dependent.Run(ctx, *deps, env)
				if err != nil {
					return err
				}
				env.Result.Dependent = artifact
				env.Result.Advance(domain.StateDependentDeployed)
				return nil
			},
		},
	}
}
