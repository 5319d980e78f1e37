package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain/models"
	"github.com/trebuchet-org/rsvg-deploy/internal/usecase"
)

// ArtifactsRenderer renders the artifacts of a chain
type ArtifactsRenderer struct {
	out  io.Writer
	json bool
}

// NewArtifactsRenderer creates a new artifacts renderer
func NewArtifactsRenderer(out io.Writer, jsonOutput bool) *ArtifactsRenderer {
	return &ArtifactsRenderer{out: out, json: jsonOutput}
}

// Render writes the artifacts as a table
func (r *ArtifactsRenderer) Render(result *usecase.ArtifactListResult) error {
	if r.json {
		return writeJSON(r.out, result.Artifacts)
	}

	if len(result.Artifacts) == 0 {
		fmt.Fprintf(r.out, "No artifacts on %s\n", networkLabel(result.Class, result.ChainID))
		return nil
	}

	headerColor.Fprintf(r.out, "Artifacts on %s\n\n", networkLabel(result.Class, result.ChainID))

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
		{Number: 4, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"NAME", "ADDRESS", "TX", "BLOCK"})
	for _, artifact := range result.Artifacts {
		t.AppendRow(table.Row{
			nameColor.Sprint(artifact.Name),
			artifact.Address.Hex(),
			shortHash(artifact.TransactionHash.Hex()),
			artifact.BlockNumber,
		})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

// ArtifactRenderer renders a single artifact in detail
type ArtifactRenderer struct {
	out  io.Writer
	json bool
}

// NewArtifactRenderer creates a new artifact renderer
func NewArtifactRenderer(out io.Writer, jsonOutput bool) *ArtifactRenderer {
	return &ArtifactRenderer{out: out, json: jsonOutput}
}

// Render writes the artifact details
func (r *ArtifactRenderer) Render(artifact *models.Artifact) error {
	if r.json {
		return writeJSON(r.out, artifact)
	}

	headerColor.Fprintf(r.out, "Artifact: %s\n", artifact.Name)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintf(r.out, "  Contract:    %s\n", nameColor.Sprint(artifact.ContractName))
	fmt.Fprintf(r.out, "  Chain:       %d\n", artifact.ChainID)
	fmt.Fprintf(r.out, "  Address:     %s\n", artifact.Address.Hex())
	fmt.Fprintf(r.out, "  Transaction: %s\n", artifact.TransactionHash.Hex())
	if artifact.BlockNumber > 0 {
		fmt.Fprintf(r.out, "  Block:       %d\n", artifact.BlockNumber)
	}
	fmt.Fprintf(r.out, "  Deployer:    %s\n", formatAddress(artifact.Deployer))
	if len(artifact.Args) > 0 {
		fmt.Fprintf(r.out, "  Args:        %s\n", strings.Join(artifact.Args, ", "))
	}
	if !artifact.DeployedAt.IsZero() {
		fmt.Fprintf(r.out, "  Deployed:    %s\n", artifact.DeployedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

var (
	_ Renderer[*usecase.ArtifactListResult] = (*ArtifactsRenderer)(nil)
	_ Renderer[*models.Artifact]            = (*ArtifactRenderer)(nil)
)
