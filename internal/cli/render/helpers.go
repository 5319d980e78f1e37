package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/trebuchet-org/rsvg-deploy/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	nameColor   = color.New(color.FgYellow)
	labelColor  = color.New(color.FgWhite, color.Faint)
)

// networkLabel renders "Local (31337)" or "Live (1)"
func networkLabel(class domain.NetworkClass, chainID uint64) string {
	title := cases.Title(language.English).String(class.String())
	c := color.New(color.FgGreen)
	if !class.IsLocal() {
		c = color.New(color.FgMagenta, color.Bold)
	}
	return fmt.Sprintf("%s (%d)", c.Sprint(title), chainID)
}

// shortHash abbreviates a hash or address for table output
func shortHash(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:8] + "…" + s[len(s)-4:]
}

func formatAddress(addr common.Address) string {
	if addr == (common.Address{}) {
		return "-"
	}
	return addr.Hex()
}

func stateLabel(state domain.RunState) string {
	title := cases.Title(language.English).String(strings.ReplaceAll(string(state), "_", " "))
	switch state {
	case domain.StateDone:
		return color.New(color.FgGreen, color.Bold).Sprint(title)
	case domain.StateFailed:
		return color.New(color.FgRed, color.Bold).Sprint(title)
	default:
		return color.New(color.FgYellow).Sprint(title)
	}
}

// writeJSON writes v as indented JSON
func writeJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
