package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var le *domain.LengthError
	if errors.As(err, &le) {
		return fmt.Sprintf("%s must be %d bp (got %d)", strandLabel(le.Strand), domain.SiteLength, le.Got)
	}
	var ae *domain.AlphabetError
	if errors.As(err, &ae) {
		return fmt.Sprintf("%s contains non-DNA characters (%q at %d)", strandLabel(ae.Strand), ae.Char, ae.Pos)
	}
	var ce *domain.CoreMismatchError
	if errors.As(err, &ce) {
		return fmt.Sprintf("Target and donor cores differ (%s vs %s)", ce.TargetCore, ce.DonorCore)
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlbatch") {
				return "Batch file not found"
			}
			if strings.Contains(oe.Op, "designstore") {
				return "Design not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			if oe.Op == "designstore.list" {
				return "Some saved designs could not be read (see logs)"
			}
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + base + ": " + field
			}
			return "Invalid config"

		case domain.KindInvalidInput:
			return "Invalid input"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func strandLabel(s domain.Strand) string {
	if s == domain.StrandDonor {
		return "Donor"
	}
	return "Target"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// extractField pulls "pairs[1].donor: required" out of "... field pairs[1].donor: required: ...".
func extractField(s string) string {
	i := strings.Index(s, "field ")
	if i < 0 {
		return ""
	}
	rest := s[i+len("field "):]
	parts := strings.SplitN(rest, ": ", 3)
	if len(parts) < 2 {
		return strings.TrimSpace(rest)
	}
	return parts[0] + ": " + parts[1]
}
