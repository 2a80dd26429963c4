package directory

import (
	"regexp"
	"strings"

	"github.com/jcsullivan216/dowdirectory/internal/fields"
	"github.com/jcsullivan216/dowdirectory/internal/patterns"
)

// HeaderType identifies which hierarchy level a header line establishes.
type HeaderType string

const (
	HeaderService HeaderType = "Service"
	HeaderPAE     HeaderType = "PAE"
	HeaderCPE     HeaderType = "CPE"
	HeaderPEO     HeaderType = "PEO"
	HeaderPM      HeaderType = "PM"
)

// Header is a classified section-header line.
type Header struct {
	Type   HeaderType
	Name   string
	Abbrev string
}

// Label returns the value stored into the hierarchy context and emitted on
// relationship edges: the abbreviation when one was extracted, else the name.
func (h Header) Label() string {
	if h.Abbrev != "" {
		return h.Abbrev
	}
	return h.Name
}

var (
	paeLeadPattern    = regexp.MustCompile(`^PAE\b`)
	cpePeoLeadPattern = regexp.MustCompile(`^(?:CPE|PEO)\b`)
	pmLeadPattern     = regexp.MustCompile(`(?i)^(?:PM|Program Manager|Product Manager)\b`)
)

// ClassifyHeader decides whether a trimmed line is a section header, trying
// the levels in fixed order: PAE, CPE/PEO, PM, then service. A service match
// is only accepted when the line is shorter than serviceMaxLen runes, so
// body prose that merely mentions a service is not mistaken for a heading.
// The second return value is false for body text.
func ClassifyHeader(line string, serviceMaxLen int) (Header, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Header{}, false
	}

	if strings.Contains(line, "Portfolio Acquisition Executive") || paeLeadPattern.MatchString(line) {
		return orgHeader(HeaderPAE, line), true
	}

	if strings.Contains(line, "Capability Program Executive") ||
		strings.Contains(line, "Program Executive Offic") ||
		cpePeoLeadPattern.MatchString(line) {
		typ := HeaderPEO
		if strings.Contains(line, "CPE") || strings.Contains(line, "Capability") {
			typ = HeaderCPE
		}
		return orgHeader(typ, line), true
	}

	if pmLeadPattern.MatchString(line) {
		return orgHeader(HeaderPM, line), true
	}

	if service := patterns.DetectService(line); service != "" && len(line) < serviceMaxLen {
		return Header{Type: HeaderService, Name: service}, true
	}

	return Header{}, false
}

func orgHeader(typ HeaderType, line string) Header {
	name, abbrev := fields.ExtractOrganizationInfo(line)
	if name == "" {
		name = line
	}
	return Header{Type: typ, Name: name, Abbrev: abbrev}
}
