// Package fields pulls single typed values out of directory text fragments.
// Every extractor returns zero values on no-match; for most lines that is
// the expected outcome, not an error.
package fields

import (
	"regexp"
	"strings"

	"github.com/jcsullivan216/dowdirectory/internal/patterns"
)

// rankNamePattern matches a rank or civilian title followed by a capitalized
// name (First [M.] Last, optional generational suffix). Rank alternatives
// keep the table order from the patterns package; matching is case-sensitive
// because rank abbreviations are.
var rankNamePattern = regexp.MustCompile(
	`(` + rankAlternation() + `)\.?\s+([A-Z][a-z]+(?:\s+[A-Z]\.?)?\s+[A-Z][a-z]+(?:\s+(?:Jr\.|Sr\.|III|IV|II))?)`,
)

// namePattern is the bare-name fallback when no rank/title is present.
var namePattern = regexp.MustCompile(
	`\b([A-Z][a-z]+(?:\s+[A-Z]\.?)?\s+[A-Z][a-z]+(?:\s+(?:Jr\.|Sr\.|III|IV|II))?)\b`,
)

func rankAlternation() string {
	all := append(append([]string{}, patterns.MilitaryRanks...), patterns.CivilianTitles...)
	quoted := make([]string, len(all))
	for i, r := range all {
		quoted[i] = regexp.QuoteMeta(r)
	}
	return strings.Join(quoted, "|")
}

// ExtractRankAndName finds a rank/title plus name in text, falling back to a
// bare capitalized name. Both return values are empty when neither pattern
// matches.
func ExtractRankAndName(text string) (rank, name string) {
	if m := rankNamePattern.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(m[2])
	}
	if m := namePattern.FindStringSubmatch(text); m != nil {
		return "", m[1]
	}
	return "", ""
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmail returns the first email address in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// phonePatterns is ordered: standard, DSN, then dash/space variants.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`DSN\s*:?\s*\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
}

// ExtractPhone returns the first phone number in text, or "".
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// locationPatterns lists named installations in fixed order; the first hit
// wins, with no ranking beyond list position.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Fort|Ft\.?)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`),
	regexp.MustCompile(`(?i)(?:Camp)\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?`),
	regexp.MustCompile(`(?i)Pentagon`),
	regexp.MustCompile(`(?i)Crystal City`),
	regexp.MustCompile(`(?i)Redstone Arsenal`),
	regexp.MustCompile(`(?i)Aberdeen Proving Ground`),
	regexp.MustCompile(`(?i)Picatinny Arsenal`),
	regexp.MustCompile(`(?i)Rock Island Arsenal`),
	regexp.MustCompile(`(?i)Huntsville,?\s*AL`),
	regexp.MustCompile(`(?i)Warren,?\s*MI`),
	regexp.MustCompile(`(?i)Detroit Arsenal`),
	regexp.MustCompile(`(?i)San Diego,?\s*CA`),
	regexp.MustCompile(`(?i)Norfolk,?\s*VA`),
	regexp.MustCompile(`(?i)Point Mugu`),
	regexp.MustCompile(`(?i)China Lake`),
	regexp.MustCompile(`(?i)Patuxent River`),
	regexp.MustCompile(`(?i)Wright-Patterson`),
	regexp.MustCompile(`(?i)Hanscom`),
	regexp.MustCompile(`(?i)Eglin`),
	regexp.MustCompile(`(?i)Hill AFB`),
	regexp.MustCompile(`(?i)Tinker AFB`),
	regexp.MustCompile(`(?i)Robins AFB`),
	regexp.MustCompile(`(?i)Quantico`),
	regexp.MustCompile(`(?i)Joint Base\s+[A-Za-z-]+`),
	regexp.MustCompile(`(?i)Naval (?:Air Station|Base|Station)\s+[A-Za-z]+`),
}

// ExtractLocation returns the first named installation found in text, or "".
func ExtractLocation(text string) string {
	for _, re := range locationPatterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

var (
	orgWithAbbrevPattern = regexp.MustCompile(`([A-Z][A-Za-z\s,&-]+?)\s*\(([A-Z][A-Z0-9/-]+)\)`)
	bareAbbrevPattern    = regexp.MustCompile(`\b([A-Z]{2,}(?:\s+[A-Z]{2,})?(?:-[A-Z]+)?)\b`)
)

// ExtractOrganizationInfo returns an organization name and abbreviation from
// text. It prefers the "Name (ABBREV)" form; otherwise a bare multi-letter
// acronym yields an abbreviation with no name. Either value may be empty.
func ExtractOrganizationInfo(text string) (name, abbrev string) {
	if m := orgWithAbbrevPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), m[2]
	}
	if m := bareAbbrevPattern.FindStringSubmatch(text); m != nil {
		return "", m[1]
	}
	return "", ""
}

// positionPatterns is the ordered list of position-title phrases; the first
// match becomes the record's position.
var positionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Portfolio Acquisition Executive)`),
	regexp.MustCompile(`(?i)(Capability Program Executive)`),
	regexp.MustCompile(`(?i)(Program Executive Officer)`),
	regexp.MustCompile(`(?i)(Program Manager)`),
	regexp.MustCompile(`(?i)(Deputy Program Manager)`),
	regexp.MustCompile(`(?i)(Product Manager)`),
	regexp.MustCompile(`(?i)(Project Manager)`),
	regexp.MustCompile(`(?i)(Director[,\s]+[A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(Chief[,\s]+[A-Za-z\s]+)`),
	regexp.MustCompile(`(?i)(Assistant Secretary[A-Za-z\s]*)`),
	regexp.MustCompile(`(?i)(Deputy Assistant Secretary[A-Za-z\s]*)`),
	regexp.MustCompile(`(?i)(Executive Director)`),
	regexp.MustCompile(`(?i)(Deputy Director)`),
	regexp.MustCompile(`(?i)(Commander)`),
	regexp.MustCompile(`(?i)(Deputy Commander)`),
}

// ExtractPosition returns the first position-title phrase found in text plus
// the organization-type label it maps to. Both are empty when no phrase
// matches.
func ExtractPosition(text string) (position, positionType string) {
	for _, re := range positionPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			position = m[1]
			return position, patterns.DetectOrgType(position)
		}
	}
	return "", ""
}
