// Package patterns holds the static classification tables the extraction
// engine matches directory text against. Everything here is stateless:
// compiled tables plus pure lookup functions.
//
// Service, organization-type and status tables are ordered and first-match
// wins. The order is load-bearing — longer phrases are listed before the
// bare acronyms they contain (e.g. "Portfolio Acquisition Executive" before
// "PAE"), so reordering entries changes classification results.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// MilitaryRanks lists recognized military rank abbreviations, grouped by
// grade. Order matters: the rank/name matcher tries alternatives in listed
// order.
var MilitaryRanks = []string{
	// General/flag officers
	"GEN", "LTG", "MG", "BG", // Army
	"ADM", "VADM", "RADM", "RDML", // Navy
	"Gen", "Lt Gen", "Maj Gen", "Brig Gen", // Air Force
	// Field grade
	"COL", "LTC", "MAJ",
	"CAPT", "CDR", "LCDR", // Navy
	"Col", "Lt Col", "Maj", // Air Force
	// Company grade
	"CPT", "1LT", "2LT",
	"LT", "LTJG", "ENS", // Navy
	"Capt", "1st Lt", "2nd Lt", // Air Force
	// Senior enlisted
	"CSM", "SGM", "1SG", "MSG",
	"MCPON", "MCPOC", "CMDCM",
	"CMSAF", "CMSgt",
}

// CivilianTitles lists recognized civilian title prefixes.
var CivilianTitles = []string{
	"SES", "SL", "ST", // Senior Executive Service
	"GS-15", "GS-14", "GS-13",
	"NH-IV", "NH-III", "NH-02", "NH-03", "NH-04",
	"Mr.", "Ms.", "Mrs.", "Dr.",
	"Hon.", "Honorable",
}

type labeled struct {
	re    *regexp.Regexp
	label string
}

// DefaultStatus is assumed when no status marker is present. The directory
// only annotates exceptions, so an unmarked entry means a confirmed
// appointment.
const DefaultStatus = "Confirmed"

var statusPatterns = []labeled{
	{regexp.MustCompile(`(?i)\(Acting\)`), "Acting"},
	{regexp.MustCompile(`(?i)\(PTDO\)`), "PTDO"},
	{regexp.MustCompile(`(?i)\bActing\b`), "Acting"},
	{regexp.MustCompile(`(?i)\bPTDO\b`), "PTDO"},
	{regexp.MustCompile(`(?i)\bNominated\b`), "Nominated"},
	{regexp.MustCompile(`(?i)\bDesignated\b`), "Designated"},
	{regexp.MustCompile(`(?i)\bInterim\b`), "Interim"},
	{regexp.MustCompile(`(?i)\bVacant\b`), "Vacant"},
}

var orgTypePatterns = []labeled{
	{regexp.MustCompile(`(?i)Portfolio Acquisition Executive`), "PAE"},
	{regexp.MustCompile(`(?i)\bPAE\b`), "PAE"},
	{regexp.MustCompile(`(?i)Capability Program Executive`), "CPE"},
	{regexp.MustCompile(`(?i)\bCPE\b`), "CPE"},
	{regexp.MustCompile(`(?i)Program Executive Offic`), "PEO"},
	{regexp.MustCompile(`(?i)\bPEO\b`), "PEO"},
	{regexp.MustCompile(`(?i)Program Manager`), "PM"},
	{regexp.MustCompile(`(?i)\bPM\b`), "PM"},
	{regexp.MustCompile(`(?i)Deputy Program Manager`), "DPM"},
	{regexp.MustCompile(`(?i)Product Manager`), "PdM"},
	{regexp.MustCompile(`(?i)Project Manager`), "PjM"},
	{regexp.MustCompile(`(?i)Assistant Secretary`), "ASA"},
	{regexp.MustCompile(`(?i)Under Secretary`), "USD"},
	{regexp.MustCompile(`(?i)Deputy Assistant Secretary`), "DASA"},
	{regexp.MustCompile(`(?i)Director`), "Director"},
	{regexp.MustCompile(`(?i)Chief`), "Chief"},
	{regexp.MustCompile(`(?i)Commander`), "Commander"},
}

var servicePatterns = []labeled{
	{regexp.MustCompile(`(?i)Office of the Secretary of Defense|^\s*OSD\s*$`), "OSD"},
	{regexp.MustCompile(`(?i)Department of the Army|^\s*Army\s*$|U\.S\. Army`), "Army"},
	{regexp.MustCompile(`(?i)Department of the Navy|^\s*Navy\s*$|U\.S\. Navy`), "Navy"},
	{regexp.MustCompile(`(?i)Department of the Air Force|^\s*Air Force\s*$|U\.S\. Air Force`), "Air Force"},
	{regexp.MustCompile(`(?i)Space Force|USSF`), "Space Force"},
	{regexp.MustCompile(`(?i)Marine Corps|USMC`), "Marines"},
	{regexp.MustCompile(`(?i)Special Operations Command|SOCOM|USSOCOM`), "SOCOM"},
	{regexp.MustCompile(`(?i)Missile Defense Agency|MDA`), "MDA"},
	{regexp.MustCompile(`(?i)Defense Logistics Agency|DLA`), "DLA"},
	{regexp.MustCompile(`(?i)Defense Information Systems Agency|DISA`), "DISA"},
	{regexp.MustCompile(`(?i)Defense Threat Reduction Agency|DTRA`), "DTRA"},
	{regexp.MustCompile(`(?i)Defense Advanced Research Projects Agency|DARPA`), "DARPA"},
	{regexp.MustCompile(`(?i)Defense Contract Management Agency|DCMA`), "DCMA"},
	{regexp.MustCompile(`(?i)Defense Health Agency|DHA`), "DHA"},
	{regexp.MustCompile(`(?i)National Geospatial-Intelligence Agency|NGA`), "NGA"},
	{regexp.MustCompile(`(?i)National Security Agency|NSA`), "NSA"},
	{regexp.MustCompile(`(?i)Defense Intelligence Agency|DIA`), "DIA"},
}

// MissionAreas maps a mission-area label to the keywords that indicate it.
// Unlike the tables above this is multi-label: every area whose keywords
// appear in a passage applies.
var MissionAreas = map[string][]string{
	"Aviation":         {"aviation", "rotary", "helicopter", "aircraft", "FVL", "FARA", "FLRAA"},
	"Missiles":         {"missile", "rocket", "ATACMS", "Patriot", "THAAD", "HIMARS", "PrSM"},
	"Ground Combat":    {"vehicle", "tank", "armor", "Bradley", "Abrams", "Stryker", "AMPV"},
	"C5ISR":            {"C5ISR", "C4ISR", "command", "control", "communications", "intelligence", "surveillance", "reconnaissance", "radar", "sensor"},
	"Cyber":            {"cyber", "network", "electronic warfare", "EW", "information warfare"},
	"Space":            {"space", "satellite", "GPS", "launch", "orbital"},
	"Maritime":         {"ship", "submarine", "naval", "maritime", "carrier", "destroyer", "frigate"},
	"Long-Range Fires": {"long-range", "fires", "artillery", "howitzer", "ERCA", "LRPF"},
	"Air Defense":      {"air defense", "SHORAD", "IFPC", "counter-UAS", "C-UAS"},
	"Logistics":        {"logistics", "sustainment", "supply", "maintenance", "ammunition"},
	"SOF":              {"special operations", "SOF", "special forces"},
	"Nuclear":          {"nuclear", "strategic", "deterrent", "ICBM", "triad"},
	"Unmanned":         {"unmanned", "UAS", "UAV", "drone", "autonomous", "robotics"},
}

// DetectService returns the canonical service/agency label for text, or ""
// if no service pattern matches.
func DetectService(text string) string {
	return firstMatch(servicePatterns, text)
}

// DetectOrgType returns the canonical organization-type label for text, or
// "" if no pattern matches.
func DetectOrgType(text string) string {
	return firstMatch(orgTypePatterns, text)
}

// DetectStatus returns the appointment status indicated by text, or
// DefaultStatus when no marker is present.
func DetectStatus(text string) string {
	if s := firstMatch(statusPatterns, text); s != "" {
		return s
	}
	return DefaultStatus
}

// DetectMissionAreas returns every mission-area label whose keyword list
// intersects text, sorted for a stable representation. Keyword matching is
// case-insensitive substring containment.
func DetectMissionAreas(text string) []string {
	lower := strings.ToLower(text)
	var areas []string
	for area, keywords := range MissionAreas {
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				areas = append(areas, area)
				break
			}
		}
	}
	sort.Strings(areas)
	return areas
}

// MissionAreaLabel renders the detected mission areas as the comma-joined
// form stored on records. Empty when no area matches.
func MissionAreaLabel(text string) string {
	return strings.Join(DetectMissionAreas(text), ", ")
}

func firstMatch(table []labeled, text string) string {
	for _, entry := range table {
		if entry.re.MatchString(text) {
			return entry.label
		}
	}
	return ""
}
