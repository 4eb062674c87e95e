package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"
)

// Role markers as they appear in the raw Roles column.
const (
	RoleCompeted     = "Competed in Olympic Games"
	RoleNonStarter   = "Non-starter"
	RoleIntercalated = "Intercalated Games"
	RoleYouthGames   = "Youth Olympic Games"
)

// dateLocationToken separates the date part of a birth/death string from
// the location part ("5 May 1981 in Paris, ...").
const dateLocationToken = "in "

var (
	countryRe       = regexp.MustCompile(`\(([^)]+)\)`)
	cityRe          = regexp.MustCompile(`in ([^,]+),`)
	regionRe        = regexp.MustCompile(`,\s*([^(]+)`)
	leadingBulletRe = regexp.MustCompile(`^\s*•\s*`)
)

// FieldOutcome classifies the result of a single field extraction so that
// a value absent at the source stays distinguishable from one that was
// present but unparseable.
type FieldOutcome int

const (
	OutcomeOK FieldOutcome = iota
	OutcomeMissing
	OutcomeMalformed
)

// CleanName replaces every bullet separator in a used name with a space.
// The source joins given and family names with "•".
func CleanName(name string) string {
	return strings.ReplaceAll(name, "•", " ")
}

// HasCompetedRole reports whether the role tags include official Olympic
// competition.
func HasCompetedRole(roles string) bool {
	return strings.Contains(roles, RoleCompeted)
}

// IsStructuralAnomaly reports whether a row matches neither the competed
// marker nor any of the known exclusion categories. Such rows exist in
// the source and are excluded from the cleaned output, but they are
// counted rather than silently dropped.
func IsStructuralAnomaly(roles string) bool {
	return !strings.Contains(roles, RoleCompeted) &&
		!strings.Contains(roles, RoleNonStarter) &&
		!strings.Contains(roles, RoleIntercalated) &&
		!strings.Contains(roles, RoleYouthGames)
}

// AdditionalRoles strips the competed marker and one leading bullet
// sequence from the role tags. An empty remainder reads as missing.
func AdditionalRoles(roles string) string {
	s := strings.ReplaceAll(roles, RoleCompeted, "")
	s = leadingBulletRe.ReplaceAllString(s, "")
	return s
}

// ExtractDate returns the part of a composite birth/death string before
// the first "in " token. A value without the token passes through whole,
// and the date keeps its trailing whitespace, matching the source layout.
func ExtractDate(s string) string {
	if idx := strings.Index(s, dateLocationToken); idx >= 0 {
		return s[:idx]
	}
	return s
}

// ExtractCountry returns the content of the last parenthesized group.
// Some birth strings carry more than one parenthetical; the last one is
// the country code.
func ExtractCountry(s string) string {
	matches := countryRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}

// ExtractCity returns the text between the "in " token and the first
// comma. A literal "?" placeholder in the source is preserved as-is.
func ExtractCity(s string) string {
	if m := cityRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// ExtractRegion returns the text between the first comma and the next
// opening parenthesis.
func ExtractRegion(s string) string {
	if m := regionRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

// SplitMeasurements splits a combined "182 cm / 75 kg" string into the
// leading numeric tokens of its height and weight halves. Unit text is
// discarded; a missing half yields an empty token.
func SplitMeasurements(s string) (heightToken, weightToken string) {
	parts := strings.Split(s, " / ")
	heightToken = firstToken(parts[0])
	if len(parts) > 1 {
		weightToken = firstToken(parts[1])
	}
	return heightToken, weightToken
}

// firstToken returns the part of s before the first space.
func firstToken(s string) string {
	if idx := strings.Index(s, " "); idx >= 0 {
		return s[:idx]
	}
	return s
}

// CoerceFloat converts an extracted token to a number. Empty tokens are
// missing; tokens that fail to parse (an errant trailing comma, stray
// unit text) are malformed. Neither is an error.
func CoerceFloat(token string) (*float64, FieldOutcome) {
	if token == "" {
		return nil, OutcomeMissing
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, OutcomeMalformed
	}
	return &v, OutcomeOK
}
