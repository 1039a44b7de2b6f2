// Package rating models the signal-derived side of the posture dashboard:
// rating categories, their underlying signal sources, and the scorecard
// aggregate persisted per domain.
package rating

import "github.com/posturescan/posture-cli/internal/scoring"

// Category is a named grouping of 1-2 related signal sources presented to
// the user as a single score.
type Category string

const (
	CategorySoftwarePatching    Category = "Software Patching"
	CategoryApplicationSecurity Category = "Application Security"
	CategoryWebEncryption       Category = "Web Encryption"
	CategoryNetworkFiltering    Category = "Network Filtering"
	CategoryBreachEvents        Category = "Breach Events"
	CategorySystemReputation    Category = "System Reputation"
	CategoryEmailSecurity       Category = "Email Security"
	CategoryDNSSecurity         Category = "DNS Security"
	CategorySystemHosting       Category = "System Hosting"
)

// AllCategories lists every rating category in presentation order.
var AllCategories = []Category{
	CategorySoftwarePatching,
	CategoryApplicationSecurity,
	CategoryWebEncryption,
	CategoryNetworkFiltering,
	CategoryBreachEvents,
	CategorySystemReputation,
	CategoryEmailSecurity,
	CategoryDNSSecurity,
	CategorySystemHosting,
}

// categorySources maps each category to the signal sources whose scores are
// averaged into it. A source may back more than one category; the TLS
// source, for example, informs both encryption quality and patch cadence.
var categorySources = map[Category][]string{
	CategorySoftwarePatching:    {scoring.SourceTLS, scoring.SourceHTTP},
	CategoryApplicationSecurity: {scoring.SourceHTTP, scoring.SourceHSTS},
	CategoryWebEncryption:       {scoring.SourceSSL, scoring.SourceTLS},
	CategoryNetworkFiltering:    {scoring.SourcePorts, scoring.SourceFirewall},
	CategoryBreachEvents:        {scoring.SourceThreat},
	CategorySystemReputation:    {scoring.SourceBlocklist, scoring.SourceThreat},
	CategoryEmailSecurity:       {scoring.SourceDNS},
	CategoryDNSSecurity:         {scoring.SourceDNSSEC, scoring.SourceDNS},
	CategorySystemHosting:       {scoring.SourceHosting, scoring.SourceWHOIS},
}

// Sources returns the signal sources backing a category.
func (c Category) Sources() []string {
	return categorySources[c]
}

// Valid reports whether c is one of the known rating categories.
func (c Category) Valid() bool {
	_, ok := categorySources[c]
	return ok
}
