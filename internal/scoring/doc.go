// Package scoring holds the pure signal scoring functions.
//
// Each signal source (SSL, TLS, HTTP headers, HSTS, ports, firewall, threat
// feed, blocklists, DNSSEC, DNS, hosting, WHOIS) has one scorer that maps a
// parsed payload to a 0-10 score. All scorers follow the same shape: a list
// of weighted checks accumulates achieved and maximum points, checks that
// only apply conditionally are gated so they never inflate the denominator,
// and the final score is achieved/maximum*10 rounded to one decimal. A nil
// payload scores 0; scorers never return an error and never panic on
// missing fields.
//
// The package also contains the schema-agnostic overall scorer (a one-level
// walk over an arbitrary signal bundle) and the grade mapper that turns
// numeric scores into letter grades, colors, and star counts. Everything in
// here is side-effect free and safe for concurrent use.
package scoring
