package scoring

import "encoding/json"

// Signal source identifiers. These double as the path segments the signal
// provider serves each payload under.
const (
	SourceSSL       = "ssl"
	SourceTLS       = "tls"
	SourceHTTP      = "http"
	SourceHSTS      = "hsts"
	SourcePorts     = "ports"
	SourceFirewall  = "firewall"
	SourceThreat    = "threat"
	SourceBlocklist = "blocklist"
	SourceDNSSEC    = "dnssec"
	SourceDNS       = "dns"
	SourceHosting   = "hosting"
	SourceWHOIS     = "whois"
)

// AllSources lists every known signal source in presentation order.
var AllSources = []string{
	SourceSSL, SourceTLS, SourceHTTP, SourceHSTS,
	SourcePorts, SourceFirewall, SourceThreat, SourceBlocklist,
	SourceDNSSEC, SourceDNS, SourceHosting, SourceWHOIS,
}

// ScoreSource decodes a raw payload for the named source and runs the
// matching scorer. The second return is false for unknown sources. A
// payload that fails to decode scores 0, the same degradation as a missing
// payload; malformed upstream data is never an error at this layer.
func ScoreSource(source string, raw json.RawMessage) (float64, bool) {
	switch source {
	case SourceSSL:
		var p SSLPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreSSL(&p), true
	case SourceTLS:
		var p TLSPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreTLS(&p), true
	case SourceHTTP:
		var p HTTPPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreHTTPSecurity(&p), true
	case SourceHSTS:
		var p HSTSPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreHSTS(&p), true
	case SourcePorts:
		var p PortsPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScorePorts(&p), true
	case SourceFirewall:
		var p FirewallPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreFirewall(&p), true
	case SourceThreat:
		var p ThreatPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreThreatFeed(&p), true
	case SourceBlocklist:
		var p BlocklistPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreBlocklists(&p), true
	case SourceDNSSEC:
		var p DNSSECPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreDNSSEC(&p), true
	case SourceDNS:
		var p DNSPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreDNS(&p), true
	case SourceHosting:
		var p HostingPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreHosting(&p), true
	case SourceWHOIS:
		var p WHOISPayload
		if !decode(raw, &p) {
			return 0, true
		}
		return ScoreWHOIS(&p), true
	default:
		return 0, false
	}
}

func decode(raw json.RawMessage, v any) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}
