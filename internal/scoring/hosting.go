package scoring

// ScoreHosting rates the hosting infrastructure behind a domain. A missing
// IP means the provider could not resolve the host at all, which is the one
// place an empty string is genuinely bad rather than merely unknown.
func ScoreHosting(p *HostingPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(2.5, p.IP != "")
	t.check(1, p.IPv6 != "")
	t.check(2, p.CDN != "")
	t.check(1.5, p.CloudProvider != "")
	t.check(1, p.LoadBalanced)
	t.check(2, p.DDoSProtection)
	return t.score()
}

// ScoreWHOIS rates domain registration posture. Age and registration period
// use the tiered scheme: over five years earns full credit, over one year
// earns half.
func ScoreWHOIS(p *WHOISPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(1.5, p.Registrant != "")
	t.check(2, p.PrivacyProtected)
	t.tiered(3, p.DomainAge > 5, p.DomainAge > 1)
	t.tiered(2, p.RegistrationPeriod > 5, p.RegistrationPeriod > 1)
	t.check(1.5, p.RegistrarReputation != "")
	return t.score()
}
