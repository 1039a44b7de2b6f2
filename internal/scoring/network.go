package scoring

// ScorePorts rates the observed port exposure. Non-empty lists are the good
// case here: a provider that saw secure, closed, and filtered ports is
// evidence of deliberate perimeter configuration.
func ScorePorts(p *PortsPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(4, len(p.SecurePorts) > 0)
	t.check(3, len(p.ClosedPorts) > 0)
	t.check(3, len(p.FilteredPorts) > 0)
	return t.score()
}

// ScoreFirewall rates perimeter filtering. Rule-level checks are gated on
// the firewall being enabled; rate limiting and DDoS protection are often
// provided upstream and count regardless.
func ScoreFirewall(p *FirewallPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(3, p.Enabled)
	if p.Enabled {
		t.check(1, p.RuleCount > 0)
		t.check(2, p.DenyAllDefault)
		t.check(1, p.SecureRules)
		t.check(1, p.LoggingEnabled)
	}
	t.check(1, p.RateLimiting)
	t.check(1, p.DDoSProtection)
	return t.score()
}
