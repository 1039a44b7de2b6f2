package scoring

// ScoreDNS rates DNS hygiene and email authentication posture. The enabled
// flags take precedence; raw record lists back them up for providers that
// report one but not the other.
func ScoreDNS(p *DNSPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(1.5, len(p.Records.A) > 0)
	t.check(0.5, len(p.Records.AAAA) > 0)
	t.check(1, len(p.Records.MX) > 0)
	t.check(1.5, p.SPFEnabled || len(p.Records.SPF) > 0)
	t.check(1, p.DKIMEnabled || len(p.Records.DKIM) > 0)
	t.check(1.5, p.DMARCEnabled || len(p.Records.DMARC) > 0)
	t.check(1, p.CAAEnabled)
	t.check(1, p.DNSSECEnabled)
	t.check(0.5, p.TTLConfigured)
	t.check(1, p.MultipleNameservers)
	t.check(0.5, p.GeoDistribution)
	return t.score()
}

// ScoreDNSSEC rates DNSSEC deployment. Signature and key management checks
// are meaningless without DNSSEC enabled, so they are gated.
func ScoreDNSSEC(p *DNSSECPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(3, p.Enabled)
	if p.Enabled {
		t.check(2, p.ValidSignatures)
		t.check(1, p.AlgorithmSupported)
		t.check(1, p.KeyRolloverEnabled)
		t.check(1, p.NSECEnabled)
		t.check(1, p.DSRecordPresent)
		t.check(1, p.TrustAnchorConfigured)
	}
	return t.score()
}
