package scoring

// ScoreHTTPSecurity rates HTTP response hardening.
func ScoreHTTPSecurity(p *HTTPPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(3, p.HTTPSEnabled)

	// Secure cookie flags cannot exist without HTTPS, so the check is gated
	// rather than penalizing plain-HTTP sites twice.
	if p.HTTPSEnabled {
		t.check(1.5, p.SecureCookies)
	}

	t.check(1.5, p.XSSProtection)
	t.check(2.5, p.ContentSecurityPolicy)
	t.check(1.5, p.FrameOptions)
	return t.score()
}

// ScoreHSTS rates Strict-Transport-Security deployment. Directive quality
// is only graded when HSTS is enabled at all.
func ScoreHSTS(p *HSTSPayload) float64 {
	if p == nil {
		return 0
	}

	const (
		oneYear   = 31536000 // seconds
		thirtyDay = 2592000
	)

	var t tally
	t.check(4, p.Enabled)
	if p.Enabled {
		t.tiered(3, p.MaxAge >= oneYear, p.MaxAge >= thirtyDay)
		t.check(2, p.IncludeSubDomains)
		t.check(1, p.Preload)
	}
	return t.score()
}
