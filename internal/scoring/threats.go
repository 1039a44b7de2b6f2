package scoring

// ScoreThreatFeed rates threat intelligence observations. Points are
// awarded for absence: an empty incident list is a clean record, not
// missing data.
func ScoreThreatFeed(p *ThreatPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(2.5, len(p.ActiveThreats) == 0)
	t.check(2, len(p.RecentBreaches) == 0)
	t.check(2.5, !p.MalwareDetected)
	t.check(1.5, len(p.PhishingAttempts) == 0)
	t.check(1.5, len(p.SuspiciousActivity) == 0)

	// Not every feed returns a reputation score; only grade it when present.
	if p.ReputationScore != nil {
		t.tiered(2, *p.ReputationScore >= 80, *p.ReputationScore >= 50)
	}

	return t.score()
}

// ScoreBlocklists rates blocklist standing across the seven providers the
// upstream aggregates. A provider list with no blocked entries is clean.
func ScoreBlocklists(p *BlocklistPayload) float64 {
	if p == nil {
		return 0
	}

	lists := [][]BlocklistEntry{
		p.Spamhaus,
		p.SURBL,
		p.URIBL,
		p.DNSBL,
		p.SORBS,
		p.AbuseIPDB,
		p.VirusTotal,
	}

	var t tally
	for _, entries := range lists {
		t.check(1, cleanBlocklist(entries))
	}
	return t.score()
}

func cleanBlocklist(entries []BlocklistEntry) bool {
	for _, e := range entries {
		if e.IsBlocked {
			return false
		}
	}
	return true
}
