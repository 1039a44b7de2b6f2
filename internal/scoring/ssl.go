package scoring

import (
	"strings"
	"time"
)

// ScoreSSL rates certificate health for a domain.
func ScoreSSL(p *SSLPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	t.check(3, p.Valid)
	t.check(1, p.Issuer != "")

	// Unparseable or missing expiry dates earn nothing, same as an
	// already-expired certificate.
	days := -1.0
	if exp, ok := parseDate(p.ExpiryDate); ok {
		days = time.Until(exp).Hours() / 24
	}
	t.tiered(2, days > 90, days > 30)

	// Cipher and protocol quality only mean anything on a valid certificate.
	if p.Valid {
		t.check(1.5, p.StrongCipher)
		t.check(1.5, p.SecureProto)
	}

	t.check(1, p.TrustedIssuer)
	return t.score()
}

// ScoreTLS rates the negotiated TLS configuration.
func ScoreTLS(p *TLSPayload) float64 {
	if p == nil {
		return 0
	}

	var t tally
	rank := tlsVersionRank(p.Version)
	t.tiered(3, rank >= 2, rank == 1)
	t.check(2, len(p.StrongCipherSuites) > 0)
	t.check(2, p.ForwardSecrecy)
	t.check(2, p.CertificateValid)

	// Renegotiation hardening is only graded when the certificate checks out.
	if p.CertificateValid {
		t.check(1, p.SecureRenegotiation)
	}

	return t.score()
}

// tlsVersionRank classifies a provider-reported version string.
// 2 = TLS 1.3, 1 = TLS 1.2, 0 = anything older or unrecognized.
func tlsVersionRank(version string) int {
	v := strings.ToLower(strings.TrimSpace(version))
	switch {
	case strings.Contains(v, "1.3"):
		return 2
	case strings.Contains(v, "1.2"):
		return 1
	default:
		return 0
	}
}
