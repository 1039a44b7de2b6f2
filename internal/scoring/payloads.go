package scoring

// Payload structs mirror the already-deserialized JSON one signal provider
// returns per source. Every field is optional: a missing field decodes to
// its zero value and is treated as "no credit", never as an error. Several
// sources use an empty value to mean "clean" (an empty blocklist hit array
// is good) while others use it to mean "absent" (a missing IP is bad); each
// scorer decides that per field.

// SSLPayload carries certificate facts for a domain.
type SSLPayload struct {
	Valid         bool   `json:"valid"`
	Issuer        string `json:"issuer"`
	ExpiryDate    string `json:"expiryDate"`
	StrongCipher  bool   `json:"strongCipher"`
	SecureProto   bool   `json:"secureProtocol"`
	TrustedIssuer bool   `json:"trustedIssuer"`
}

// TLSPayload carries protocol-level TLS configuration facts.
type TLSPayload struct {
	Version             string   `json:"tlsVersion"`
	StrongCipherSuites  []string `json:"strongCipherSuites"`
	ForwardSecrecy      bool     `json:"forwardSecrecy"`
	CertificateValid    bool     `json:"certificateValid"`
	SecureRenegotiation bool     `json:"secureRenegotiation"`
}

// HTTPPayload carries HTTP security header facts.
type HTTPPayload struct {
	HTTPSEnabled          bool `json:"httpsEnabled"`
	SecureCookies         bool `json:"secureCookies"`
	XSSProtection         bool `json:"xssProtection"`
	ContentSecurityPolicy bool `json:"contentSecurityPolicy"`
	FrameOptions          bool `json:"frameOptions"`
}

// HSTSPayload carries Strict-Transport-Security facts.
type HSTSPayload struct {
	Enabled           bool `json:"hstsEnabled"`
	MaxAge            int  `json:"maxAge"`
	IncludeSubDomains bool `json:"includeSubDomains"`
	Preload           bool `json:"preload"`
}

// PortsPayload carries open/closed/filtered port observations.
type PortsPayload struct {
	SecurePorts   []int `json:"securePorts"`
	ClosedPorts   []int `json:"closedPorts"`
	FilteredPorts []int `json:"filteredPorts"`
}

// FirewallPayload carries perimeter filtering facts.
type FirewallPayload struct {
	Enabled        bool `json:"firewallEnabled"`
	RuleCount      int  `json:"ruleCount"`
	DenyAllDefault bool `json:"denyAllDefault"`
	SecureRules    bool `json:"secureRules"`
	LoggingEnabled bool `json:"loggingEnabled"`
	RateLimiting   bool `json:"rateLimiting"`
	DDoSProtection bool `json:"ddosProtection"`
}

// ThreatPayload carries threat feed observations. Empty arrays mean a clean
// record, so this scorer awards points for absence.
type ThreatPayload struct {
	ActiveThreats      []string `json:"activeThreats"`
	RecentBreaches     []string `json:"recentBreaches"`
	MalwareDetected    bool     `json:"malwareDetected"`
	PhishingAttempts   []string `json:"phishingAttempts"`
	SuspiciousActivity []string `json:"suspiciousActivity"`
	ReputationScore    *float64 `json:"reputationScore,omitempty"`
}

// BlocklistEntry is one listing check against a single blocklist provider.
type BlocklistEntry struct {
	Name      string `json:"name"`
	IsBlocked bool   `json:"isBlocked"`
}

// BlocklistPayload carries per-provider blocklist lookups. An empty slice
// means the provider reported no listings.
type BlocklistPayload struct {
	Spamhaus   []BlocklistEntry `json:"spamhaus"`
	SURBL      []BlocklistEntry `json:"surbl"`
	URIBL      []BlocklistEntry `json:"uribl"`
	DNSBL      []BlocklistEntry `json:"dnsbl"`
	SORBS      []BlocklistEntry `json:"sorbs"`
	AbuseIPDB  []BlocklistEntry `json:"abuseipdb"`
	VirusTotal []BlocklistEntry `json:"virustotal"`
}

// DNSSECPayload carries DNSSEC deployment facts.
type DNSSECPayload struct {
	Enabled               bool `json:"dnssecEnabled"`
	ValidSignatures       bool `json:"validSignatures"`
	AlgorithmSupported    bool `json:"algorithmSupported"`
	KeyRolloverEnabled    bool `json:"keyRolloverEnabled"`
	NSECEnabled           bool `json:"nsecEnabled"`
	DSRecordPresent       bool `json:"dsRecordPresent"`
	TrustAnchorConfigured bool `json:"trustAnchorConfigured"`
}

// DNSRecordSet groups the resolved record lists for a domain.
type DNSRecordSet struct {
	A     []string `json:"A"`
	AAAA  []string `json:"AAAA"`
	MX    []string `json:"MX"`
	TXT   []string `json:"TXT"`
	SPF   []string `json:"SPF"`
	DKIM  []string `json:"DKIM"`
	DMARC []string `json:"DMARC"`
}

// DNSPayload carries DNS hygiene and email authentication facts.
type DNSPayload struct {
	Records             DNSRecordSet `json:"records"`
	SPFEnabled          bool         `json:"spfEnabled"`
	DKIMEnabled         bool         `json:"dkimEnabled"`
	DMARCEnabled        bool         `json:"dmarcEnabled"`
	CAAEnabled          bool         `json:"caaEnabled"`
	DNSSECEnabled       bool         `json:"dnssecEnabled"`
	TTLConfigured       bool         `json:"ttlConfigured"`
	MultipleNameservers bool         `json:"multipleNameservers"`
	GeoDistribution     bool         `json:"geoDistribution"`
}

// HostingPayload carries IP and hosting infrastructure facts.
type HostingPayload struct {
	IP             string `json:"ip"`
	IPv6           string `json:"ipv6"`
	CDN            string `json:"cdn"`
	CloudProvider  string `json:"cloudProvider"`
	LoadBalanced   bool   `json:"loadBalanced"`
	DDoSProtection bool   `json:"ddosProtection"`
}

// WHOISPayload carries registration facts. DomainAge and RegistrationPeriod
// are in years.
type WHOISPayload struct {
	Registrant          string  `json:"registrant"`
	PrivacyProtected    bool    `json:"privacyProtected"`
	DomainAge           float64 `json:"domainAge"`
	RegistrationPeriod  float64 `json:"registrationPeriod"`
	RegistrarReputation string  `json:"registrarReputation"`
}
