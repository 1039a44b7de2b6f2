// Package constants centralizes filesystem and scoring limits shared
// across the CLI and the API server.
package constants

import "io/fs"

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// MaxPayloadBytes caps how much of a signal provider response is read.
	MaxPayloadBytes = 1 << 20
	// MaxRiskScore is the upper bound of every signal-derived score.
	MaxRiskScore = 10.0
	// MaxCompliancePercentage is the upper bound of the questionnaire score.
	MaxCompliancePercentage = 100
)
