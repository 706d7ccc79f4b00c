package token

import (
	"fmt"
	"time"
)

// Sentinel token values the mock always rejects. Client test suites send
// these literals to drive the failure paths.
const (
	SentinelExpired = "expired"
	SentinelInvalid = "invalid"
)

// Pair represents an access/refresh token pair with absolute expiries
type Pair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// Tokens are opaque and time+identity derived. They carry no signature and
// cannot be verified; the auth middleware only rejects the sentinels.

// MintPair mints an access/refresh token pair for a client
func MintPair(clientID string, now time.Time, accessTTL, refreshTTL time.Duration) Pair {
	ms := now.UnixMilli()
	return Pair{
		AccessToken:      fmt.Sprintf("mock_access_token_%s_%d", clientID, ms),
		AccessExpiresAt:  now.Add(accessTTL),
		RefreshToken:     fmt.Sprintf("mock_refresh_token_%s_%d", clientID, ms),
		RefreshExpiresAt: now.Add(refreshTTL),
	}
}

// MintRefreshedPair mints a pair during refresh-token rotation
func MintRefreshedPair(now time.Time, accessTTL, refreshTTL time.Duration) Pair {
	ms := now.UnixMilli()
	return Pair{
		AccessToken:      fmt.Sprintf("mock_access_token_refreshed_%d", ms),
		AccessExpiresAt:  now.Add(accessTTL),
		RefreshToken:     fmt.Sprintf("mock_refresh_token_refreshed_%d", ms),
		RefreshExpiresAt: now.Add(refreshTTL),
	}
}

// MintSingle mints the single session token returned by set-pin
func MintSingle(clientID string, now time.Time, ttl time.Duration) (string, time.Time) {
	return fmt.Sprintf("mock_token_%s_%d", clientID, now.UnixMilli()), now.Add(ttl)
}

// IsSentinel reports whether the token is one of the always-rejected literals
func IsSentinel(token string) bool {
	return token == SentinelExpired || token == SentinelInvalid
}
