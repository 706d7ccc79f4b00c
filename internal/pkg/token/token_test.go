package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMintPair(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	pair := MintPair("client-001", now, time.Hour, 24*time.Hour)

	assert.Equal(t, "mock_access_token_client-001_1717243200000", pair.AccessToken)
	assert.Equal(t, "mock_refresh_token_client-001_1717243200000", pair.RefreshToken)
	assert.Equal(t, now.Add(time.Hour), pair.AccessExpiresAt)
	assert.Equal(t, now.Add(24*time.Hour), pair.RefreshExpiresAt)
}

func TestMintPairDistinctAcrossTime(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := MintPair("client-001", base, time.Hour, 24*time.Hour)
	second := MintPair("client-001", base.Add(time.Millisecond), time.Hour, 24*time.Hour)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestMintRefreshedPair(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	pair := MintRefreshedPair(now, time.Hour, 24*time.Hour)

	assert.Equal(t, "mock_access_token_refreshed_1717243200000", pair.AccessToken)
	assert.Equal(t, "mock_refresh_token_refreshed_1717243200000", pair.RefreshToken)
}

func TestMintSingle(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, expiresAt := MintSingle("client-001", now, time.Hour)

	assert.Equal(t, "mock_token_client-001_1717243200000", tok)
	assert.Equal(t, now.Add(time.Hour), expiresAt)
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel("expired"))
	assert.True(t, IsSentinel("invalid"))
	assert.False(t, IsSentinel(""))
	assert.False(t, IsSentinel("mock_access_token_client-001_1717243200000"))
	assert.False(t, IsSentinel("Expired"))
}
