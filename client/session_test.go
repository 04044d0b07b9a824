package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	s, err := OpenSession(path)
	require.NoError(t, err)
	require.NoError(t, s.SetMerchantID("merch_123"))
	require.NoError(t, s.SetAPIKey("pk_live_abc"))
	require.NoError(t, s.SetLastStep("kyc"))

	// A fresh open must see everything the first instance persisted.
	s2, err := OpenSession(path)
	require.NoError(t, err)
	assert.Equal(t, "merch_123", s2.MerchantID())
	assert.Equal(t, "pk_live_abc", s2.APIKey())
	assert.Equal(t, "kyc", s2.LastStep())
}

func TestSessionPendingKeyStableUntilCleared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := OpenSession(path)
	require.NoError(t, err)

	k1, err := s.PendingKey("register")
	require.NoError(t, err)
	k2, err := s.PendingKey("register")
	require.NoError(t, err)
	assert.Equal(t, k1, k2, "retries must reuse the key")

	// Survives a restart mid-retry.
	s2, err := OpenSession(path)
	require.NoError(t, err)
	k3, err := s2.PendingKey("register")
	require.NoError(t, err)
	assert.Equal(t, k1, k3)

	require.NoError(t, s2.ClearPendingKey("register"))
	k4, err := s2.PendingKey("register")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4, "a fresh action mints a fresh key")
}

func TestSessionCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := OpenSession(path)
	assert.Error(t, err)
}
