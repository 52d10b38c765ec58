package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEmailProviderRecordsCodes(t *testing.T) {
	m := &MockEmailProvider{}

	require.NoError(t, m.SendSignupCode("doc@example.com", "123456"))
	require.NoError(t, m.SendRecoveryCode("doc@example.com", "654321"))

	sent := m.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"doc@example.com"}, sent[0].To)
	assert.Equal(t, "Your verification code", sent[0].Subject)
	assert.Equal(t, "123456", sent[0].Body)
	assert.Equal(t, []string{"doc@example.com"}, sent[1].To)
	assert.Equal(t, "654321", sent[1].Body)
}

func TestMockEmailProviderSentReturnsCopy(t *testing.T) {
	m := &MockEmailProvider{}
	require.NoError(t, m.SendSignupCode("doc@example.com", "111111"))

	sent := m.Sent()
	sent[0].Body = "mutated"

	again := m.Sent()
	assert.Equal(t, "111111", again[0].Body)
}
