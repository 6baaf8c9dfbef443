package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	ids, err := parseUUIDs([]string{a.String(), b.String()})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	ids, err = parseUUIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseUUIDs([]string{"nope"})
	assert.Error(t, err)
}

func TestCommands_Flags(t *testing.T) {
	token := tokenCmd()
	assert.NotNil(t, token.Flags().Lookup("user"))
	assert.NotNil(t, token.Flags().Lookup("role"))

	qr := qrCmd()
	assert.Error(t, qr.Args(qr, nil))
	assert.NoError(t, qr.Args(qr, []string{uuid.NewString()}))
}
