//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"membership-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Now().UTC().Truncate(time.Microsecond)

	cursor := queries.EncodeAfterCursor(at, id)
	decodedAt, decodedID, err := queries.DecodeAfterCursor(cursor)

	require.NoError(t, err)
	assert.True(t, at.Equal(decodedAt))
	assert.Equal(t, id, decodedID)
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty cursor", cursor: ""},
		{name: "not base64", cursor: "!!!not-base64!!!"},
		{name: "unsupported version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{name: "missing separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456"))},
		{name: "non numeric timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "invalid uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
