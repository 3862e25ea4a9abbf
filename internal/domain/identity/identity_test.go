package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/errors"
)

func TestNormalizeExternalKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "bare work id", key: "OL123456W", want: "/works/OL123456W"},
		{name: "already prefixed", key: "/works/OL123456W", want: "/works/OL123456W"},
		{name: "edition key untouched", key: "/books/OL7353617M", want: "/books/OL7353617M"},
		{name: "bare id without W untouched", key: "OL7353617M", want: "OL7353617M"},
		{name: "non OL key untouched", key: "isbn:9780441013593", want: "isbn:9780441013593"},
		{name: "W anywhere after OL", key: "OLW1", want: "/works/OLW1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExternalKey(tt.key))
		})
	}
}

func TestDeriveBookID_Deterministic(t *testing.T) {
	keys := []string{"OL123456W", "/works/OL27448W", "/books/OL7353617M", "anything at all"}

	for _, key := range keys {
		first, err := DeriveBookID(key)
		require.NoError(t, err)
		second, err := DeriveBookID(key)
		require.NoError(t, err)

		assert.Equal(t, first, second, key)
		assert.Equal(t, uuid.Version(5), first.Version())
		assert.NotEqual(t, uuid.Nil, first)
	}
}

func TestDeriveBookID_BothKeyShapesCollapse(t *testing.T) {
	bare, err := DeriveBookID("OL123456W")
	require.NoError(t, err)
	full, err := DeriveBookID("/works/OL123456W")
	require.NoError(t, err)

	assert.Equal(t, bare, full)
}

func TestDeriveBookID_DistinctWorks(t *testing.T) {
	a := MustDeriveBookID("OL1W")
	b := MustDeriveBookID("OL2W")

	assert.NotEqual(t, a, b)
}

func TestDeriveBookID_EmptyKey(t *testing.T) {
	id, err := DeriveBookID("")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
	assert.Equal(t, uuid.Nil, id)
	assert.Panics(t, func() { MustDeriveBookID("") })
}
