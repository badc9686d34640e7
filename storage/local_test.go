package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePutFetchRoundtrip(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "corpora/ipc_sections.csv", strings.NewReader("section_number,title\n378,Theft\n")))

	body, err := store.Fetch(ctx, "corpora/ipc_sections.csv")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "section_number,title\n378,Theft\n", string(data))
}

func TestLocalStoreFetchMissingObject(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Fetch(context.Background(), "nope.csv")

	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	_, err := NewStore(Config{Type: "ftp"})

	assert.Error(t, err)
}
