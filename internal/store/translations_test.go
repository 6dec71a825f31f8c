package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rsqlwhere/internal/testutil"
)

func TestRecordTranslation_FillsGeneratedFields(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	rec, err := s.RecordTranslation(ctx, Translation{
		Source: "name==John",
		Target: `{"name":{"equals":"John"}}`,
		Model:  "User",
	})
	require.NoError(t, err)

	assert.Equal(t, "tr-0001", rec.ID)
	assert.Equal(t, int64(1), rec.Seq)
	assert.Equal(t, testutil.Epoch, rec.CreatedAt)
	assert.False(t, rec.Failed())

	got, err := s.GetTranslation(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecordTranslation_KeepsExplicitID(t *testing.T) {
	s := createTestStore(t)

	rec, err := s.RecordTranslation(context.Background(), Translation{ID: "fixed", Source: "a==1"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", rec.ID)
}

func TestRecordTranslation_DuplicateIDFails(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.RecordTranslation(ctx, Translation{ID: "dup", Source: "a==1"})
	require.NoError(t, err)

	_, err = s.RecordTranslation(ctx, Translation{ID: "dup", Source: "a==2"})
	assert.Error(t, err)
}

func TestRecordTranslation_RequiresSource(t *testing.T) {
	s := createTestStore(t)

	_, err := s.RecordTranslation(context.Background(), Translation{})
	assert.ErrorContains(t, err, "source is required")
}

func TestRecordTranslation_Failure(t *testing.T) {
	s := createTestStore(t)

	rec, err := s.RecordTranslation(context.Background(), Translation{
		Source:    "name=like=John",
		ErrorCode: "UNKNOWN_OPERATOR",
	})
	require.NoError(t, err)
	assert.True(t, rec.Failed())
	assert.Empty(t, rec.Target)
}

func TestRecordTranslation_DefaultIDIsUUIDv7(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	rec, err := s.RecordTranslation(context.Background(), Translation{Source: "a==1"})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`), rec.ID)
}

func TestListTranslations_NewestFirst(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, q := range []string{"a==1", "b==2", "c==3"} {
		_, err := s.RecordTranslation(ctx, Translation{Source: q})
		require.NoError(t, err)
	}

	all, err := s.ListTranslations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c==3", "b==2", "a==1"}, sources(all))
	assert.True(t, all[0].CreatedAt.After(all[1].CreatedAt))

	limited, err := s.ListTranslations(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c==3", "b==2"}, sources(limited))
}

func TestListTranslations_EmptyIsNotNil(t *testing.T) {
	s := createTestStore(t)

	records, err := s.ListTranslations(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGetTranslation_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.GetTranslation(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func sources(records []Translation) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Source
	}
	return out
}
