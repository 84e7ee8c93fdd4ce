package cachefile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/filetemp/internal/filetype"
)

func sampleCollection() Collection {
	return Collection{
		{
			Name:     "base",
			FileType: filetype.CMake,
			Options: []Pair{
				{Name: "version", Content: "3.10"},
				{Name: "proj", Content: "demo"},
			},
		},
		{
			Name:     "lib",
			FileType: filetype.CMake,
			Options: []Pair{
				{Name: "version", Content: "3.20"},
				{Name: "proj", Content: "demo-lib"},
				{Name: "main-lang", Content: "c"},
			},
		},
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleCollection()))

	expected := strings.Join([]string{
		"[base]",
		"file_type:cmake",
		"version:3.10",
		"proj:demo",
		"",
		"[lib]",
		"file_type:cmake",
		"version:3.20",
		"proj:demo-lib",
		"main-lang:c",
		"",
		"",
	}, lineEnding)
	require.Equal(t, expected, buf.String())
}

func TestWriteRead_RoundTrip(t *testing.T) {
	t.Parallel()

	coll := sampleCollection()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, coll))

	got, err := Read(buf.Bytes(), []string{"version", "proj", "main-lang"})
	require.NoError(t, err)

	if diff := cmp.Diff(coll, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_Upsert(t *testing.T) {
	t.Parallel()

	coll := sampleCollection()

	t.Run("replaces in place by cache name", func(t *testing.T) {
		replacement := Bundle{Name: "base", FileType: filetype.CMake, Options: []Pair{{Name: "version", Content: "4.0"}}}
		updated := coll.Upsert(replacement)
		require.Len(t, updated, 2)
		found, ok := updated.Find("base")
		require.True(t, ok)
		require.Equal(t, "4.0", found.Options[0].Content)
		// Order of the other bundles is untouched.
		require.Equal(t, "lib", updated[1].Name)
	})

	t.Run("appends when the name is new", func(t *testing.T) {
		updated := sampleCollection().Upsert(Bundle{Name: "extra", FileType: filetype.CMake})
		require.Len(t, updated, 3)
		require.Equal(t, "extra", updated[2].Name)
	})
}

func TestCollection_Find(t *testing.T) {
	t.Parallel()

	coll := sampleCollection()
	_, ok := coll.Find("nope")
	require.False(t, ok)

	b, ok := coll.Find("lib")
	require.True(t, ok)
	require.Equal(t, filetype.CMake, b.FileType)
}
