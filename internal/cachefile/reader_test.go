package cachefile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/filetemp/internal/filetype"
)

var readerValidNames = []string{"version", "proj", "main-lang", "path", "use", "save-as"}

func TestRead(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		expectErr string
		expected  Collection
	}{
		{
			name: "two sections back to back",
			input: "[a]\n" +
				"file_type:cmake\n" +
				"proj:demo\n" +
				"\n" +
				"[b]\n" +
				"file_type:cmake\n" +
				"proj:demo2\n" +
				"\n",
			expected: Collection{
				{Name: "a", FileType: filetype.CMake, Options: []Pair{{Name: "proj", Content: "demo"}}},
				{Name: "b", FileType: filetype.CMake, Options: []Pair{{Name: "proj", Content: "demo2"}}},
			},
		},
		{
			name:  "end of input terminates a section like a blank line",
			input: "[a]\nfile_type:cmake\nversion:3.10",
			expected: Collection{
				{Name: "a", FileType: filetype.CMake, Options: []Pair{{Name: "version", Content: "3.10"}}},
			},
		},
		{
			name:  "windows line endings are tolerated",
			input: "[a]\r\nfile_type:cmake\r\nproj:demo\r\n\r\n",
			expected: Collection{
				{Name: "a", FileType: filetype.CMake, Options: []Pair{{Name: "proj", Content: "demo"}}},
			},
		},
		{
			name:  "cache-control lines are dropped",
			input: "[a]\nfile_type:cmake\nuse:old\nsave-as:old\nproj:demo\n\n",
			expected: Collection{
				{Name: "a", FileType: filetype.CMake, Options: []Pair{{Name: "proj", Content: "demo"}}},
			},
		},
		{
			name:     "empty input yields an empty collection",
			input:    "",
			expected: nil,
		},
		{
			name:     "leading blank lines are ignored",
			input:    "\n\n[a]\nfile_type:cmake\n\n",
			expected: Collection{{Name: "a", FileType: filetype.CMake}},
		},
		{
			name:      "section without file type",
			input:     "[a]\nproj:demo\n\n",
			expectErr: `file type not specified for cache "a"`,
		},
		{
			name:      "section without file type at end of input",
			input:     "[a]\nproj:demo",
			expectErr: `file type not specified for cache "a"`,
		},
		{
			name:      "unknown file type fails immediately",
			input:     "[a]\nfile_type:make\n\n",
			expectErr: `invalid file type "make" for cache "a"`,
		},
		{
			name:      "option item outside a section",
			input:     "proj:demo\n",
			expectErr: "invalid content in config cache file",
		},
		{
			name:      "file type line outside a section",
			input:     "file_type:cmake\n",
			expectErr: "invalid content in config cache file",
		},
		{
			name:      "header inside an open section",
			input:     "[a]\nfile_type:cmake\n[b]\n",
			expectErr: `section "a" not terminated before "b" at line 3`,
		},
		{
			name:      "malformed line aborts the whole read",
			input:     "[a]\nfile_type:cmake\nproj:demo\n\n[b]\nbogus:x\n\n",
			expectErr: `invalid argument name "bogus" at line 6`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			coll, err := Read([]byte(tc.input), readerValidNames)
			if tc.expectErr != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrParse)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, coll); diff != "" {
				t.Errorf("collection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_PreservesOptionOrder(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"[a]",
		"file_type:cmake",
		"version:3.10",
		"proj:demo",
		"main-lang:c",
		"",
	}, "\n")

	coll, err := Read([]byte(input), readerValidNames)
	require.NoError(t, err)
	require.Len(t, coll, 1)
	require.Equal(t, []Pair{
		{Name: "version", Content: "3.10"},
		{Name: "proj", Content: "demo"},
		{Name: "main-lang", Content: "c"},
	}, coll[0].Options)
}
