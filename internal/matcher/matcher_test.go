package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/filetemp/internal/filetype"
	"github.com/vk/filetemp/internal/registry"
	"github.com/vk/filetemp/internal/schema"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Define(filetype.CMake, schema.New("version").Require()))
	require.NoError(t, reg.Define(filetype.CMake, schema.New("main-lang").WithDefault("cxx")))
	require.NoError(t, reg.DefineGlobal(schema.New("path")))
	require.NoError(t, reg.DefineGlobal(schema.New("show").AsFlag()))
	return reg
}

func TestMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		tokens       []string
		expectErr    string
		expectedVals registry.Values
	}{
		{
			name:   "required value plus flag",
			tokens: []string{"--version", "3.10", "--show"},
			expectedVals: registry.Values{
				"version": "3.10",
				"show":    registry.FlagValue,
			},
		},
		{
			name:         "no tokens",
			tokens:       nil,
			expectedVals: registry.Values{},
		},
		{
			name:      "unknown option",
			tokens:    []string{"--bogus", "x"},
			expectErr: `invalid argument: "--bogus"`,
		},
		{
			name:      "bare prefix is not a candidate",
			tokens:    []string{"--"},
			expectErr: `invalid argument: "--"`,
		},
		{
			name:      "unprefixed token is not a candidate",
			tokens:    []string{"version"},
			expectErr: `invalid argument: "version"`,
		},
		{
			name:   "option-shaped value is stored verbatim",
			tokens: []string{"--path", "--show"},
			expectedVals: registry.Values{
				"path": "--show",
			},
		},
		{
			name:   "repeated option keeps the first value",
			tokens: []string{"--version", "3.10", "--version", "3.20"},
			expectedVals: registry.Values{
				"version": "3.10",
			},
		},
		{
			name:         "trailing option with no value records nothing",
			tokens:       []string{"--version"},
			expectedVals: registry.Values{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reg := newTestRegistry(t)
			vals := registry.Values{}
			err := Match(reg, filetype.CMake, tc.tokens, vals)

			if tc.expectErr != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedVals, vals)
		})
	}
}

func TestMatch_MarksEntriesSupplied(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t)
	vals := registry.Values{}
	require.NoError(t, Match(reg, filetype.CMake, []string{"--version", "3.10", "--show"}, vals))

	assert.Equal(t, registry.SupplySupplied, reg.Lookup(filetype.CMake, "version").State)
	assert.Equal(t, registry.SupplySupplied, reg.Lookup(filetype.CMake, "show").State)
	assert.Equal(t, registry.SupplyNone, reg.Lookup(filetype.CMake, "main-lang").State)
}
