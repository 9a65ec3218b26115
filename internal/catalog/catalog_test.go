// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Shape(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Technical(), 8)
	assert.Len(t, cat.NonTechnical(), 7)
	assert.Equal(t, 15, cat.Len())
	assert.True(t, cat.Contains("Performance Bottleneck Identification and Optimization"))
	assert.False(t, cat.Contains(""))
}

func TestCatalog_ReadOnly(t *testing.T) {
	cat := Default()

	tech := cat.Technical()
	tech[0] = "mutated"

	assert.NotEqual(t, "mutated", cat.Technical()[0])
	assert.False(t, cat.Contains("mutated"))
}

func TestNew_CopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	cat := New(src, nil)
	src[0] = "z"

	assert.Equal(t, []string{"a", "b"}, cat.Technical())
	assert.Empty(t, cat.NonTechnical())
}

func TestOptions_Order(t *testing.T) {
	cat := New([]string{"t1", "t2"}, []string{"n1"})

	opts := cat.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, Option{CategoryTechnical, "t1"}, opts[0])
	assert.Equal(t, Option{CategoryTechnical, "t2"}, opts[1])
	assert.Equal(t, Option{CategoryNonTechnical, "n1"}, opts[2])
}

func TestOptions_AllowsDuplicates(t *testing.T) {
	cat := New([]string{"same"}, []string{"same"})
	assert.Len(t, cat.Options(), 2)
}

func TestLookup(t *testing.T) {
	cat := New([]string{"t1"}, []string{"n1", "n2"})

	tests := []struct {
		n       int
		want    string
		wantErr bool
	}{
		{1, "t1", false},
		{3, "n2", false},
		{0, "", true},
		{4, "", true},
		{-1, "", true},
	}

	for _, tc := range tests {
		opt, err := cat.Lookup(tc.n)
		if tc.wantErr {
			if !errors.Is(err, ErrTopicIndex) {
				t.Errorf("Lookup(%d) error = %v, want ErrTopicIndex", tc.n, err)
			}
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, opt.Topic)
	}
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Technical Challenges", CategoryTechnical.Label())
	assert.Equal(t, "Non-Technical Challenges", CategoryNonTechnical.Label())
	assert.Equal(t, "Unknown", Category(42).Label())
}

func TestGroups(t *testing.T) {
	groups := Default().Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, CategoryTechnical, groups[0].Category)
	assert.Equal(t, CategoryNonTechnical, groups[1].Category)
}
