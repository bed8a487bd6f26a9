package models

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "Admin", want: RoleAdmin},
		{in: "admin", want: RoleAdmin},
		{in: "User", want: RoleUser},
		{in: " user ", want: RoleUser},
		{in: "editor", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestBlogStatusIsValid(t *testing.T) {
	assert.True(t, BlogStatusDraft.IsValid())
	assert.True(t, BlogStatusPublished.IsValid())
	assert.False(t, BlogStatus("archived").IsValid())
	assert.False(t, Role("root").IsValid())
}
