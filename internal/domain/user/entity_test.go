package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "simple", raw: "chef_anton"},
		{name: "minimum length", raw: "ab_c"},
		{name: "maximum length", raw: "a" + strings.Repeat("b", 28) + "c"},
		{name: "hyphen inside", raw: "chef-anton"},
		{name: "digits allowed after the first character", raw: "chef99"},
		{name: "too short", raw: "abc", wantErr: ErrUsernameLengthOutOfRange},
		{name: "multibyte length counts runes not bytes", raw: "éé", wantErr: ErrUsernameLengthOutOfRange},
		{name: "too long", raw: strings.Repeat("a", 31), wantErr: ErrUsernameLengthOutOfRange},
		{name: "must start with a letter", raw: "1chef", wantErr: ErrUsernameUnallowedSymbols},
		{name: "cannot start with underscore", raw: "_chef", wantErr: ErrUsernameUnallowedSymbols},
		{name: "cannot end with underscore", raw: "chef_", wantErr: ErrUsernameUnallowedSymbols},
		{name: "no spaces", raw: "chef anton", wantErr: ErrUsernameUnallowedSymbols},
		{name: "no unicode", raw: "шеф_антон", wantErr: ErrUsernameUnallowedSymbols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := NewUsername(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, username.Value())
		})
	}
}

func TestUsernameEquals(t *testing.T) {
	a, err := NewUsername("chef_anton")
	require.NoError(t, err)
	b, err := NewUsername("chef_anton")
	require.NoError(t, err)
	c, err := NewUsername("chef_boris")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAdmin, ParseRole("ADMIN"))
	assert.Equal(t, RoleClassic, ParseRole("classic"))
	assert.Equal(t, RoleClassic, ParseRole("anything else"))
}

func TestIsAdmin(t *testing.T) {
	username, err := NewUsername("site_owner")
	require.NoError(t, err)

	admin := &User{ID: 1, Username: username, Role: RoleAdmin}
	classic := &User{ID: 2, Username: username, Role: RoleClassic}

	assert.True(t, admin.IsAdmin())
	assert.False(t, classic.IsAdmin())
}
