package security

import "github.com/recipehub/backend/internal/domain/user"

// ConfigAdminPolicy grants the admin role to usernames listed in the
// configuration. Checked only at registration.
type ConfigAdminPolicy struct {
	admins map[string]struct{}
}

// NewConfigAdminPolicy builds the policy from the configured username list.
func NewConfigAdminPolicy(usernames []string) *ConfigAdminPolicy {
	admins := make(map[string]struct{}, len(usernames))
	for _, name := range usernames {
		admins[name] = struct{}{}
	}
	return &ConfigAdminPolicy{admins: admins}
}

// IsAdminUsername reports whether the username is on the admin list.
func (p *ConfigAdminPolicy) IsAdminUsername(username user.Username) bool {
	_, ok := p.admins[username.Value()]
	return ok
}
