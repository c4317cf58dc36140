package auth

import "github.com/therapistsfriend/practice-server/users"

const (
	// BootstrapUserID is the literal id of the bootstrap demo account. The
	// real account row uses a generated key in every environment, so the
	// literal id is remapped below.
	BootstrapUserID = "1"

	// DemoTenantKey is the fixed tenant key the bootstrap account and the
	// demo bypass both resolve to.
	DemoTenantKey = "demo-user-id"
)

// TenantKey normalises a resolved identity into the canonical owner key used
// for data filtering. This is the single place the bootstrap id mapping is
// defined; handlers must never reimplement it.
func TenantKey(user *users.User) string {
	if user.ID == BootstrapUserID {
		return DemoTenantKey
	}
	return user.ID
}
