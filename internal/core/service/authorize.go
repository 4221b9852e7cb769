package service

import "github.com/hotelhub/hotel-admin/internal/core/domain"

// requireAdmin repeats the routing gates inside the core: no identity is an
// authentication failure, a non-admin identity an authorization failure.
func requireAdmin(caller *domain.Identity) error {
	if !domain.IsAuthenticated(caller) {
		return domain.ErrUnauthenticated
	}
	if !domain.IsAdmin(caller) {
		return domain.ErrAdminOnly
	}
	return nil
}
