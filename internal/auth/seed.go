package auth

import (
	"fmt"
	"log"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/config"
)

// EnsureSuperAdmin creates the configured super admin when no super admin
// exists yet. It is safe to call on every start.
func EnsureSuperAdmin(repo AuthRepository, cfg *config.Config) error {
	n, err := repo.CountUsersByRole(RoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("count super admins: %w", err)
	}
	if n > 0 {
		return nil
	}

	hashed, err := HashPassword(cfg.SuperAdmin.Password)
	if err != nil {
		return fmt.Errorf("hash super admin password: %w", err)
	}
	u := &User{
		Name:     "Super Admin",
		Username: cfg.SuperAdmin.Username,
		Password: hashed,
		Role:     RoleSuperAdmin,
	}
	if t := strings.TrimSpace(cfg.SuperAdmin.Token); t != "" {
		u.Token = &t
	}
	if err := repo.CreateUser(u); err != nil {
		return fmt.Errorf("create super admin: %w", err)
	}
	log.Printf("Seeded super admin %q", u.Username)
	return nil
}
