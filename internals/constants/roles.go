package constants

import "fmt"

// ==========================
// ✅ Role & Status Admin
// ==========================
const (
	RoleSuperAdmin = "super_admin"
	RoleModerator  = "moderator"

	StatusAktif    = "aktif"
	StatusNonaktif = "nonaktif"
)

// Jenis transaksi ledger
const (
	TransactionPemasukan   = "pemasukan"
	TransactionPengeluaran = "pengeluaran"
)

// Status transaksi
const (
	TransactionPending = "pending"
	TransactionSuccess = "success"
	TransactionFailed  = "failed"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySuperAdminCanAccess = "❌ Hanya super admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminRoles = []string{
		RoleSuperAdmin,
		RoleModerator,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)

func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}
