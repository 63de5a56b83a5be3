package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pasarku_backend/internals/configs"
	"pasarku_backend/internals/constants"
	"pasarku_backend/internals/features/users/admins/dto"
	"pasarku_backend/internals/features/users/admins/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AdminModel{}))
	return db
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T: %v", err, err)
	return fe.Code
}

func registerReq(email string) dto.RegisterAdminRequest {
	return dto.RegisterAdminRequest{
		AdminName:     "Admin Satu",
		AdminEmail:    email,
		AdminPassword: "rahasia-banget",
	}
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	db := newTestDB(t)

	first, err := Register(db, registerReq("admin@pasarku.id"))
	require.NoError(t, err)
	assert.Equal(t, constants.RoleModerator, first.AdminRole)
	assert.NotEqual(t, "rahasia-banget", first.AdminPassword, "password harus tersimpan sebagai hash")

	_, err = Register(db, registerReq("Admin@Pasarku.id")) // beda kapitalisasi, email sama
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestLogin_EnumerationSafeMessages(t *testing.T) {
	db := newTestDB(t)
	configs.JWTSecret = "test-secret"

	_, err := Register(db, registerReq("admin@pasarku.id"))
	require.NoError(t, err)

	_, _, errWrongPass := Login(db, "admin@pasarku.id", "salah")
	_, _, errNoAccount := Login(db, "tidakada@pasarku.id", "apapun")

	require.Error(t, errWrongPass)
	require.Error(t, errNoAccount)
	assert.Equal(t, fiber.StatusUnauthorized, fiberStatus(t, errWrongPass))
	assert.Equal(t, fiber.StatusUnauthorized, fiberStatus(t, errNoAccount))
	assert.Equal(t, errWrongPass.Error(), errNoAccount.Error(), "pesan harus identik agar tidak bisa enumerasi akun")
}

func TestLogin_SuccessIssuesTokenAndStampsLastLogin(t *testing.T) {
	db := newTestDB(t)
	configs.JWTSecret = "test-secret"

	_, err := Register(db, registerReq("admin@pasarku.id"))
	require.NoError(t, err)

	token, admin, err := Login(db, "admin@pasarku.id", "rahasia-banget")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, admin.AdminLastLoginAt)
}

func TestLogin_NonaktifForbidden(t *testing.T) {
	db := newTestDB(t)
	configs.JWTSecret = "test-secret"

	req := registerReq("admin@pasarku.id")
	req.AdminStatus = constants.StatusNonaktif
	_, err := Register(db, req)
	require.NoError(t, err)

	_, _, err = Login(db, "admin@pasarku.id", "rahasia-banget")
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberStatus(t, err))
}

func TestUpdate_EmailCollisionAndNotFound(t *testing.T) {
	db := newTestDB(t)

	a, err := Register(db, registerReq("a@pasarku.id"))
	require.NoError(t, err)
	b, err := Register(db, registerReq("b@pasarku.id"))
	require.NoError(t, err)

	taken := "a@pasarku.id"
	_, err = Update(db, b.AdminID, dto.UpdateAdminRequest{AdminEmail: &taken})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	// update email sendiri (exclude id sendiri) harus lolos
	same := "a@pasarku.id"
	_, err = Update(db, a.AdminID, dto.UpdateAdminRequest{AdminEmail: &same})
	require.NoError(t, err)

	_, err = Update(db, uuid.New(), dto.UpdateAdminRequest{AdminEmail: &same})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
}
