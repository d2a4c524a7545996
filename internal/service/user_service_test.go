package service_test

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

func newUserFixture() (service.UserService, *memUserRepo, *memLogRepo) {
	repo := newMemUserRepo()
	logRepo := &memLogRepo{}
	svc := service.NewUserService(repo, service.NewLogService(logRepo), testSecret)
	return svc, repo, logRepo
}

func registerTestUser(t *testing.T, svc service.UserService, role string) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), "bootstrap", service.RegisterRequest{
		Email:        "worker@tannery.test",
		Password:     "hunter22",
		FirstName:    "Ada",
		LastName:     "Workman",
		Username:     "ada",
		Role:         role,
		DepartmentID: "cutting",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo, logRepo := newUserFixture()

	user := registerTestUser(t, svc, model.RoleDeptAdmin)

	stored := repo.rows[user.ID.String()]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.Password, "password must be stored hashed")
	assert.Equal(t, model.UserStatusActive, stored.Status)
	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, model.EntityUser, logRepo.entries[0].EntityType)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture()
	registerTestUser(t, svc, model.RoleUser)

	_, err := svc.Register(context.Background(), "bootstrap", service.RegisterRequest{
		Email:     "worker@tannery.test",
		Password:  "hunter22",
		FirstName: "Eve",
		LastName:  "Clone",
		Username:  "eve",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.Register(context.Background(), "bootstrap", service.RegisterRequest{
		Email:     "x@y.test",
		Password:  "hunter22",
		FirstName: "X",
		LastName:  "Y",
		Username:  "xy",
		Role:      "OVERLORD",
	})
	require.Error(t, err)
}

func TestRegisterAcceptsLegacyRoleSpelling(t *testing.T) {
	svc, _, _ := newUserFixture()

	user := registerTestUser(t, svc, model.RoleSuperAdminLegacy)
	assert.Equal(t, "SUPER ADMIN", user.Role)
	assert.True(t, model.IsSuperAdminRole(user.Role))
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	svc, _, _ := newUserFixture()
	user := registerTestUser(t, svc, model.RoleDeptAdmin)

	result, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "worker@tannery.test",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	token, err := jwt.Parse(result.Token, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, model.RoleDeptAdmin, claims["role"])
	assert.Equal(t, "cutting", claims["departmentId"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newUserFixture()
	registerTestUser(t, svc, model.RoleUser)

	_, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "worker@tannery.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _, _ := newUserFixture()

	_, err := svc.Login(context.Background(), service.LoginRequest{
		Email:    "nobody@tannery.test",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials,
		"unknown email and wrong password must be indistinguishable")
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, _, _ := newUserFixture()
	user := registerTestUser(t, svc, model.RoleUser)

	_, err := svc.Update(context.Background(), "admin", user.ID.String(), service.UpdateUserRequest{
		Status: model.UserStatusInactive,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), service.LoginRequest{
		Email:    "worker@tannery.test",
		Password: "hunter22",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INACTIVE")
}

func TestUpdateUserRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newUserFixture()
	user := registerTestUser(t, svc, model.RoleUser)

	_, err := svc.Update(context.Background(), "admin", user.ID.String(), service.UpdateUserRequest{
		Status: "FROZEN",
	})
	require.Error(t, err)
}
