package services

import (
	"testing"
	"time"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokens = TokenSettings{Secret: "test-secret", AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}

func registerData(email string) models.RegisterData {
	return models.RegisterData{Email: email, FirstName: "Ada", LastName: "Lovelace", Password: "password123"}
}

func TestRegisterUserHashesPassword(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, registerData(" Ada@Example.com "), true)
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", user.Email)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, utils.ComparePasswords(user.Password, "password123"))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	_, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)
	_, err = RegisterUser(db, registerData("ADA@example.com"), true)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterUserShortPassword(t *testing.T) {
	db := newTestDB(t)

	data := registerData("ada@example.com")
	data.Password = "short"
	_, err := RegisterUser(db, data, false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminLogin(t *testing.T) {
	db := newTestDB(t)
	admin, err := RegisterUser(db, registerData("admin@example.com"), true)
	require.NoError(t, err)
	_, err = RegisterUser(db, registerData("shopper@example.com"), false)
	require.NoError(t, err)

	tokens, err := AdminLogin(db, "admin@example.com", "password123", testTokens)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Access)
	assert.NotEmpty(t, tokens.Refresh)

	claims, err := utils.ParseToken(tokens.Access, testTokens.Secret, utils.AccessToken)
	require.NoError(t, err)
	subject, err := utils.SubjectFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, subject.UserID)
	assert.Equal(t, "admin", subject.Role)

	_, err = AdminLogin(db, "admin@example.com", "wrong-password", testTokens)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AdminLogin(db, "nobody@example.com", "password123", testTokens)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = AdminLogin(db, "shopper@example.com", "password123", testTokens)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t)
	user, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)
	require.NoError(t, db.Model(&user).Update("is_active", false).Error)

	_, err = Login(db, "ada@example.com", "password123", testTokens)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRefreshAccessToken(t *testing.T) {
	db := newTestDB(t)
	_, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)

	tokens, err := Login(db, "ada@example.com", "password123", testTokens)
	require.NoError(t, err)

	access, err := RefreshAccessToken(db, tokens.Refresh, testTokens)
	require.NoError(t, err)
	_, err = utils.ParseToken(access, testTokens.Secret, utils.AccessToken)
	assert.NoError(t, err)

	_, err = RefreshAccessToken(db, tokens.Access, testTokens)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	user, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)

	first := "Augusta"
	updated, err := UpdateProfile(db, user.ID, models.ProfileUpdate{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)

	_, err = UpdateProfile(db, 999, models.ProfileUpdate{FirstName: &first})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterUserCreatesProfile(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, user.ID, user.Profile.UserID)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterUserDeletedEmailConflicts(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&user).Error)

	_, err = RegisterUser(db, registerData("ada@example.com"), false)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetUserDetailsCreatesMissingProfile(t *testing.T) {
	db := newTestDB(t)
	legacy := models.User{Email: "old@example.com", Password: "hash", IsActive: true}
	require.NoError(t, db.Create(&legacy).Error)

	user, err := GetUserDetails(db, legacy.ID)
	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, legacy.ID, user.Profile.UserID)

	again, err := GetUserDetails(db, legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Profile.ID, again.Profile.ID)

	_, err = GetUserDetails(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileDetails(t *testing.T) {
	db := newTestDB(t)
	user, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)

	phone, gender, country, city := "+233546678900", "Female", "gh", " Accra "
	updated, err := UpdateProfile(db, user.ID, models.ProfileUpdate{
		PhoneNumber: &phone,
		Gender:      &gender,
		Country:     &country,
		City:        &city,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Profile)
	assert.Equal(t, "+233546678900", updated.Profile.PhoneNumber)
	assert.Equal(t, "Female", updated.Profile.Gender)
	assert.Equal(t, "GH", updated.Profile.Country)
	assert.Equal(t, "Accra", updated.Profile.City)
	assert.Equal(t, "Ada", updated.FirstName)
}

func TestSetProfilePhoto(t *testing.T) {
	db := newTestDB(t)
	user, err := RegisterUser(db, registerData("ada@example.com"), false)
	require.NoError(t, err)

	updated, err := SetProfilePhoto(db, user.ID, "https://images.test/profiles/1/me.png")
	require.NoError(t, err)
	assert.Equal(t, "https://images.test/profiles/1/me.png", updated.Profile.ProfilePhoto)

	_, err = SetProfilePhoto(db, 999, "https://images.test/x.png")
	assert.ErrorIs(t, err, ErrNotFound)
}
