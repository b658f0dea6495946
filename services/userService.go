package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenSettings carries what the token helpers need from configuration.
type TokenSettings struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func subjectFor(user models.User) utils.TokenSubject {
	return utils.TokenSubject{UserID: user.ID, Email: user.Email, Role: user.Role()}
}

// RegisterUser creates an account; staff accounts may use the admin-only routes.
func RegisterUser(db *gorm.DB, data models.RegisterData, staff bool) (models.User, error) {
	email := normalizeEmail(data.Email)
	if email == "" {
		return models.User{}, fmt.Errorf("email is required: %w", ErrValidation)
	}
	if len(data.Password) < 8 {
		return models.User{}, fmt.Errorf("password must be at least 8 characters: %w", ErrValidation)
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return models.User{}, fmt.Errorf("user %s already exists: %w", email, ErrConflict)
	}

	hashedPassword, err := utils.HashPassword(data.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:      email,
		FirstName:  strings.TrimSpace(data.FirstName),
		LastName:   strings.TrimSpace(data.LastName),
		Password:   hashedPassword,
		IsStaff:    staff,
		IsActive:   true,
		DateJoined: time.Now(),
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.User{}, fmt.Errorf("user %s already exists: %w", email, ErrConflict)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func authenticate(db *gorm.DB, email, password string) (models.User, error) {
	var user models.User
	if err := db.Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if IsMissing(err) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := utils.ComparePasswords(user.Password, password); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return models.User{}, fmt.Errorf("account is disabled: %w", ErrForbidden)
	}
	return user, nil
}

// Login issues a token pair for any active user.
func Login(db *gorm.DB, email, password string, settings TokenSettings) (utils.TokenPair, error) {
	user, err := authenticate(db, email, password)
	if err != nil {
		return utils.TokenPair{}, err
	}
	return utils.GenerateTokenPair(subjectFor(user), settings.Secret, settings.AccessTTL, settings.RefreshTTL)
}

// AdminLogin issues a token pair only to staff users.
func AdminLogin(db *gorm.DB, email, password string, settings TokenSettings) (utils.TokenPair, error) {
	user, err := authenticate(db, email, password)
	if err != nil {
		return utils.TokenPair{}, err
	}
	if !user.IsStaff {
		return utils.TokenPair{}, fmt.Errorf("only admin users may use this login: %w", ErrForbidden)
	}
	return utils.GenerateTokenPair(subjectFor(user), settings.Secret, settings.AccessTTL, settings.RefreshTTL)
}

// RefreshAccessToken trades a refresh token for a new access token. The user is
// reloaded so a role change or deactivation takes effect on the next refresh.
func RefreshAccessToken(db *gorm.DB, refreshToken string, settings TokenSettings) (string, error) {
	claims, err := utils.ParseToken(refreshToken, settings.Secret, utils.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrInvalidCredentials)
	}
	subject, err := utils.SubjectFromClaims(claims)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrInvalidCredentials)
	}

	user, err := GetUser(db, subject.UserID)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", fmt.Errorf("account is disabled: %w", ErrForbidden)
	}
	return utils.GenerateAccessToken(subjectFor(user), settings.Secret, settings.AccessTTL)
}

func GetUser(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return models.User{}, notFound(err, "user")
	}
	return user, nil
}

// ensureProfile returns the user's profile, creating an empty one for accounts
// that predate profiles.
func ensureProfile(db *gorm.DB, userID uint) (models.Profile, error) {
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&models.Profile{UserID: userID}).Error; err != nil {
		return models.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// GetUserDetails returns the user together with their profile.
func GetUserDetails(db *gorm.DB, id uint) (models.User, error) {
	user, err := GetUser(db, id)
	if err != nil {
		return models.User{}, err
	}
	profile, err := ensureProfile(db, id)
	if err != nil {
		return models.User{}, err
	}
	user.Profile = &profile
	return user, nil
}

func UpdateProfile(db *gorm.DB, id uint, update models.ProfileUpdate) (models.User, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := GetUser(tx, id)
		if err != nil {
			return err
		}
		profile, err := ensureProfile(tx, id)
		if err != nil {
			return err
		}

		userUpdates := map[string]any{}
		if update.FirstName != nil {
			userUpdates["first_name"] = strings.TrimSpace(*update.FirstName)
		}
		if update.LastName != nil {
			userUpdates["last_name"] = strings.TrimSpace(*update.LastName)
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&user).Updates(userUpdates).Error; err != nil {
				return fmt.Errorf("update user: %w", err)
			}
		}

		profileUpdates := map[string]any{}
		if update.PhoneNumber != nil {
			profileUpdates["phone_number"] = strings.TrimSpace(*update.PhoneNumber)
		}
		if update.AboutMe != nil {
			profileUpdates["about_me"] = strings.TrimSpace(*update.AboutMe)
		}
		if update.Gender != nil {
			profileUpdates["gender"] = *update.Gender
		}
		if update.Country != nil {
			profileUpdates["country"] = strings.ToUpper(*update.Country)
		}
		if update.City != nil {
			profileUpdates["city"] = strings.TrimSpace(*update.City)
		}
		if len(profileUpdates) > 0 {
			if err := tx.Model(&profile).Updates(profileUpdates).Error; err != nil {
				return fmt.Errorf("update profile: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return GetUserDetails(db, id)
}

// SetProfilePhoto records an already stored photo as the user's profile photo.
func SetProfilePhoto(db *gorm.DB, id uint, url string) (models.User, error) {
	if _, err := GetUser(db, id); err != nil {
		return models.User{}, err
	}
	profile, err := ensureProfile(db, id)
	if err != nil {
		return models.User{}, err
	}
	if err := db.Model(&profile).Update("profile_photo", url).Error; err != nil {
		return models.User{}, fmt.Errorf("save profile photo: %w", err)
	}
	return GetUserDetails(db, id)
}
