package services

import (
	"errors"
	"strings"
	"time"

	"github.com/naveen2624/personalized-diet-recommendation/config"
	"github.com/naveen2624/personalized-diet-recommendation/models"
	"github.com/naveen2624/personalized-diet-recommendation/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBadResetToken      = errors.New("invalid or expired reset token")
)

const resetTokenTTL = 15 * time.Minute

// RegisterUser creates a minimal profile; body metrics and goals arrive later
// through the profile update flow.
func RegisterUser(email, password, name string) (*models.UserProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.UserProfile
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.UserProfile{
		Email:    email,
		Password: hashed,
		Name:     name,
	}
	if err := config.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// AuthenticateUser verifies credentials and mints a session JWT.
func AuthenticateUser(email, password string) (*models.UserProfile, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.UserProfile
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// StartPasswordReset issues a short-lived code and mails it. An unknown email
// returns nil so the endpoint cannot be used to probe for accounts.
func StartPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.UserProfile
	err := config.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

// CompletePasswordReset swaps the password if the code matches and has not
// expired, then clears the token so it cannot be replayed.
func CompletePasswordReset(email, token, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.UserProfile
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrBadResetToken
	}
	if user.ResetToken == "" || user.ResetToken != token || time.Now().After(user.ResetTokenExp) {
		return ErrBadResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
