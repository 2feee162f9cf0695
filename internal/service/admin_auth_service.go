package service

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardianpro/guardianpro-api/internal/models"
	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// AdminAuthService implements admin login, token verification, and logout.
// Every attempt, successful or not, leaves an audit entry.
type AdminAuthService struct {
	adminRepo   *repository.AdminUserRepository
	activityLog *repository.ActivityLogRepository
}

// NewAdminAuthService constructs an AdminAuthService.
func NewAdminAuthService(adminRepo *repository.AdminUserRepository, activityLog *repository.ActivityLogRepository) *AdminAuthService {
	return &AdminAuthService{adminRepo: adminRepo, activityLog: activityLog}
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token string             `json:"token"`
	Admin models.PublicAdmin `json:"admin"`
}

// Login verifies credentials and issues a 24-hour session token.
func (s *AdminAuthService) Login(username, password, clientIP string) (*LoginResult, error) {
	user, err := s.adminRepo.GetActiveByUsername(username)
	if err != nil {
		log.Warn().Str("username", username).Msg("Login attempt for unknown or inactive admin")
		s.logFailedLogin(username, clientIP)
		return nil, utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("username", username).Msg("Password verification failed")
		s.logFailedLogin(username, clientIP)
		return nil, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateSessionToken(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign session token")
		return nil, err
	}

	if err := s.adminRepo.UpdateLastLogin(user.ID); err != nil {
		// Not fatal: the login already succeeded.
		log.Error().Err(err).Str("admin_id", user.ID).Msg("Failed to update last_login_at")
	}

	if err := s.activityLog.Insert("admin_login", &user.ID, map[string]interface{}{
		"username": username,
		"ip":       clientIP,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to log admin login")
	}

	log.Info().Str("username", username).Time("expires_at", expiresAt).Msg("Admin login successful")

	return &LoginResult{Token: token, Admin: user.Public()}, nil
}

// Verify validates a session token and confirms the admin is still active.
func (s *AdminAuthService) Verify(token string) (*models.PublicAdmin, error) {
	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.adminRepo.GetActiveByID(claims.AdminID)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	admin := user.Public()
	return &admin, nil
}

// Logout records the logout event. It never fails: an undecodable token is
// only logged, matching the behavior promised to clients.
func (s *AdminAuthService) Logout(token string) {
	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("Logout with invalid token")
		return
	}

	if err := s.activityLog.Insert("admin_logout", &claims.AdminID, map[string]interface{}{
		"username": claims.Username,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to log admin logout")
	}
}

// CreateAdmin provisions a new admin account with a bcrypt password hash.
// Used by the seed command.
func (s *AdminAuthService) CreateAdmin(username, password, role, fullName string) (*models.AdminUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
		FullName:     fullName,
		IsActive:     true,
	}
	if err := s.adminRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminAuthService) logFailedLogin(username, clientIP string) {
	if err := s.activityLog.Insert("failed_login_attempt", nil, map[string]interface{}{
		"username": username,
		"ip":       clientIP,
	}); err != nil {
		log.Error().Err(err).Msg("Failed to log failed login attempt")
	}
}
