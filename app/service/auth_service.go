package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ChristianRende22/Web-proyecto/app/model"
	"github.com/ChristianRende22/Web-proyecto/app/repo"
	"github.com/ChristianRende22/Web-proyecto/helper"
)

type AuthService struct {
	repo     repo.EmployeeRepository
	sessions repo.SessionRepository
}

func NewAuthService(repo repo.EmployeeRepository, sessions repo.SessionRepository) *AuthService {
	return &AuthService{repo: repo, sessions: sessions}
}

func sessionFor(e *model.Employee) model.Session {
	return model.Session{
		UserID:      e.ID,
		Email:       e.Email,
		DisplayName: strings.TrimSpace(e.FirstName + " " + e.LastName),
		Role:        e.Role,
		ImageURL:    e.Image,
	}
}

// /api/v1/auth/login
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Email and Password are required",
		})
	}

	employee, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		// Authenticated email without an employee profile: no session is
		// established and the gate will deny everything.
		log.Printf("No employee profile for %s", req.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	if !helper.CheckPasswordHash(req.Password, employee.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	if !employee.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(model.ErrorResponse{
			Success: false,
			Message: "This account has been disabled",
		})
	}

	token, err := helper.GenerateToken(*employee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	refreshToken, err := helper.GenerateRefreshToken(*employee, req.RememberMe)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate refresh token",
		})
	}

	if err := s.repo.SetRefreshToken(employee.ID, refreshToken); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to save refresh token",
		})
	}

	session := sessionFor(employee)
	if err := s.sessions.Save(c.Context(), session, helper.RefreshTokenTTL(req.RememberMe)); err != nil {
		// The cache is rebuilt from Postgres on the next profile read.
		log.Printf("Failed to cache session for %s: %v", employee.ID, err)
	}

	return c.JSON(model.LoginSuccessResponse{
		Success: true,
		Message: "Login successful",
		Data: model.LoginResponse{
			Session:      session,
			Token:        token,
			RefreshToken: refreshToken,
		},
	})
}

// /api/v1/auth/refresh
func (s *AuthService) Refresh(c *fiber.Ctx) error {
	var req model.RefreshTokenRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Refresh token required",
		})
	}

	claims, err := helper.ValidateToken(req.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid refresh token",
		})
	}

	if claims.Type != "refresh" {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid token type",
		})
	}

	employee, err := s.repo.FindByID(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Employee not found",
		})
	}

	if employee.RefreshToken != req.RefreshToken {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid refresh token",
		})
	}

	newToken, err := helper.GenerateToken(*employee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(model.SuccessResponse[model.RefreshTokenResponse]{
		Success: true,
		Message: "Token refreshed",
		Data: model.RefreshTokenResponse{
			Token: newToken,
		},
	})
}

// /api/v1/auth/logout
func (s *AuthService) Logout(c *fiber.Ctx) error {
	bearer := strings.TrimSpace(c.Get("Authorization"))
	if bearer == "" || len(bearer) < 7 {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Token required",
		})
	}

	tokenString := strings.TrimSpace(bearer[7:])

	claims, err := helper.ValidateToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid token",
		})
	}

	blacklistedToken := model.BlacklistedToken{
		Token:     tokenString,
		ExpiresAt: claims.ExpiresAt.Time,
	}

	if err := s.repo.AddBlacklistToken(blacklistedToken); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to logout",
		})
	}

	var req model.RefreshTokenRequest
	if err := c.BodyParser(&req); err == nil && req.RefreshToken != "" {
		refreshClaims, err := helper.ValidateToken(req.RefreshToken)
		if err == nil {
			s.repo.AddBlacklistToken(model.BlacklistedToken{
				Token:     req.RefreshToken,
				ExpiresAt: refreshClaims.ExpiresAt.Time,
			})
		}
	}

	if err := s.repo.ClearRefreshToken(claims.UserID); err != nil {
		log.Printf("Failed to clear refresh token for employee %s: %v", claims.UserID, err)
	}

	if err := s.sessions.Delete(c.Context(), claims.UserID); err != nil {
		log.Printf("Failed to drop cached session for employee %s: %v", claims.UserID, err)
	}

	return c.JSON(model.SuccessMessageResponse{
		Success: true,
		Message: "Successfully logged out",
	})
}

// /api/v1/auth/profile
func (s *AuthService) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid user session",
		})
	}

	session, err := s.sessions.Find(c.Context(), userID)
	if err != nil {
		// Cache miss: rebuild from the employee record.
		employee, err := s.repo.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Employee not found",
			})
		}

		rebuilt := sessionFor(employee)
		if err := s.sessions.Save(c.Context(), rebuilt, helper.SessionRefreshTTL); err != nil {
			log.Printf("Failed to cache session for %s: %v", userID, err)
		}
		session = &rebuilt
	}

	return c.JSON(model.SuccessResponse[model.Session]{
		Success: true,
		Data:    *session,
	})
}
