package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schooladmin_backend/internals/configs"
	"schooladmin_backend/internals/features/users/dto"
	"schooladmin_backend/internals/features/users/model"
	helper "schooladmin_backend/internals/helpers"
	helperAuth "schooladmin_backend/internals/helpers/auth"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuth(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func signToken(u *model.UserModel, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  u.UserID.String(),
		"role": u.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	req.UserFullName = strings.TrimSpace(req.UserFullName)
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))
	if req.UserRole == "" {
		req.UserRole = "staff"
	}

	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[Auth.Register] hash failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	m := model.UserModel{
		UserFullName: req.UserFullName,
		UserEmail:    req.UserEmail,
		UserPassword: string(hash),
		UserRole:     req.UserRole,
		UserIsActive: true,
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Printf("[Auth.Register] insert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.JsonCreated(c, "User registered", dto.ToUserResponse(&m))
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.UserEmail = strings.ToLower(strings.TrimSpace(req.UserEmail))

	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "user_email = ?", req.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Printf("[Auth.Login] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}

	if !m.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, err := signToken(&m, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		log.Printf("[Auth.Login] sign access token failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}
	refresh, err := signToken(&m, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		log.Printf("[Auth.Login] sign refresh token failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Signed in", dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(&m),
	})
}

// POST /api/auth/refresh
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing refresh token")
	}

	tok, err := jwt.Parse(body.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	sub, _ := claims["sub"].(string)

	var m model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "user_id = ?", sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	if !m.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}

	access, err := signToken(&m, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		log.Printf("[Auth.Refresh] sign access token failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh token")
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{"access_token": access})
}

// GET /api/u/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var m model.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[Auth.Me] query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.JsonOK(c, "Profile fetched", dto.ToUserResponse(&m))
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Signed out", nil)
}
