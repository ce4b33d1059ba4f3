package controllers

import (
	"os"
	"strconv"
	"time"

	"github.com/focusbloom/focusbloom-backend/app/models"
	"github.com/focusbloom/focusbloom-backend/app/queries"
	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

func accessTokenMinutes() (int, bool) {
	env := os.Getenv("ACCESS_TOKEN_MINUTES")
	if env == "" {
		return 0, false
	}
	if iv, err := strconv.Atoi(env); err == nil && iv > 0 {
		return iv, true
	}
	return 0, false
}

func refreshTokenHours() (int, bool) {
	env := os.Getenv("REFRESH_TOKEN_HOURS")
	if env == "" {
		return 0, false
	}
	if iv, err := strconv.Atoi(env); err == nil && iv > 0 {
		return iv, true
	}
	return 0, false
}

// issueTokens signs an access token and stores a fresh refresh token for
// the user. Expirations are env-driven; missing envs mean non-expiring
// tokens.
func issueTokens(user models.User) (fiber.Map, error) {
	accessMinutes, setAccessExp := accessTokenMinutes()
	refreshHours, setRefreshExp := refreshTokenHours()

	secret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
	}
	if setAccessExp {
		claims["exp"] = time.Now().Add(time.Duration(accessMinutes) * time.Minute).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	rtStr, err := utils.GenerateRandomToken(32)
	if err != nil {
		return nil, err
	}

	var rtExpiresAt time.Time
	if setRefreshExp {
		rtExpiresAt = time.Now().Add(time.Duration(refreshHours) * time.Hour)
	}
	rt := &models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     rtStr,
		ExpiresAt: rtExpiresAt,
		Revoked:   false,
		CreatedAt: time.Now(),
	}
	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	if err := rtQueries.CreateRefreshToken(rt); err != nil {
		return nil, err
	}

	var refreshExp interface{} = nil
	if setRefreshExp {
		refreshExp = rtExpiresAt
	}
	expiresIn := 0
	if setAccessExp {
		expiresIn = accessMinutes * 60
	}

	return fiber.Map{
		"access_token":       tokenString,
		"expires_in":         expiresIn,
		"refresh_token":      rtStr,
		"refresh_expires_at": refreshExp,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	}, nil
}

func UserSignUp(c *fiber.Ctx) error {
	register := &models.RegisterRequest{}
	if err := c.BodyParser(register); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(register); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	if _, err := userQueries.GetUserByEmail(register.Email); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(register.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        register.Email,
		Name:         register.Name,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := userQueries.CreateUser(user); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered",
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func UserSignIn(c *fiber.Ctx) error {
	signIn := &models.LoginRequest{}
	if err := c.BodyParser(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByEmail(signIn.Email)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(signIn.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	payload, err := issueTokens(user)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	payload["message"] = "Sign in successful"

	return c.Status(fiber.StatusOK).JSON(payload)
}

func RefreshToken(c *fiber.Ctx) error {
	payload := &models.RefreshRequest{}
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	rt, err := rtQueries.GetRefreshTokenByToken(payload.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	if rt.Revoked || (!rt.ExpiresAt.IsZero() && time.Now().After(rt.ExpiresAt)) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Refresh token expired or revoked"})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(rt.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	// Rotate: the presented token is single-use.
	if err := rtQueries.RevokeRefreshTokenByToken(payload.RefreshToken); err != nil {
		println(err.Error())
	}

	body, err := issueTokens(user)
	if err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}
	body["message"] = "Token refreshed"

	return c.Status(fiber.StatusOK).JSON(body)
}

func UserLogout(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	rtQueries := queries.RefreshTokenQueries{DB: database.DB}
	if err := rtQueries.RevokeRefreshTokensByUser(userID); err != nil {
		println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to revoke refresh tokens"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Logged out"})
}

func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromHeader(c.Get("Authorization"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	userQueries := queries.UserQueries{DB: database.DB}
	user, err := userQueries.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}
