package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/hash"
	"github.com/zakihadj/souq/internal/models"
	"github.com/zakihadj/souq/internal/mykafka"
	"github.com/zakihadj/souq/internal/service/token"
	"github.com/zakihadj/souq/internal/store"
)

type AuthHandler struct {
	Store    *store.Store
	Producer *mykafka.Producer
	Tokens   *token.TokenService
}

func (h *AuthHandler) publish(c echo.Context, event map[string]any) {
	key, _ := event["userID"].(string)
	publishEvent(c, h.Producer, "user_events", key, event)
}

// Register creates the account only; no session is established until login.
func (h *AuthHandler) Register(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}
	if req.Username == "" || req.Password == "" {
		return errorResponse(c, http.StatusBadRequest, "Username and password required")
	}

	ctx := c.Request().Context()

	_, err := h.Store.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return errorResponse(c, http.StatusConflict, "Username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errorResponse(c, http.StatusInternalServerError, "Failed to register")
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to register")
	}

	user, err := h.Store.CreateUser(ctx, &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         "user",
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to register")
	}

	h.publish(c, map[string]any{
		"type":     "user_registered",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.Store.GetUserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return errorResponse(c, http.StatusUnauthorized, "Invalid username or password")
	}
	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return errorResponse(c, http.StatusUnauthorized, "Invalid username or password")
	}

	accessToken, err := token.SignAccessToken(user.ID, user.Role, h.Tokens.JWTSecret)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to log in")
	}

	refreshToken, err := token.SignRefreshToken(user.ID, user.Role, h.Tokens.RefreshSecret)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to log in")
	}
	if err := token.SaveRefreshToken(h.Store.DB, refreshToken, user.ID); err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to log in")
	}

	c.SetCookie(token.CreateCookie("accessToken", accessToken, "/", time.Now().Add(token.AccessTTL)))
	c.SetCookie(token.CreateCookie("refreshToken", refreshToken, "/", time.Now().Add(token.RefreshTTL)))

	h.publish(c, map[string]any{
		"type":     "user_logged_in",
		"userID":   user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"user":     user,
		"is_admin": user.Role == "admin",
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if refreshCookie, err := c.Cookie("refreshToken"); err == nil {
		if err := h.Tokens.RevokeRefresh(refreshCookie.Value); err != nil {
			c.Logger().Errorf("revoke refresh token: %v", err)
		}
	}

	expired := time.Now().Add(-1 * time.Hour)
	c.SetCookie(token.CreateCookie("accessToken", "", "/", expired))
	c.SetCookie(token.CreateCookie("refreshToken", "", "/", expired))

	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// Me runs behind AutoRefreshMiddleware, so userID is always set here.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _ := c.Get("userID").(string)

	user, err := h.Store.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "User not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to fetch user")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, _ := c.Get("userID").(string)

	var req store.UserUpdate
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}

	user, err := h.Store.UpdateUser(c.Request().Context(), userID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "User not found")
		}
		return errorResponse(c, http.StatusInternalServerError, "Failed to update profile")
	}

	h.publish(c, map[string]any{
		"type":   "user_profile_updated",
		"userID": user.ID,
	})

	return c.JSON(http.StatusOK, user)
}
