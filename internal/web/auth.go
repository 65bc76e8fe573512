package web

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/darabcement/portal/config"
)

const (
	sessionCookie     = "admin_session"
	defaultSessionTTL = 12 * time.Hour

	msgWrongPassword = "رمز عبور اشتباه است."
)

// Auth guards the admin console with a single shared password and a signed
// session cookie.
type Auth struct {
	password string
	secret   []byte
	ttl      time.Duration
	log      *slog.Logger
}

func NewAuth(cfg config.Admin, log *slog.Logger) *Auth {
	ttl := cfg.SessionTTL.Std()
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &Auth{
		password: cfg.Password,
		secret:   []byte(cfg.JWTSecret),
		ttl:      ttl,
		log:      log,
	}
}

func (a *Auth) RegisterRoutes(e *echo.Echo) {
	e.GET("/admin/login", a.LoginPage)
	e.POST("/admin/login", a.Login)
	e.POST("/admin/logout", a.Logout)
}

func (a *Auth) issueToken(now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Auth) verifyToken(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return err
	}
	if !parsed.Valid {
		return fmt.Errorf("invalid session token")
	}
	return nil
}

type loginPage struct {
	Title string
	Error string
}

func (a *Auth) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_login.html", loginPage{Title: "ورود مدیر"})
}

func (a *Auth) Login(c echo.Context) error {
	password := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) != 1 {
		return c.Render(http.StatusUnauthorized, "admin_login.html", loginPage{
			Title: "ورود مدیر",
			Error: msgWrongPassword,
		})
	}

	token, err := a.issueToken(time.Now())
	if err != nil {
		a.log.Error("issue admin token", "error", err)
		return c.Render(http.StatusInternalServerError, "admin_login.html", loginPage{
			Title: "ورود مدیر",
			Error: msgWrongPassword,
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(a.ttl),
	})

	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (a *Auth) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

// Middleware rejects unauthenticated requests: API calls get a 401, admin
// pages redirect to the login form.
func (a *Auth) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookie)
			if err == nil {
				err = a.verifyToken(cookie.Value)
			}
			if err != nil {
				if strings.HasPrefix(c.Path(), "/api/") {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
				}
				return c.Redirect(http.StatusSeeOther, "/admin/login")
			}
			return next(c)
		}
	}
}
