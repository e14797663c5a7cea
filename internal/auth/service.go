package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/raidshadowmc-sudo/bedwars-panel/internal/domain"
	"github.com/raidshadowmc-sudo/bedwars-panel/internal/repository"
)

const (
	// CookieName carries the signed session token
	CookieName = "bw_session"

	tokenIssuer = "bedwars-panel"
	tokenExpiry = 24 * time.Hour
)

// Session is the authenticated identity attached to a request. Admin and
// player sessions are independent: an admin session has no nickname and a
// player session carries one.
type Session struct {
	IsAdmin  bool
	Nickname string
}

type sessionClaims struct {
	IsAdmin  bool   `json:"is_admin"`
	Nickname string `json:"nickname,omitempty"`
	jwt.RegisteredClaims
}

type Service interface {
	// LoginAdmin checks the shared admin password and mints an admin token
	LoginAdmin(ctx context.Context, password string) (string, error)
	// LoginPlayer mints a player token if the nickname exists
	LoginPlayer(ctx context.Context, nickname string) (string, error)
	// ParseToken validates a token and returns its session
	ParseToken(tokenString string) (*Session, error)
	// CookieTTL is how long issued session cookies stay valid
	CookieTTL() time.Duration
}

type service struct {
	players       repository.Player
	secret        []byte
	adminPassword string
}

func NewService(players repository.Player, secret, adminPassword string) Service {
	return &service{
		players:       players,
		secret:        []byte(secret),
		adminPassword: adminPassword,
	}
}

func (s *service) LoginAdmin(_ context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", fmt.Errorf("%w: wrong admin password", domain.ErrUnauthorized)
	}
	return s.signToken(&Session{IsAdmin: true})
}

func (s *service) LoginPlayer(ctx context.Context, nickname string) (string, error) {
	player, err := s.players.GetPlayerByNickname(ctx, nickname)
	if err != nil {
		return "", err
	}
	return s.signToken(&Session{Nickname: player.Nickname})
}

func (s *service) ParseToken(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid session token", domain.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid session token", domain.ErrUnauthorized)
	}
	return &Session{IsAdmin: claims.IsAdmin, Nickname: claims.Nickname}, nil
}

func (s *service) CookieTTL() time.Duration {
	return tokenExpiry
}

func (s *service) signToken(session *Session) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		IsAdmin:  session.IsAdmin,
		Nickname: session.Nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
