package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var (
	ErrTokenExpired = errors.New("session token expired")
	ErrInvalidToken = errors.New("invalid session token")
)

// Сроки жизни токена различаются для регистрации и входа.
const (
	RegisterTTL = time.Hour
	LoginTTL    = 2 * time.Hour
)

// Identity — аутентифицированный пользователь, извлеченный из токена.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Claims — полезная нагрузка JWT-токена сессии.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Servicer interface {
	Issue(identity Identity, ttl time.Duration) (string, error)
	Verify(token string) (Identity, error)
}

// Service подписывает и проверяет токены сессии (HMAC-SHA256).
type Service struct {
	secret []byte
	now    func() time.Time
	log    *slog.Logger
}

type Option func(*Service)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(secret string, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		now:    time.Now,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue выпускает подписанный токен с заданным сроком жизни.
func (s *Service) Issue(identity Identity, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: identity.UserID.String(),
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify проверяет подпись и срок действия токена.
func (s *Service) Verify(token string) (Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: malformed user id", ErrInvalidToken)
	}

	return Identity{UserID: userID, Email: claims.Email}, nil
}
