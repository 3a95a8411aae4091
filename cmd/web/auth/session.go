package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

var ErrInvalidPassword = errors.New("invalid_password")

// SessionManager 는 관리자 콘솔 게이트를 담당한다. 공유 비밀번호를 확인한 뒤
// HS256 세션 토큰을 발급하고, 이후 요청은 토큰으로만 검증한다.
// 비밀번호 비교를 브라우저 측에 두지 않기 위한 최소한의 서버 발급 세션이다.
type SessionManager struct {
	password string
	secret   []byte
	issuer   string
	ttl      time.Duration
}

// NewSessionManagerFromEnv 는 환경변수에서 비밀번호/시크릿을 읽어 SessionManager 를 생성한다.
//
// - ADMIN_PASSWORD: 콘솔 접근용 공유 비밀번호(필수)
// - SESSION_SECRET: HS256 서명에 사용할 시크릿 문자열(필수)
func NewSessionManagerFromEnv() (*SessionManager, error) {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	return NewSessionManager(password, secret), nil
}

func NewSessionManager(password, secret string) *SessionManager {
	return &SessionManager{
		password: password,
		secret:   []byte(secret),
		issuer:   "inkwell",
		ttl:      12 * time.Hour,
	}
}

// Login 은 비밀번호가 일치하면 세션 토큰을 발급한다.
// 세션은 어디에도 저장되지 않는다. 토큰 만료가 곧 세션 만료다.
func (m *SessionManager) Login(password string) (string, error) {
	if password != m.password {
		return "", ErrInvalidPassword
	}

	claims := jwt.MapClaims{
		"sub":  RoleAdmin,
		"role": RoleAdmin,
		"iss":  m.issuer,
		"exp":  time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify 는 세션 토큰을 검증하고 role 클레임을 반환한다.
func (m *SessionManager) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return "", fmt.Errorf("token missing role claim")
	}
	return role, nil
}
