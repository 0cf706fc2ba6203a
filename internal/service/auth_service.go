package service

import (
    "context"
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/miniblog/internal/auth"
    "github.com/d60-Lab/miniblog/internal/model"
    "github.com/d60-Lab/miniblog/internal/repository"
)

var (
    ErrUserExists         = errors.New("username or email already taken")
    ErrInvalidCredentials = errors.New("invalid username or password")
    ErrInvalidToken       = errors.New("invalid or expired token")
)

// Claims JWT 载荷；Subject 为用户 id，ID 为注销用的 jti
type Claims struct {
    Username string `json:"username"`
    jwt.RegisteredClaims
}

type AuthService interface {
    Register(ctx context.Context, username, email, password string) (string, error)
    // Login 校验口令并签发 JWT
    Login(ctx context.Context, username, password string) (string, error)
    // Logout 将 token 的 jti 记入注销表，直到其自然过期
    Logout(ctx context.Context, rawToken string) error
    // Authenticate 解析 token、拒绝已注销的，并加载对应用户
    Authenticate(ctx context.Context, rawToken string) (*model.User, error)
}

type authService struct {
    userRepo repository.UserRepository
    tokens   auth.TokenStore
    secret   []byte
    ttl      time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens auth.TokenStore, secret string, ttl time.Duration) AuthService {
    if ttl <= 0 {
        ttl = 24 * time.Hour
    }
    return &authService{userRepo: userRepo, tokens: tokens, secret: []byte(secret), ttl: ttl}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (string, error) {
    taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
    if err != nil {
        return "", err
    }
    if taken {
        return "", ErrUserExists
    }
    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return "", err
    }
    return s.userRepo.Create(ctx, username, email, string(hash))
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
    user, err := s.userRepo.GetByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return "", ErrInvalidCredentials
        }
        return "", err
    }
    if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
        return "", ErrInvalidCredentials
    }

    now := time.Now()
    claims := Claims{
        Username: user.Username,
        RegisteredClaims: jwt.RegisteredClaims{
            ID:        uuid.New().String(),
            Subject:   user.ID,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
        },
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) Logout(ctx context.Context, rawToken string) error {
    claims, err := s.parse(rawToken)
    if err != nil {
        return ErrInvalidToken
    }
    if claims.ExpiresAt == nil {
        return ErrInvalidToken
    }
    return s.tokens.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *authService) Authenticate(ctx context.Context, rawToken string) (*model.User, error) {
    claims, err := s.parse(rawToken)
    if err != nil {
        return nil, ErrInvalidToken
    }
    revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
    if err != nil {
        return nil, err
    }
    if revoked {
        return nil, ErrInvalidToken
    }
    user, err := s.userRepo.GetByID(ctx, claims.Subject)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrInvalidToken
        }
        return nil, err
    }
    return user, nil
}

func (s *authService) parse(rawToken string) (*Claims, error) {
    var claims Claims
    token, err := jwt.ParseWithClaims(rawToken, &claims, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return s.secret, nil
    })
    if err != nil || !token.Valid {
        return nil, ErrInvalidToken
    }
    return &claims, nil
}
