package service

import (
	"context"
	"strings"

	"blogpress/internal/domain"
	"blogpress/pkg/utils"
)

const passwordSymbols = "@$!%*?&"

type AuthService struct {
	users domain.UserRepository
}

func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Category  string
}

// Register 校验全部通过才落库，弱密码/缺分类不会留下任何用户行
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if in.Role != domain.RoleReader && in.Role != domain.RoleCreator {
		return nil, domain.Validation("role must be reader or creator")
	}
	if !validPassword(in.Password) {
		return nil, domain.Validation("password must be at least 8 characters with uppercase, lowercase, number, and special character")
	}
	if in.Role == domain.RoleCreator && strings.TrimSpace(in.Category) == "" {
		return nil, domain.Validation("creators must choose a category")
	}

	// 预查一次给出友好错误；并发下撞唯一索引由 repo 兜底成同样的 Conflict
	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.Conflict("user already exists")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         in.Role,
		Category:     strings.TrimSpace(in.Category),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate 查无此人和密码不对返回同一个错误，不暴露账号是否存在
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.Validation("invalid credentials")
	}
	return u, nil
}

// validPassword 等价于原策略 ^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[@$!%*?&])[A-Za-z\d@$!%*?&]{8,}$
// Go 的 RE2 没有前瞻，改成逐类扫描
func validPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}
