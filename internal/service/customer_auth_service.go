package service

import (
	"errors"
	"strings"
	"time"

	"github.com/toybox-next/internal/config"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RegisterCustomerInput 顾客注册输入
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	Locale   string
}

// CustomerAuthService 顾客认证服务
type CustomerAuthService struct {
	cfg          *config.Config
	customerRepo repository.CustomerRepository
}

// NewCustomerAuthService 创建顾客认证服务实例
func NewCustomerAuthService(cfg *config.Config, customerRepo repository.CustomerRepository) *CustomerAuthService {
	return &CustomerAuthService{
		cfg:          cfg,
		customerRepo: customerRepo,
	}
}

// CustomerJWTClaims 顾客 JWT 声明
type CustomerJWTClaims struct {
	CustomerID uint   `json:"customer_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// Register 顾客注册（邮箱唯一）
func (s *CustomerAuthService) Register(input RegisterCustomerInput) (*models.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return nil, ErrInvalidCredentials
	}

	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	count, err := s.customerRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	locale := strings.TrimSpace(input.Locale)
	if locale == "" {
		locale = s.cfg.Store.DefaultLocale
	}

	customer := &models.Customer{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Locale:       locale,
		IsActive:     true,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Login 顾客登录，停用账号拒绝登录
func (s *CustomerAuthService) Login(email, password string) (*models.Customer, string, time.Time, error) {
	customer, err := s.customerRepo.GetByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if customer == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !customer.IsActive {
		return nil, "", time.Time{}, ErrAccountDisabled
	}

	token, expiresAt, err := s.GenerateJWT(customer)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	if err := s.customerRepo.TouchLastLogin(customer.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	customer.LastLoginAt = &now

	return customer, token, expiresAt, nil
}

// GenerateJWT 生成顾客 JWT Token
func (s *CustomerAuthService) GenerateJWT(customer *models.Customer) (string, time.Time, error) {
	expireHours := s.cfg.CustomerJWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 168
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)

	claims := CustomerJWTClaims{
		CustomerID: customer.ID,
		Email:      customer.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey()))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseJWT 解析顾客 JWT Token
func (s *CustomerAuthService) ParseJWT(tokenString string) (*CustomerJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &CustomerJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secretKey()), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomerJWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("无效的 token")
}

// GetProfile 获取顾客资料（停用账号同样返回，由调用方决定）
func (s *CustomerAuthService) GetProfile(customerID uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	return customer, nil
}

// UpdateProfile 更新顾客联系信息
func (s *CustomerAuthService) UpdateProfile(customerID uint, name, phone, address string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	if name = strings.TrimSpace(name); name != "" {
		customer.Name = name
	}
	customer.Phone = strings.TrimSpace(phone)
	customer.Address = strings.TrimSpace(address)
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// 顾客与运营账号共用密钥时仍各自签发，优先使用独立配置
func (s *CustomerAuthService) secretKey() string {
	if strings.TrimSpace(s.cfg.CustomerJWT.SecretKey) != "" {
		return s.cfg.CustomerJWT.SecretKey
	}
	return s.cfg.JWT.SecretKey
}
