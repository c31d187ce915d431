package services

import (
	"testing"

	"github.com/killingrose3/taluo/config"
	"github.com/killingrose3/taluo/models"
)

func newTestJWTService() InterfaceJWTService {
	return NewJWTService(&config.Config{JWTSecretKey: "test-secret-key"})
}

// TestGenerateAndValidateToken 生成的令牌应能通过校验并还原声明
func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateToken(7, models.RoleManager, "运营")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	parsed, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("验证令牌失败: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("令牌应为有效")
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("提取声明失败: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Role != models.RoleManager {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleManager)
	}
	if claims.Name != "运营" {
		t.Errorf("Name = %q, want 运营", claims.Name)
	}
}

// TestValidateTokenWrongSecret 使用错误密钥签发的令牌应被拒绝
func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(&config.Config{JWTSecretKey: "another-secret"})

	token, err := other.GenerateToken(1, models.RoleReceptionist, "小月")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("错误密钥签发的令牌不应通过校验")
	}
}

// TestValidateTokenGarbage 非法令牌字符串应被拒绝
func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestJWTService()
	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Error("非法令牌不应通过校验")
	}
}
