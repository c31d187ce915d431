package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// TestHasActiveCommissionRate 自定义提成比例的有效期判断
func TestHasActiveCommissionRate(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name         string
		receptionist Receptionist
		want         bool
	}{
		{"无有效期", Receptionist{CommissionRate: 7}, false},
		{"有效期未过", Receptionist{CommissionRate: 7, CommissionExpiry: &future}, true},
		{"有效期已过", Receptionist{CommissionRate: 7, CommissionExpiry: &past}, false},
		{"有效期恰好为当前时刻", Receptionist{CommissionRate: 7, CommissionExpiry: &now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.receptionist.HasActiveCommissionRate(now); got != tt.want {
				t.Errorf("HasActiveCommissionRate = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestReceptionistPasswordNotExposed 密码不应出现在序列化结果中
func TestReceptionistPasswordNotExposed(t *testing.T) {
	r := Receptionist{
		ID:       1,
		Name:     "小月",
		Password: "super-secret",
		Role:     RoleReceptionist,
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	if strings.Contains(string(data), "super-secret") {
		t.Error("密码泄露在JSON输出中")
	}
	if strings.Contains(string(data), "password") {
		t.Error("JSON输出不应包含password字段")
	}
}

// TestPasswordHashRoundTrip 哈希后可校验原文，错误密码校验失败
func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Nyx@12345")
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if len(hash) < 60 {
		t.Errorf("bcrypt哈希长度 = %d, 期望 >= 60", len(hash))
	}

	if !CheckPasswordHash("Nyx@12345", hash) {
		t.Error("正确密码校验失败")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("错误密码不应通过校验")
	}
}
