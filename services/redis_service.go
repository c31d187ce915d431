package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/killingrose3/taluo/config"
)

// InterfaceRedisService 定义Redis缓存服务接口
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheBossBalance(bossName string, balance float64, expiration time.Duration) error
	GetBossBalance(bossName string) (float64, error)
	InvalidateBossBalance(bossName string) error
	CacheStudioIncome(total float64, expiration time.Duration) error
	GetStudioIncome() (float64, error)
	InvalidateStudioIncome() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()

	return &RedisService{
		Client: client,
		Ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheBossBalance 缓存老板预存余额
func (s *RedisService) CacheBossBalance(bossName string, balance float64, expiration time.Duration) error {
	key := "boss_balance:" + bossName
	return s.Client.Set(s.Ctx, key, fmt.Sprintf("%.2f", balance), expiration).Err()
}

// GetBossBalance 从缓存获取老板预存余额
func (s *RedisService) GetBossBalance(bossName string) (float64, error) {
	key := "boss_balance:" + bossName
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return 0, err
	}
	var balance float64
	if _, err := fmt.Sscanf(val, "%f", &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// InvalidateBossBalance 预存/扣存订单写入后使余额缓存失效
func (s *RedisService) InvalidateBossBalance(bossName string) error {
	return s.Client.Del(s.Ctx, "boss_balance:"+bossName).Err()
}

// CacheStudioIncome 缓存工作室总收入
func (s *RedisService) CacheStudioIncome(total float64, expiration time.Duration) error {
	return s.Client.Set(s.Ctx, "studio_income:total", fmt.Sprintf("%.2f", total), expiration).Err()
}

// GetStudioIncome 从缓存获取工作室总收入
func (s *RedisService) GetStudioIncome() (float64, error) {
	val, err := s.Client.Get(s.Ctx, "studio_income:total").Result()
	if err != nil {
		return 0, err
	}
	var total float64
	if _, err := fmt.Sscanf(val, "%f", &total); err != nil {
		return 0, err
	}
	return total, nil
}

// InvalidateStudioIncome 订单写入后使收入缓存失效
func (s *RedisService) InvalidateStudioIncome() error {
	return s.Client.Del(s.Ctx, "studio_income:total").Err()
}
