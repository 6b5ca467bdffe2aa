package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLMovie   = 1 * time.Hour    // 영화 상세 (거의 변하지 않음)
	TTLPopular = 10 * time.Minute // 인기 영화 목록
	TTLSearch  = 5 * time.Minute  // 검색 결과
)

// 캐시 키 접두사
const (
	PrefixMovie   = "movie:"
	PrefixPopular = "movies:popular:"
	PrefixSearch  = "movies:search:"
)

// ErrMiss returned by Get when the key is absent or Redis is not configured
var ErrMiss = errors.New("cache miss")

var cacheRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "cinefeel",
		Name:      "cache_requests_total",
		Help:      "Cache lookups by key prefix and result",
	},
	[]string{"prefix", "result"},
)

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성. client가 nil이면 모든 조회는 miss, 저장은 무시
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get 캐시에서 값 조회
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	prefix := keyPrefix(key)
	if c.client == nil {
		cacheRequests.WithLabelValues(prefix, "miss").Inc()
		return ErrMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheRequests.WithLabelValues(prefix, "miss").Inc()
		return ErrMiss
	}
	if err != nil {
		cacheRequests.WithLabelValues(prefix, "error").Inc()
		return err
	}

	cacheRequests.WithLabelValues(prefix, "hit").Inc()
	return json.Unmarshal(data, dest)
}

// Set 캐시에 값 저장
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete 캐시 삭제
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// 키 생성
// ========================================

// MovieKey 영화 상세 캐시 키
func MovieKey(id int64, language string) string {
	return fmt.Sprintf("%s%d:%s", PrefixMovie, id, language)
}

// PopularKey 인기 영화 목록 캐시 키
func PopularKey(page int, language string) string {
	return fmt.Sprintf("%s%s:%d", PrefixPopular, language, page)
}

// SearchKey 검색 결과 캐시 키 (검색어는 소문자/공백 정규화)
func SearchKey(query string, page int, language string) string {
	q := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return fmt.Sprintf("%s%s:%d:%s", PrefixSearch, language, page, q)
}

// keyPrefix 메트릭 라벨용 접두사 (카디널리티 제한)
func keyPrefix(key string) string {
	for _, p := range []string{PrefixPopular, PrefixSearch, PrefixMovie} {
		if strings.HasPrefix(key, p) {
			return strings.TrimSuffix(p, ":")
		}
	}
	return "other"
}
