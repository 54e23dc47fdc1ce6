package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SANJEEV-1208/caters-backend/models"
)

const orderCacheTTL = 30 * 24 * time.Hour

// OrderCache is the local fallback mirror of submitted orders. Writes
// are best effort; the relational store stays authoritative and wins
// on any conflict.
type OrderCache interface {
	Put(ctx context.Context, order models.Order) error
	Get(ctx context.Context, orderID string) (*models.Order, error)
	ByCustomer(ctx context.Context, customerID uint) ([]models.Order, error)
}

// RedisOrderCache mirrors orders into Redis as JSON.
type RedisOrderCache struct {
	Client *redis.Client
}

func NewRedisOrderCache(client *redis.Client) *RedisOrderCache {
	return &RedisOrderCache{Client: client}
}

func orderKey(orderID string) string {
	return "order:" + orderID
}

func customerOrdersKey(customerID uint) string {
	return fmt.Sprintf("orders:customer:%d", customerID)
}

func (c *RedisOrderCache) Put(ctx context.Context, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	if err := c.Client.Set(ctx, orderKey(order.OrderID), data, orderCacheTTL).Err(); err != nil {
		return err
	}
	if err := c.Client.SAdd(ctx, customerOrdersKey(order.CustomerID), order.OrderID).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, customerOrdersKey(order.CustomerID), orderCacheTTL).Err()
}

func (c *RedisOrderCache) Get(ctx context.Context, orderID string) (*models.Order, error) {
	data, err := c.Client.Get(ctx, orderKey(orderID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *RedisOrderCache) ByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	ids, err := c.Client.SMembers(ctx, customerOrdersKey(customerID)).Result()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		order, err := c.Get(ctx, id)
		if err != nil || order == nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// MemoryOrderCache is the in-process fallback used when Redis is not
// configured, and in tests.
type MemoryOrderCache struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func NewMemoryOrderCache() *MemoryOrderCache {
	return &MemoryOrderCache{orders: make(map[string]models.Order)}
}

func (c *MemoryOrderCache) Put(_ context.Context, order models.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[order.OrderID] = order
	return nil
}

func (c *MemoryOrderCache) Get(_ context.Context, orderID string) (*models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	order, ok := c.orders[orderID]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (c *MemoryOrderCache) ByCustomer(_ context.Context, customerID uint) ([]models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var orders []models.Order
	for _, order := range c.orders {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}
