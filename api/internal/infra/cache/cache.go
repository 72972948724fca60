package cache

import (
	"sync"
	"time"
)

type Cache struct {
	storage sync.Map
}

func InitStorage() *Cache {
	return &Cache{}
}

func (c *Cache) Set(k any, v any, expiration time.Duration) {
	c.storage.Store(k, v)
	go c.expire(k, v, expiration)
}

// sets value without expiration
func (c *Cache) SetNoExp(k any, v any) {
	c.storage.Store(k, v)
}

func (c *Cache) Del(k any) {
	c.storage.Delete(k)
}

func (c *Cache) Load(k any) any {
	v, _ := c.storage.Load(k)
	return v
}

func (c *Cache) LoadOrSet(k any, v any, expiration time.Duration) any {
	act, loaded := c.storage.LoadOrStore(k, v)
	if !loaded {
		go c.expire(k, act, expiration)
	}
	return act
}

func (c *Cache) expire(k any, v any, expiration time.Duration) {
	time.Sleep(expiration)
	cacheValue, ok := c.storage.Load(k)
	if !ok {
		return
	}
	if cacheValue != v { // value changed
		return
	}
	c.storage.Delete(k)
}
