package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type CacheInvalidator struct {
	mock.Mock
}

func NewCacheInvalidator(t testingT) *CacheInvalidator {
	m := &CacheInvalidator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CacheInvalidator) Invalidate(ctx context.Context, tags ...string) {
	m.Called(ctx, tags)
}

type TagCache struct {
	mock.Mock
}

func NewTagCache(t testingT) *TagCache {
	m := &TagCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TagCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ret := m.Called(ctx, key)
	var payload []byte
	if ret.Get(0) != nil {
		payload = ret.Get(0).([]byte)
	}
	return payload, ret.Bool(1)
}

func (m *TagCache) Set(ctx context.Context, key string, payload []byte, tags ...string) error {
	return m.Called(ctx, key, payload, tags).Error(0)
}

func (m *TagCache) InvalidateTag(ctx context.Context, tag string) error {
	return m.Called(ctx, tag).Error(0)
}
