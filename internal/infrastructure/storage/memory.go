package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
)

// MemoryStorage keeps objects in process memory. Presigned URLs point at
// baseURL and carry the expiry as a query parameter; nothing serves them.
type MemoryStorage struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
	baseURL string
}

type memoryObject struct {
	data        []byte
	contentType string
}

func NewMemoryStorage(baseURL string) *MemoryStorage {
	if baseURL == "" {
		baseURL = "http://localhost/blobs"
	}
	return &MemoryStorage{
		objects: make(map[string]memoryObject),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
	}
	data := make([]byte, len(obj.data))
	copy(data, obj.data)
	return data, nil
}

func (s *MemoryStorage) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.objects[key] = memoryObject{data: stored, contentType: contentType}
	s.mu.Unlock()

	return s.GetURL(key), nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStorage) PresignUpload(_ context.Context, key, contentType string, ttl time.Duration) (string, error) {
	q := url.Values{}
	q.Set("method", "PUT")
	q.Set("content-type", contentType)
	q.Set("expires", fmt.Sprintf("%d", int(ttl.Seconds())))
	return s.GetURL(key) + "?" + q.Encode(), nil
}

func (s *MemoryStorage) PresignDownload(_ context.Context, key string, ttl time.Duration) (string, error) {
	q := url.Values{}
	q.Set("method", "GET")
	q.Set("expires", fmt.Sprintf("%d", int(ttl.Seconds())))
	return s.GetURL(key) + "?" + q.Encode(), nil
}

func (s *MemoryStorage) GetURL(key string) string {
	return s.baseURL + "/" + key
}

// Exists reports whether key holds an object.
func (s *MemoryStorage) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok
}

// ContentType returns the content type recorded for key.
func (s *MemoryStorage) ContentType(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.objects[key].contentType
}

// Len returns the number of stored objects.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
