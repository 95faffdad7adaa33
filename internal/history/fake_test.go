package history_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/history"
	"github.com/JaimeStill/blueprint/internal/resolver"
	"github.com/JaimeStill/blueprint/pkg/lifecycle"
	"github.com/JaimeStill/blueprint/pkg/storage"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type blob struct {
	data        []byte
	contentType string
}

type memStore struct {
	mu        sync.Mutex
	blobs     map[string]blob
	uploadErr error
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string]blob)}
}

func (s *memStore) Start(lc *lifecycle.Coordinator) error { return nil }

func (s *memStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = blob{data: data, contentType: contentType}
	return nil
}

func (s *memStore) meta(key string, b blob) storage.BlobMeta {
	return storage.BlobMeta{
		Key:           key,
		ContentType:   b.contentType,
		ContentLength: int64(len(b.data)),
		LastModified:  time.Unix(0, 0).UTC(),
	}
}

func (s *memStore) Download(ctx context.Context, key string) (*storage.BlobResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &storage.BlobResult{
		BlobMeta: s.meta(key, b),
		Body:     io.NopCloser(bytes.NewReader(b.data)),
	}, nil
}

func (s *memStore) Find(ctx context.Context, key string) (*storage.BlobMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	m := s.meta(key, b)
	return &m, nil
}

func (s *memStore) List(ctx context.Context, prefix, marker string, maxResults int32) (*storage.BlobList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := &storage.BlobList{Blobs: []storage.BlobMeta{}}
	for key, b := range s.blobs {
		if strings.HasPrefix(key, prefix) && key > marker {
			list.Blobs = append(list.Blobs, s.meta(key, b))
		}
	}
	sort.Slice(list.Blobs, func(i, j int) bool { return list.Blobs[i].Key < list.Blobs[j].Key })
	return list, nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[key]; !ok {
		return storage.ErrNotFound
	}
	delete(s.blobs, key)
	return nil
}

func (s *memStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[key]
	return ok, nil
}

func (s *memStore) keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.blobs))
	for k := range s.blobs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func command(text string) history.RecordCommand {
	return history.RecordCommand{
		Text: text,
		Result: architecture.Result{
			Components: []architecture.Component{
				{ID: architecture.NewID(), Name: "API Server", Category: architecture.CategoryBackend, Icon: "Server", Style: "backend"},
			},
		},
		Diagram: "graph TB\n",
		Source:  resolver.SourceFallback,
	}
}
