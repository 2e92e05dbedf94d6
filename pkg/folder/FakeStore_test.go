// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package folder

import (
	"context"
	"errors"
	"sync"

	"github.com/navwar/gobucket/pkg/store"
)

var errFakeNotFound = errors.New("fake: no such key")

// fakeStore returns scripted listing pages in order and serves bodies from memory.
type fakeStore struct {
	mu      sync.Mutex
	pages   []*store.ListObjectsOutput
	listErr error
	bodies  map[string]func() any
	copyErr map[string]error
	putErr  error

	listInputs []store.ListObjectsInput
	copies     map[string]string
	puts       map[string][]byte
	putKeys    []string
}

func newFakeStore(pages ...*store.ListObjectsOutput) *fakeStore {
	return &fakeStore{
		pages:   pages,
		bodies:  map[string]func() any{},
		copyErr: map[string]error{},
		copies:  map[string]string{},
		puts:    map[string][]byte{},
	}
}

func page(token string, keys ...string) *store.ListObjectsOutput {
	objects := make([]store.ObjectReference, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, store.ObjectReference{Bucket: "bucket", Key: key, Size: int64(len(key))})
	}
	return &store.ListObjectsOutput{
		Objects:               objects,
		IsTruncated:           len(token) > 0,
		NextContinuationToken: token,
	}
}

func (f *fakeStore) Bucket() string {
	return "bucket"
}

func (f *fakeStore) CopyObject(ctx context.Context, sourceKey string, destinationKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.copyErr[sourceKey]; ok {
		return err
	}
	f.copies[sourceKey] = destinationKey
	return nil
}

func (f *fakeStore) GetObject(ctx context.Context, key string) (*store.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bodies[key]
	if !ok {
		return nil, errFakeNotFound
	}
	return &store.Object{Key: key, Body: b()}, nil
}

func (f *fakeStore) IsNotExist(err error) bool {
	return errors.Is(err, errFakeNotFound)
}

func (f *fakeStore) ListObjects(ctx context.Context, input *store.ListObjectsInput) (*store.ListObjectsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listInputs = append(f.listInputs, *input)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.listInputs) > len(f.pages) {
		return &store.ListObjectsOutput{}, nil
	}
	return f.pages[len(f.listInputs)-1], nil
}

func (f *fakeStore) PutObject(ctx context.Context, key string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putKeys = append(f.putKeys, key)
	if f.putErr != nil {
		return f.putErr
	}
	f.puts[key] = body
	return nil
}

func (f *fakeStore) tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	tokens := make([]string, 0, len(f.listInputs))
	for _, input := range f.listInputs {
		tokens = append(tokens, input.ContinuationToken)
	}
	return tokens
}

var _ store.ObjectStore = (*fakeStore)(nil)

// memoryLogger collects log messages.
type memoryLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *memoryLogger) Log(msg string, fields ...map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memoryLogger) count(msg string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, message := range m.messages {
		if message == msg {
			n++
		}
	}
	return n
}
