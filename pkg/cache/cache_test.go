package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := LayoutKeyOpts{CenterX: 512, CenterY: 512, Count: 100, MaxWidth: 99, MaxHeight: 99, Seed: 1}
	lk := k.LayoutKey(base)
	if !strings.HasPrefix(lk, "layout:") {
		t.Errorf("LayoutKey = %q, want layout: prefix", lk)
	}
	if lk != k.LayoutKey(base) {
		t.Error("LayoutKey should be deterministic")
	}

	variants := []func(*LayoutKeyOpts){
		func(o *LayoutKeyOpts) { o.CenterX++ },
		func(o *LayoutKeyOpts) { o.Count = 50 },
		func(o *LayoutKeyOpts) { o.Seed = 2 },
		func(o *LayoutKeyOpts) { o.MaxRadius = 300 },
		func(o *LayoutKeyOpts) { o.SizesHash = "abc" },
	}
	for i, mutate := range variants {
		opts := base
		mutate(&opts)
		if k.LayoutKey(opts) == lk {
			t.Errorf("variant %d: LayoutKey should change", i)
		}
	}

	ak := ArtifactKeyOpts{Format: "svg", Style: "solid", Width: 1024, Height: 1024}
	a1 := k.ArtifactKey("h1", ak)
	if !strings.HasPrefix(a1, "artifact:svg:") {
		t.Errorf("ArtifactKey = %q, want artifact:svg: prefix", a1)
	}
	if a1 == k.ArtifactKey("h2", ak) {
		t.Error("different layout hashes should produce different artifact keys")
	}
	ak.Style = "palette"
	if a1 == k.ArtifactKey("h1", ak) {
		t.Error("different styles should produce different artifact keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	k := NewScopedKeyer(nil, "tenant:")

	opts := LayoutKeyOpts{Count: 10}
	if got, want := k.LayoutKey(opts), "tenant:"+inner.LayoutKey(opts); got != want {
		t.Errorf("LayoutKey = %q, want %q", got, want)
	}
	aopts := ArtifactKeyOpts{Format: "png"}
	if got, want := k.ArtifactKey("h", aopts), "tenant:"+inner.ArtifactKey("h", aopts); got != want {
		t.Errorf("ArtifactKey = %q, want %q", got, want)
	}
	if got, want := k.LayoutIDKey("abc"), "tenant:layout-id:abc"; got != want {
		t.Errorf("LayoutIDKey = %q, want %q", got, want)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit {
		t.Fatalf("Get(key) = hit %v, err %v", hit, err)
	}
	if string(data) != "value" {
		t.Errorf("Get(key) = %q, want %q", data, "value")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should be a miss")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry file should be removed")
	}

	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero ttl entry should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, hit, err := c.Get(ctx, "bad")
	if err != nil || hit {
		t.Errorf("corrupt entry: hit %v, err %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry file should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear, want 0", len(entries))
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		opts    Options
		want    string
		wantErr error
	}{
		{"empty means none", Options{}, "cache.NullCache", nil},
		{"dir implies file", Options{Dir: dir}, "*cache.FileCache", nil},
		{"explicit none", Options{Backend: BackendNone, Dir: dir}, "cache.NullCache", nil},
		{"unknown", Options{Backend: "memcached"}, "", ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Open(ctx, tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer c.Close()
			if got := typeName(c); got != tt.want {
				t.Errorf("Open() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := Open(ctx, Options{Backend: BackendFile}); err == nil {
		t.Error("file backend without dir should fail")
	}
}

func typeName(c Cache) string {
	switch c.(type) {
	case NullCache:
		return "cache.NullCache"
	case *FileCache:
		return "*cache.FileCache"
	}
	return "unknown"
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	t.Cleanup(func() { retryDelay = old })

	ctx := context.Background()

	t.Run("succeeds after retries", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			if calls < 3 {
				return Retryable(errors.New("flaky"))
			}
			return nil
		})
		if err != nil {
			t.Errorf("err = %v, want nil", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return Retryable(ErrBackend)
		})
		if !errors.Is(err, ErrBackend) {
			t.Errorf("err = %v, want ErrBackend", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("non-retryable returns immediately", func(t *testing.T) {
		calls := 0
		want := errors.New("permanent")
		err := RetryWithBackoff(ctx, func() error {
			calls++
			return want
		})
		if !errors.Is(err, want) || calls != 1 {
			t.Errorf("err = %v, calls = %d; want permanent after 1 call", err, calls)
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		err := RetryWithBackoff(cctx, func() error { return Retryable(ErrBackend) })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
	err := Retryable(ErrBackend)
	if !IsRetryable(err) {
		t.Error("IsRetryable should detect wrapped error")
	}
	if !errors.Is(err, ErrBackend) {
		t.Error("Retryable should unwrap to the cause")
	}
	if IsRetryable(ErrBackend) {
		t.Error("plain error should not be retryable")
	}
}

func TestMongoConfigDefaults(t *testing.T) {
	got := MongoConfig{}.withDefaults()
	want := MongoConfig{URI: DefaultMongoURI, Database: DefaultMongoDatabase, Collection: DefaultMongoCollection}
	if got != want {
		t.Errorf("withDefaults() = %+v, want %+v", got, want)
	}
	custom := MongoConfig{URI: "mongodb://db:27017", Database: "x", Collection: "y"}
	if custom.withDefaults() != custom {
		t.Error("withDefaults should keep explicit values")
	}
}

func TestBackendErrors(t *testing.T) {
	cause := errors.New("connection refused")

	err := backendErr("redis get", cause)
	if !errors.Is(err, ErrBackend) || IsRetryable(err) {
		t.Errorf("backendErr() = %v, want ErrBackend and not retryable", err)
	}

	err = transient("mongo set", cause)
	if !errors.Is(err, ErrBackend) || !IsRetryable(err) {
		t.Errorf("transient() = %v, want retryable ErrBackend", err)
	}
	if got := err.Error(); got != "cache backend unavailable: mongo set: connection refused" {
		t.Errorf("transient().Error() = %q", got)
	}
}
