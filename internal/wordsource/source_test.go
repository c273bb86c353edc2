package wordsource

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"
)

// attemptLog records which provider paths a test server was asked for.
type attemptLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *attemptLog) record(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
}

func (l *attemptLog) take() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	paths := l.paths
	l.paths = nil
	return paths
}

// testProviders builds n providers named p0..p(n-1), all pointing at the
// given server and using the bare-array parser.
func testProviders(serverURL string, n int) []Provider {
	providers := make([]Provider, n)
	for i := range providers {
		name := fmt.Sprintf("p%d", i)
		providers[i] = Provider{
			Name: name,
			URL: func(length int) string {
				return fmt.Sprintf("%s/%s?length=%d", serverURL, name, length)
			},
			Parse: parseWordArray,
		}
	}
	return providers
}

func newTestSource(t *testing.T, handler http.HandlerFunc, store WordStore) (*Source, *attemptLog) {
	t.Helper()

	log := &attemptLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	src := New(Config{
		Providers:         testProviders(server.URL, 4),
		Timeout:           time.Second,
		RequestsPerSecond: 1000,
		Client:            server.Client(),
		Store:             store,
	})
	return src, log
}

func failAll(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
}

func TestResolveSuccessShortCircuits(t *testing.T) {
	src, log := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["cat"]`)
	}, nil)

	word := src.Resolve(context.Background(), 10)
	if word != "cat" {
		t.Fatalf("Resolve = %q, want %q", word, "cat")
	}
	if attempts := log.take(); len(attempts) != 1 || attempts[0] != "/p0" {
		t.Fatalf("attempts = %v, want [/p0]", attempts)
	}
}

func TestResolveRoundRobinAcrossCalls(t *testing.T) {
	src, log := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["cat"]`)
	}, nil)

	ctx := context.Background()

	// Each successful call consumes one attempt, so the next call must
	// start at the following provider.
	src.Resolve(ctx, 10)
	if attempts := log.take(); !slices.Equal(attempts, []string{"/p0"}) {
		t.Fatalf("first call attempts = %v, want [/p0]", attempts)
	}
	src.Resolve(ctx, 10)
	if attempts := log.take(); !slices.Equal(attempts, []string{"/p1"}) {
		t.Fatalf("second call attempts = %v, want [/p1]", attempts)
	}
}

func TestResolveSweepsAllProvidersOnFailure(t *testing.T) {
	src, log := newTestSource(t, failAll, nil)

	ctx := context.Background()
	want := []string{"/p0", "/p1", "/p2", "/p3"}

	word := src.Resolve(ctx, 10)
	if attempts := log.take(); !slices.Equal(attempts, want) {
		t.Fatalf("attempts = %v, want %v", attempts, want)
	}
	if !slices.Contains(builtinWords, word) {
		t.Fatalf("Resolve = %q, want a built-in dictionary word", word)
	}
	if len(word) > 10 {
		t.Fatalf("Resolve = %q, exceeds bound 10", word)
	}

	// A full failed sweep leaves the cursor back at the start.
	src.Resolve(ctx, 10)
	if attempts := log.take(); !slices.Equal(attempts, want) {
		t.Fatalf("second sweep attempts = %v, want %v", attempts, want)
	}
}

func TestResolveSkipsFailingProvidersWithinCall(t *testing.T) {
	src, log := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/p0" || r.URL.Path == "/p1" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `["fern"]`)
	}, nil)

	word := src.Resolve(context.Background(), 10)
	if word != "fern" {
		t.Fatalf("Resolve = %q, want %q", word, "fern")
	}
	if attempts := log.take(); !slices.Equal(attempts, []string{"/p0", "/p1", "/p2"}) {
		t.Fatalf("attempts = %v, want [/p0 /p1 /p2]", attempts)
	}
}

func TestResolveSkipsOversizedWords(t *testing.T) {
	src, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/p0" {
			fmt.Fprint(w, `["extraordinarily"]`)
			return
		}
		fmt.Fprint(w, `["fern"]`)
	}, nil)

	word := src.Resolve(context.Background(), 8)
	if word != "fern" {
		t.Fatalf("Resolve = %q, want %q", word, "fern")
	}
}

func TestResolveAbsorbsMalformedBodies(t *testing.T) {
	src, _ := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>service unavailable</html>`)
	}, nil)

	word := src.Resolve(context.Background(), 10)
	if !slices.Contains(builtinWords, word) {
		t.Fatalf("Resolve = %q, want a built-in dictionary word", word)
	}
}

func TestResolveTimeoutFallsThrough(t *testing.T) {
	log := &attemptLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.record(r.URL.Path)
		time.Sleep(100 * time.Millisecond)
		fmt.Fprint(w, `["cat"]`)
	}))
	defer server.Close()

	src := New(Config{
		Providers:         testProviders(server.URL, 4),
		Timeout:           5 * time.Millisecond,
		RequestsPerSecond: 1000,
		Client:            server.Client(),
	})

	word := src.Resolve(context.Background(), 10)
	if !slices.Contains(builtinWords, word) {
		t.Fatalf("Resolve = %q, want a dictionary fallback after timeouts", word)
	}
}

func TestResolveSyntheticWhenDictionaryTooLong(t *testing.T) {
	src, _ := newTestSource(t, failAll, nil)

	// Every built-in word is at least 3 letters, so a bound of 2 forces
	// the synthetic generator.
	word := src.Resolve(context.Background(), 2)
	if len(word) != 2 {
		t.Fatalf("Resolve = %q, want exactly 2 characters", word)
	}
	if !strings.ContainsRune(consonants, rune(word[0])) {
		t.Errorf("synthetic word %q does not start with a consonant", word)
	}
	if !strings.ContainsRune(vowels, rune(word[1])) {
		t.Errorf("synthetic word %q second letter is not a vowel", word)
	}
}

func TestResolveZeroMaxLength(t *testing.T) {
	src, log := newTestSource(t, failAll, nil)

	if word := src.Resolve(context.Background(), 0); word != "" {
		t.Fatalf("Resolve(0) = %q, want empty string", word)
	}
	if attempts := log.take(); len(attempts) != 0 {
		t.Fatalf("Resolve(0) made provider attempts: %v", attempts)
	}
}

type fakeStore struct {
	mu    sync.Mutex
	words []string
	calls int
}

func (f *fakeStore) ListWords(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.words, nil
}

func TestResolveMergesCustomDictionary(t *testing.T) {
	store := &fakeStore{words: []string{"xy"}}
	src, _ := newTestSource(t, failAll, store)

	ctx := context.Background()

	// The only word short enough is the custom one.
	if word := src.Resolve(ctx, 2); word != "xy" {
		t.Fatalf("Resolve = %q, want custom word %q", word, "xy")
	}

	// The merged list is cached, so a second resolution must not hit the
	// store again.
	src.Resolve(ctx, 2)
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.calls != 1 {
		t.Fatalf("store queried %d times, want 1", store.calls)
	}
}
