package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/cooldudemcgeexl/crust/internal/source"
	"github.com/cooldudemcgeexl/crust/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const diskCacheSchemaVersion uint16 = 1

// TokenCache хранит результаты сканирования на диске, ключ: хэш содержимого.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is a token without its file id.
type CachedToken struct {
	Kind  uint8
	Text  string
	Start uint32
	End   uint32
}

// TokenPayload is the on-disk record for one scanned file.
type TokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Path   string
	Tokens []CachedToken
}

// OpenTokenCache initializes a cache under $XDG_CACHE_HOME/<app>/tokens
// (falling back to ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTokenCache(filepath.Join(base, app))
}

// NewTokenCache opens a cache rooted at dir.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(filepath.Join(dir, "tokens"), 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "tokens", hex.EncodeToString(key[:])+".mp")
}

// Put stores toks for file. Spans are saved relative to the file, so a hit
// can be rebased onto any FileSet.
func (c *TokenCache) Put(file *source.File, toks []token.Token) error {
	if c == nil || file == nil {
		return nil
	}
	payload := &TokenPayload{
		Schema: diskCacheSchemaVersion,
		Path:   file.Path,
		Tokens: make([]CachedToken, len(toks)),
	}
	for i, tok := range toks {
		payload.Tokens[i] = CachedToken{Kind: uint8(tok.Kind), Text: tok.Text, Start: tok.Span.Start, End: tok.Span.End}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(file.Hash))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // после Rename уже не существует

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get loads the cached tokens of file. A missing entry or one written with
// another schema is a miss, not an error.
func (c *TokenCache) Get(file *source.File) ([]token.Token, bool, error) {
	if c == nil || file == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(cacheKey(file.Hash)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload TokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}

	toks := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		toks[i] = token.Token{
			Kind: token.Kind(ct.Kind),
			Text: ct.Text,
			Span: source.Span{File: file.ID, Start: ct.Start, End: ct.End},
		}
	}
	return toks, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	tokens := filepath.Join(c.dir, "tokens")
	old := tokens + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(tokens, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(tokens, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
