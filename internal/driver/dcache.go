package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
)

// Current schema version - increment when CachedFile format changes.
const cacheSchemaVersion uint16 = 1

// DiskCache хранит находки по ключу (схема, версия инструмента, хеш
// конфигурации, хеш содержимого) на диске, так что чистый повторный
// прогон пропускает анализ. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedFile stores the analysis outcome of one file for reuse.
type CachedFile struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16
	// Tool is the producing tool version, an extra guard on top of the
	// key derivation.
	Tool string

	Findings []CachedFinding
}

// CachedFinding is a finding flattened for serialization. Spans are
// byte offsets into the file the cache key was derived from.
type CachedFinding struct {
	Rule     string
	Severity uint8
	Message  string
	Start    uint32
	End      uint32
	Notes    []CachedNote
	Fix      *CachedFix
}

type CachedNote struct {
	Start uint32
	End   uint32
	Msg   string
}

type CachedFix struct {
	Title string
	Edits []CachedEdit
}

type CachedEdit struct {
	Start   uint32
	End     uint32
	NewText string
	OldText string
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt opens a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key style.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "files".
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key style.Digest, payload *CachedFile) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A missing
// entry is (false, nil); a stale schema or foreign tool version is
// treated as a miss as well.
func (c *DiskCache) Get(key style.Digest, tool string, out *CachedFile) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion || out.Tool != tool {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey derives the composite cache key. The schema and tool
// versions participate via a digest of their own so that any change
// invalidates every entry.
func cacheKey(tool string, cfgHash style.Digest, contentHash [32]byte) style.Digest {
	ver := sha256.Sum256(fmt.Appendf(nil, "sgstyle/v%d/%s", cacheSchemaVersion, tool))
	return style.Combine(style.Digest(ver), cfgHash, style.Digest(contentHash))
}

// findingsToCache flattens bag items for serialization.
func findingsToCache(items []diag.Finding) []CachedFinding {
	out := make([]CachedFinding, 0, len(items))
	for i := range items {
		f := &items[i]
		cf := CachedFinding{
			Rule:     f.Rule,
			Severity: uint8(f.Severity),
			Message:  f.Message,
			Start:    f.Span.Start,
			End:      f.Span.End,
		}
		for _, n := range f.Notes {
			cf.Notes = append(cf.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		if f.Fix != nil {
			cfix := &CachedFix{Title: f.Fix.Title}
			for _, e := range f.Fix.Edits {
				cfix.Edits = append(cfix.Edits, CachedEdit{
					Start:   e.Span.Start,
					End:     e.Span.End,
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			cf.Fix = cfix
		}
		out = append(out, cf)
	}
	return out
}

// cacheToFindings rebuilds findings against the given file ID. Offsets
// stay valid because the key includes the content hash.
func cacheToFindings(fileID source.FileID, cached []CachedFinding) []diag.Finding {
	out := make([]diag.Finding, 0, len(cached))
	for _, cf := range cached {
		f := diag.Finding{
			Rule:     cf.Rule,
			Severity: diag.Severity(cf.Severity),
			Message:  cf.Message,
			Span:     source.Span{File: fileID, Start: cf.Start, End: cf.End},
		}
		for _, n := range cf.Notes {
			f.Notes = append(f.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: n.Start, End: n.End},
				Msg:  n.Msg,
			})
		}
		if cf.Fix != nil {
			fx := &diag.Fix{Title: cf.Fix.Title}
			for _, e := range cf.Fix.Edits {
				fx.Edits = append(fx.Edits, diag.TextEdit{
					Span:    source.Span{File: fileID, Start: e.Start, End: e.End},
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			f.Fix = fx
		}
		out = append(out, f)
	}
	return out
}
