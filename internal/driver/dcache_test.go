package driver

import (
	"testing"

	"sgstyle/internal/diag"
	"sgstyle/internal/source"
	"sgstyle/internal/style"
)

func testFindings() []diag.Finding {
	return []diag.Finding{
		{
			Rule:     "line-length",
			Severity: diag.SevWarning,
			Message:  "line is 120 columns wide (limit 100)",
			Span:     source.Span{File: 3, Start: 10, End: 130},
			Notes: []diag.Note{
				{Span: source.Span{File: 3, Start: 10, End: 11}, Msg: "line starts here"},
			},
		},
		{
			Rule:     diag.RuleWhitespace,
			Severity: diag.SevWarning,
			Message:  "missing space",
			Span:     source.Span{File: 3, Start: 5, End: 5},
			Fix: &diag.Fix{
				Title: "insert space",
				Edits: []diag.TextEdit{
					{Span: source.Span{File: 3, Start: 5, End: 5}, NewText: " "},
				},
			},
		},
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	key := cacheKey("v1", style.Hash(style.Default()), [32]byte{1, 2, 3})

	payload := &CachedFile{
		Schema:   cacheSchemaVersion,
		Tool:     "v1",
		Findings: findingsToCache(testFindings()),
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out CachedFile
	ok, err := cache.Get(key, "v1", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get reported a miss for a stored key")
	}

	// Спаны пересаживаются на идентификатор текущей сессии.
	got := cacheToFindings(7, out.Findings)
	if len(got) != 2 {
		t.Fatalf("got %d findings, want 2", len(got))
	}
	first := got[0]
	if first.Rule != "line-length" || first.Severity != diag.SevWarning {
		t.Errorf("first = %s/%v", first.Rule, first.Severity)
	}
	if first.Span.File != 7 || first.Span.Start != 10 || first.Span.End != 130 {
		t.Errorf("first span = %+v", first.Span)
	}
	if len(first.Notes) != 1 || first.Notes[0].Span.File != 7 || first.Notes[0].Msg != "line starts here" {
		t.Errorf("first notes = %+v", first.Notes)
	}
	second := got[1]
	if second.Fix == nil {
		t.Fatal("fix lost in round trip")
	}
	if second.Fix.Title != "insert space" {
		t.Errorf("fix title = %q", second.Fix.Title)
	}
	if len(second.Fix.Edits) != 1 || second.Fix.Edits[0].Span.File != 7 || second.Fix.Edits[0].NewText != " " {
		t.Errorf("fix edits = %+v", second.Fix.Edits)
	}
}

func TestDiskCacheMissOnEmptyDir(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	var out CachedFile
	ok, err := cache.Get(cacheKey("v1", style.Digest{}, [32]byte{}), "v1", &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("hit on an empty cache")
	}
}

func TestDiskCacheRejectsForeignEntries(t *testing.T) {
	cases := []struct {
		name    string
		payload CachedFile
	}{
		{"tool mismatch", CachedFile{Schema: cacheSchemaVersion, Tool: "other"}},
		{"schema mismatch", CachedFile{Schema: cacheSchemaVersion + 1, Tool: "v1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cache, err := OpenDiskCacheAt(t.TempDir())
			if err != nil {
				t.Fatalf("OpenDiskCacheAt: %v", err)
			}
			key := cacheKey("v1", style.Digest{}, [32]byte{9})
			if err := cache.Put(key, &tc.payload); err != nil {
				t.Fatalf("Put: %v", err)
			}
			var out CachedFile
			ok, err := cache.Get(key, "v1", &out)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if ok {
				t.Fatal("foreign entry served as a hit")
			}
		})
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	key := cacheKey("v1", style.Digest{}, [32]byte{5})
	payload := &CachedFile{Schema: cacheSchemaVersion, Tool: "v1"}
	if err := cache.Put(key, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var out CachedFile
	ok, err := cache.Get(key, "v1", &out)
	if err != nil {
		t.Fatalf("Get after DropAll: %v", err)
	}
	if ok {
		t.Fatal("entry survived DropAll")
	}
}

func TestCacheKeySeparatesInputs(t *testing.T) {
	cfg := style.Hash(style.Default())
	wide := style.Default()
	wide.MaxWidth = 120

	base := cacheKey("v1", cfg, [32]byte{1})
	cases := []struct {
		name string
		key  style.Digest
	}{
		{"tool", cacheKey("v2", cfg, [32]byte{1})},
		{"config", cacheKey("v1", style.Hash(wide), [32]byte{1})},
		{"content", cacheKey("v1", cfg, [32]byte{2})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.key == base {
				t.Fatal("key collision")
			}
		})
	}
	if again := cacheKey("v1", cfg, [32]byte{1}); again != base {
		t.Fatal("key not deterministic")
	}
}
