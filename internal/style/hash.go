package style

import (
	"crypto/sha256"
	"fmt"
	"io"
	"sort"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Hash builds a deterministic digest of the configuration for use as a
// cache-key component. Map entries are folded in sorted key order, so
// equal configurations hash equally regardless of construction order.
func Hash(c Config) Digest {
	h := sha256.New()
	fmt.Fprintf(h, "w=%d;iw=%d;it=%t;", c.MaxWidth, c.Indent.Width, c.Indent.Tabs)

	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rc := c.Rules[name]
		fmt.Fprintf(h, "rule=%s;", name)
		if rc.Enabled != nil {
			fmt.Fprintf(h, "enabled=%t;", *rc.Enabled)
		}
		if rc.Severity != nil {
			fmt.Fprintf(h, "severity=%s;", *rc.Severity)
		}
		writeCanonical(h, rc.Options)
	}

	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Combine строит составной хеш: H( d1 || d2 ... ). Порядок аргументов
// должен быть детерминированным.
func Combine(parts ...Digest) Digest {
	h := sha256.New()
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// writeCanonical сериализует свободные опции детерминированно: ключи
// таблиц сортируются, вложенность сохраняется.
func writeCanonical(w io.Writer, v any) {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s={", k)
			writeCanonical(w, x[k])
			fmt.Fprintf(w, "};")
		}
	case []any:
		for _, e := range x {
			writeCanonical(w, e)
			fmt.Fprintf(w, ",")
		}
	default:
		fmt.Fprintf(w, "%T:%v", v, v)
	}
}
