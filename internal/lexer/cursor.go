package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"sgstyle/internal/source"
)

// Cursor — байтовая позиция в содержимом одного файла. Держит срез
// напрямую: сканерам не нужен *source.File, только байты и FileID для
// спанов.
type Cursor struct {
	src  []byte
	file source.FileID
	Off  uint32
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{src: f.Content, file: f.ID}
}

// EOF проверяет, достигнут ли конец файла.
func (c *Cursor) EOF() bool {
	return c.Off >= uint32(len(c.src))
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 returns the current and the following byte; ok is false when
// fewer than two bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= uint32(len(c.src)) {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// Bump consumes and returns the current byte; 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.src[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatWhile advances while pred holds for the current byte.
func (c *Cursor) EatWhile(pred func(byte) bool) {
	for !c.EOF() && pred(c.src[c.Off]) {
		c.Off++
	}
}

// Rest returns the unread tail of the content.
func (c *Cursor) Rest() []byte {
	return c.src[c.Off:]
}

// Mark — метка, чтобы быстро получать Span читаемого фрагмента.
type Mark uint32

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// Reset возвращает курсор назад к метке.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// Slice returns the bytes between the mark and the current position.
func (c *Cursor) Slice(m Mark) []byte {
	return c.src[m:c.Off]
}

// SpanFrom получает Span фрагмента от метки до текущей позиции.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: uint32(m), End: c.Off}
}
