package netpbm

// cursor is an explicit read position over an in-memory byte slice. Header
// and pixel parsing advance the cursor through named operations so that
// whitespace skipping, comment skipping, numeric reads, and raw byte reads
// are each individually testable instead of implicit stream side effects.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

// eof reports whether every input byte has been consumed.
func (c *cursor) eof() bool {
	return c.pos >= len(c.data)
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// peek returns the next byte without consuming it. The second return is
// false at end of input.
func (c *cursor) peek() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	return c.data[c.pos], true
}

// readByte consumes and returns the next byte. The second return is false at
// end of input.
func (c *cursor) readByte() (byte, bool) {
	if c.eof() {
		return 0, false
	}
	b := c.data[c.pos]
	c.pos++
	return b, true
}

// readLine consumes up to and including the next newline and returns the
// line without its terminator. A trailing carriage return is stripped.
func (c *cursor) readLine() string {
	start := c.pos
	for !c.eof() && c.data[c.pos] != '\n' {
		c.pos++
	}
	end := c.pos
	if !c.eof() {
		c.pos++ // consume the newline
	}
	if end > start && c.data[end-1] == '\r' {
		end--
	}
	return string(c.data[start:end])
}

// skipLine discards the remainder of the current line, newline included.
func (c *cursor) skipLine() {
	for !c.eof() && c.data[c.pos] != '\n' {
		c.pos++
	}
	if !c.eof() {
		c.pos++
	}
}

// skipWhitespace advances past consecutive ASCII whitespace bytes.
func (c *cursor) skipWhitespace() {
	for !c.eof() && isSpace(c.data[c.pos]) {
		c.pos++
	}
}

// readUint skips leading whitespace and parses an unsigned ASCII decimal.
// The second return is false when no digit is found at the cursor, which
// callers disambiguate into a grammar error or a truncation error depending
// on whether the cursor hit end of input.
func (c *cursor) readUint() (int, bool) {
	c.skipWhitespace()
	start := c.pos
	value := 0
	for !c.eof() && isDigit(c.data[c.pos]) {
		value = value*10 + int(c.data[c.pos]-'0')
		if value > maxHeaderValue {
			// Clamp instead of overflowing; the header validator rejects
			// anything this large anyway.
			value = maxHeaderValue
		}
		c.pos++
	}
	if c.pos == start {
		return 0, false
	}
	return value, true
}

// maxHeaderValue bounds any single parsed decimal so readUint cannot
// overflow int on absurd inputs.
const maxHeaderValue = 1 << 30

// isSpace matches the ASCII whitespace set the Netpbm grammar uses as token
// separators (same set as C's isspace).
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
