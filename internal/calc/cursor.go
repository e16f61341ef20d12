package calc

// cursor is the parser's position in the token stream: the token being looked
// at plus the tokens that follow it. The grammar never looks further ahead
// than current.
type cursor struct {
	current *Token
	queue   []*Token
}

func newCursor(tokens []*Token) *cursor {
	c := &cursor{current: noneToken, queue: tokens}
	c.advance()
	return c
}

// advance installs the next queued token as current (the sentinel once the
// queue is drained) and hands back the token it replaced.
func (c *cursor) advance() *Token {
	next := noneToken
	if len(c.queue) > 0 {
		next = c.queue[0]
		c.queue = c.queue[1:]
	}
	prev := c.current
	c.current = next
	return prev
}

func (c *cursor) isEmpty() bool {
	return c.current.Typ == NONE
}

// takeIf removes current if it satisfies pred, leaving the sentinel in its
// slot. A token obtained this way is either consumed with advance or restored
// with putBack.
func (c *cursor) takeIf(pred func(*Token) bool) *Token {
	if !pred(c.current) {
		return nil
	}
	tok := c.current
	c.current = noneToken
	return tok
}

func (c *cursor) putBack(tok *Token) {
	c.current = tok
}

func (c *cursor) is(typ TokenType) bool {
	return c.current.Typ == typ
}
