package catio

// Counter hands out 1-based line numbers. The zero value is ready to use.
type Counter struct {
	value uint64
}

// Next advances the counter and returns the new value.
func (c *Counter) Next() uint64 {
	c.value++
	return c.value
}

// Value returns the last number handed out, 0 if none.
func (c *Counter) Value() uint64 { return c.value }
