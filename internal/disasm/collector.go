package disasm

// Collector is a Sink that keeps all records in memory.
type Collector struct {
	Records []Record
}

// Write appends the record.
func (c *Collector) Write(rec Record) error {
	c.Records = append(c.Records, rec)
	return nil
}

// Addresses returns the addresses of all collected records in traversal order.
func (c *Collector) Addresses() []int {
	addresses := make([]int, len(c.Records))
	for i, rec := range c.Records {
		addresses[i] = rec.Address
	}
	return addresses
}
