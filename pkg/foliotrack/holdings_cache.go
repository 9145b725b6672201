package foliotrack

import "sync"

// holdingsCache memoizes full-portfolio results between writes. Any
// transaction or price write invalidates everything; holdings are always
// recomputed from the full history, never incrementally updated.
type holdingsCache struct {
	mu            sync.RWMutex
	holdings      []Holding
	summary       PortfolioSummary
	holdingsValid bool
	summaryValid  bool
}

func newHoldingsCache() *holdingsCache {
	return &holdingsCache{}
}

func (c *holdingsCache) getHoldings() ([]Holding, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.holdingsValid {
		return nil, false
	}
	copied := append([]Holding(nil), c.holdings...)
	return copied, true
}

func (c *holdingsCache) setHoldings(items []Holding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holdings = append([]Holding(nil), items...)
	c.holdingsValid = true
}

func (c *holdingsCache) getSummary() (PortfolioSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.summaryValid {
		return PortfolioSummary{}, false
	}
	return c.summary, true
}

func (c *holdingsCache) setSummary(summary PortfolioSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.summary = summary
	c.summaryValid = true
}

func (c *holdingsCache) invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holdings = nil
	c.holdingsValid = false
	c.summary = PortfolioSummary{}
	c.summaryValid = false
}
