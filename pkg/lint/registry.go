package lint

import "sync"

// globalRegistry is the single global registry for all lint rules.
// Registration order is preserved: the runner evaluates rules, and
// therefore emits diagnostics, in the order rules were registered.
var globalRegistry = &Registry{
	byID: make(map[string]RuleDef),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]RuleDef
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
// Registering an ID twice replaces the definition but keeps its position.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	if _, exists := globalRegistry.byID[rule.ID]; !exists {
		globalRegistry.order = append(globalRegistry.order, rule.ID)
	}
	globalRegistry.byID[rule.ID] = rule
}

// All returns all registered rules in registration order.
func All() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.order))
	for _, id := range globalRegistry.order {
		rules = append(rules, globalRegistry.byID[id])
	}
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.byID[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group, in registration order.
func GetByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []RuleDef
	for _, id := range globalRegistry.order {
		if rule := globalRegistry.byID[id]; rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// AllInfo returns metadata for all registered rules in registration order.
func AllInfo() []RuleInfo {
	rules := All()
	infos := make([]RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.order)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.order = nil
	globalRegistry.byID = make(map[string]RuleDef)
}
