package exec

// config holds the configuration for command execution.
// It distinguishes between global settings (set at creation time) and local settings (set per-execution).
type config struct {
	// Global settings (set at creation time)
	globalEnv         map[string]string
	globalInheritEnv  bool
	globalInteractive bool

	// Local settings (set per-execution, override global)
	localEnv         map[string]string
	localInheritEnv  *bool
	localInteractive *bool
}

// newConfig creates a new configuration with default values.
func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	clone := &config{
		globalEnv:         make(map[string]string, len(c.globalEnv)),
		globalInheritEnv:  c.globalInheritEnv,
		globalInteractive: c.globalInteractive,
		localEnv:          make(map[string]string, len(c.localEnv)),
		localInheritEnv:   cloneBool(c.localInheritEnv),
		localInteractive:  cloneBool(c.localInteractive),
	}

	for k, v := range c.globalEnv {
		clone.globalEnv[k] = v
	}
	for k, v := range c.localEnv {
		clone.localEnv[k] = v
	}

	return clone
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	val := *b
	return &val
}

func effective(local *bool, global bool) bool {
	if local != nil {
		return *local
	}
	return global
}

// effectiveEnv returns the effective environment variables, merging global and local settings.
// Local settings override global settings.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))

	for k, v := range c.globalEnv {
		env[k] = v
	}
	for k, v := range c.localEnv {
		env[k] = v
	}

	return env
}

func (c *config) effectiveInheritEnv() bool {
	return effective(c.localInheritEnv, c.globalInheritEnv)
}

func (c *config) effectiveInteractive() bool {
	return effective(c.localInteractive, c.globalInteractive)
}

// resetLocal resets all local settings.
// This should be called after each Run() to ensure local settings don't carry over.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localInheritEnv = nil
	c.localInteractive = nil
}
