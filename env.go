package appdirs

import (
	"os"
	"runtime"
)

// Environment abstracts the ambient state directory resolution depends on.
// The default implementation reads the real process environment; tests
// substitute a fake to simulate arbitrary platform/environment combinations.
type Environment interface {
	// Getenv returns the value of the named environment variable,
	// or "" when unset.
	Getenv(key string) string

	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)

	// GOOS returns the operating system family string, normally
	// runtime.GOOS.
	GOOS() string
}

// osEnvironment is the os/runtime backed Environment.
type osEnvironment struct{}

func (osEnvironment) Getenv(key string) string     { return os.Getenv(key) }
func (osEnvironment) UserHomeDir() (string, error) { return os.UserHomeDir() }
func (osEnvironment) GOOS() string                 { return runtime.GOOS }

// Resolver computes application directories against an injected
// Environment. The zero-cost default used by the package-level functions
// reads the real process environment; nothing is cached between calls, so
// results always reflect the environment at call time.
type Resolver struct {
	env Environment
}

// NewResolver returns a Resolver backed by env. A nil env selects the
// real process environment.
func NewResolver(env Environment) *Resolver {
	if env == nil {
		env = osEnvironment{}
	}
	return &Resolver{env: env}
}

// defaultResolver backs the package-level directory functions.
var defaultResolver = NewResolver(nil)
