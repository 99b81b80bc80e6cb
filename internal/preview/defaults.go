package preview

var defaultResolver *Resolver

// SetDefaultResolver assigns the global resolver used by the application
// commands.
func SetDefaultResolver(r *Resolver) {
	defaultResolver = r
}

// DefaultResolver returns the global resolver if one has been configured.
func DefaultResolver() *Resolver {
	return defaultResolver
}
