package scene

import "log"

// ManagerOption is a function that configures a scene Manager during construction.
type ManagerOption func(*manager)

// WithTextureDirectory is an option builder that sets the directory the scene
// builder loads its texture images from. Defaults to "textures".
//
// Parameters:
//   - dir: the texture directory path
//
// Returns:
//   - ManagerOption: a function that applies the directory option to a manager
func WithTextureDirectory(dir string) ManagerOption {
	return func(m *manager) {
		m.textureDir = dir
	}
}

// WithLogger is an option builder that sets the diagnostic sink for texture
// load reporting. Defaults to log.Default().
//
// Parameters:
//   - logger: the logger to report diagnostics to
//
// Returns:
//   - ManagerOption: a function that applies the logger option to a manager
func WithLogger(logger *log.Logger) ManagerOption {
	return func(m *manager) {
		m.logger = logger
	}
}

// WithTextureRegistry is an option builder that replaces the default
// GL-backed texture registry. Intended for tests that substitute a registry
// built on a recording backend.
//
// Parameters:
//   - registry: the texture registry to use
//
// Returns:
//   - ManagerOption: a function that applies the registry option to a manager
func WithTextureRegistry(registry TextureRegistry) ManagerOption {
	return func(m *manager) {
		m.textures = registry
	}
}
