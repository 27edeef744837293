package registry

// Store persists the ordered list of registered template filenames
type Store interface {
	Load() ([]string, error)
	Save(names []string) error
}

// Service maintains the set of templates known to the application
type Service interface {
	List() ([]string, error)
	Register(name string) (bool, error)
	Unregister(name string) error
	Contains(name string) (bool, error)
}
