package ports

// ConfigLocator finds the directory holding starapp.yaml, starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}
