package engine

// CreateRequest represents a request to create an empty file.
type CreateRequest struct {
	// Path is the absolute, clean target path (see Resolve)
	Path string

	// Overwrite allows destroying files and directories that block the target
	Overwrite bool
}
