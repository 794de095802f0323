package engine

// CreateResult represents the result of a create operation.
type CreateResult struct {
	// Path is the file that now exists, empty
	Path string `json:"path"`

	// RemovedFiles lists ancestor files deleted to make room for directories,
	// in root-to-leaf order
	RemovedFiles []string `json:"removedFiles,omitempty"`

	// CreatedDirectories lists ancestors that were missing, or were files,
	// before the walk, in root-to-leaf order
	CreatedDirectories []string `json:"createdDirectories,omitempty"`

	// RemovedDirectory is set when a directory at Path was removed recursively
	RemovedDirectory string `json:"removedDirectory,omitempty"`

	// Replaced is true when something already existed at Path
	Replaced bool `json:"replaced"`
}
