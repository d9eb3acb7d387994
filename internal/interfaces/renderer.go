package interfaces

import "tester-report/internal/types"

// Renderer serializes an extracted report into a document.
type Renderer interface {
	// Extension is the file extension of rendered documents, without the dot.
	Extension() string
	Render(doc types.Document) (string, error)
}
