package meta

import "io"

// ReadMetadata extracts metadata from a file
func ReadMetadata(filename string) (*Block, error) {
	return NewExtractor(nil).ReadFile(filename)
}

// ReadMetadataFrom extracts metadata from an io.ReadSeeker
func ReadMetadataFrom(r io.ReadSeeker) (*Block, error) {
	return NewExtractor(nil).ReadFrom(r)
}
