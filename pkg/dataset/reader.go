package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/topiclass/post-classifier/pkg/classifier"
)

// Default column names for labeled post files.
const (
	DefaultTagColumn     = "tag"
	DefaultContentColumn = "content"
)

// Reader streams labeled posts out of a CSV file with a header row. The
// header must name a tag column and a content column; every other column is
// ignored. Records come back in file order.
type Reader struct {
	file       *os.File
	csv        *csv.Reader
	path       string
	tagIdx     int
	contentIdx int
	record     int
}

// Open opens a post file and locates the tag and content columns in its
// header. Empty column names fall back to the defaults.
func Open(path, tagColumn, contentColumn string) (*Reader, error) {
	if tagColumn == "" {
		tagColumn = DefaultTagColumn
	}
	if contentColumn == "" {
		contentColumn = DefaultContentColumn
	}
	if tagColumn == contentColumn {
		return nil, fmt.Errorf("dataset: tag and content columns are both %q", tagColumn)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}

	r := csv.NewReader(file)
	header, err := r.Read()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read header of %s: %v", path, err)
	}

	tagIdx, contentIdx := -1, -1
	for i, name := range header {
		switch name {
		case tagColumn:
			tagIdx = i
		case contentColumn:
			contentIdx = i
		}
	}
	if tagIdx < 0 {
		file.Close()
		return nil, fmt.Errorf("%s: missing required column %q", path, tagColumn)
	}
	if contentIdx < 0 {
		file.Close()
		return nil, fmt.Errorf("%s: missing required column %q", path, contentColumn)
	}

	return &Reader{
		file:       file,
		csv:        r,
		path:       path,
		tagIdx:     tagIdx,
		contentIdx: contentIdx,
	}, nil
}

// Next returns the next post in file order, or io.EOF after the last one.
func (r *Reader) Next() (classifier.Post, error) {
	record, err := r.csv.Read()
	if errors.Is(err, io.EOF) {
		return classifier.Post{}, io.EOF
	}
	if err != nil {
		return classifier.Post{}, fmt.Errorf("%s: record %d: %v", r.path, r.record+1, err)
	}
	r.record++

	return classifier.Post{
		Label:   record[r.tagIdx],
		Content: record[r.contentIdx],
	}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
