// Package archive extracts the primary tabular data file from a downloaded
// zip archive.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoTabularFile = errors.New("no tabular data file in archive")

// The ECB publishes its rates as a single csv per zip; the data file is
// expected to be the first matching member in listing order.
var tabularExtensions = []string{".csv"}

func hasTabularExtension(name string) bool {
	lower := strings.ToLower(name)

	for _, ext := range tabularExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}

	return false
}

// ListMembers returns the names of all archive members in listing order.
func ListMembers(zipBytes []byte) ([]string, error) {
	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))

	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	names := make([]string, 0, len(reader.File))

	for _, member := range reader.File {
		names = append(names, member.Name)
	}

	return names, nil
}

// FirstTabularMember returns the decompressed bytes of the first member
// whose name ends in a recognized tabular extension, case-insensitively.
// Selection follows the archive's listing order, not lexicographic order.
func FirstTabularMember(zipBytes []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))

	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	for _, member := range reader.File {
		if !hasTabularExtension(member.Name) {
			continue
		}

		file, err := member.Open()

		if err != nil {
			return nil, fmt.Errorf("opening archive member %s: %w", member.Name, err)
		}

		defer file.Close()

		content, err := io.ReadAll(file)

		if err != nil {
			return nil, fmt.Errorf("reading archive member %s: %w", member.Name, err)
		}

		return content, nil
	}

	names := make([]string, 0, len(reader.File))

	for _, member := range reader.File {
		names = append(names, member.Name)
	}

	return nil, fmt.Errorf("%w: members %v", ErrNoTabularFile, names)
}
