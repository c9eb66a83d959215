// Package export turns raw chat-export files (ZIP archives, JSON
// documents, rendered HTML) into normalized conversation records.
package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/nightcatdev/aiwrap/internal/model"
	"github.com/nightcatdev/aiwrap/internal/recovery"
)

// Archive members recognized inside a ZIP export, in lookup order.
const (
	manifestMember = "conversations.json"
)

var renderedMembers = []string{"chat.html", "conversations.html"}

// Extract dispatches on the file extension and returns normalized
// conversation records. It is a pure transform: the same bytes always
// produce the same records.
func Extract(filename string, data []byte) ([]model.ConversationRecord, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".zip":
		return extractArchive(data)
	case ".json":
		return ExtractJSON(data)
	case ".html", ".htm", ".txt":
		return extractRendered(data)
	default:
		return nil, fmt.Errorf("%q: %w", ext, model.ErrUnsupportedFormat)
	}
}

// extractArchive opens the bytes as a ZIP and looks for the machine
// readable manifest first, falling back to a rendered HTML member.
func extractArchive(data []byte) ([]model.ConversationRecord, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &model.ParseError{Reason: "opening archive", Err: err}
	}

	if member := findMember(zr, manifestMember); member != nil {
		content, err := readMember(member)
		if err != nil {
			return nil, err
		}
		return ExtractJSON(content)
	}

	for _, name := range renderedMembers {
		if member := findMember(zr, name); member != nil {
			content, err := readMember(member)
			if err != nil {
				return nil, err
			}
			return extractRendered(content)
		}
	}

	return nil, &model.ParseError{Reason: "archive contains no conversations.json or chat.html"}
}

// extractRendered strips markup and hands the text to the structural
// recovery cascade.
func extractRendered(data []byte) ([]model.ConversationRecord, error) {
	return recovery.Recover(VisibleText(string(data)))
}

func findMember(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if path.Base(f.Name) == name {
			return f
		}
	}
	return nil
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, &model.ParseError{Reason: "reading archive member " + f.Name, Err: err}
	}
	defer func() { _ = rc.Close() }()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, &model.ParseError{Reason: "reading archive member " + f.Name, Err: err}
	}
	return content, nil
}
