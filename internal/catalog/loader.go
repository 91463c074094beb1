package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	ioutils "github.com/handiism/discography-manager/internal/io"
	"github.com/handiism/discography-manager/internal/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxLineSize bounds a single source line, lyrics lines included.
const maxLineSize = 1024 * 1024

// Policy decides what happens to malformed track records.
type Policy int

const (
	// SkipMalformed reports the record as a warning and drops it.
	SkipMalformed Policy = iota

	// FailOnMalformed aborts the load with a *ParseError.
	FailOnMalformed
)

// String returns the policy name used in settings files.
func (p Policy) String() string {
	if p == FailOnMalformed {
		return "fail"
	}
	return "skip"
}

// Loader reads discography sources into catalogs.
type Loader struct {
	policy  Policy
	onEvent func(model.ProgressEvent)
}

// NewLoader creates a Loader. onEvent may be nil.
func NewLoader(policy Policy, onEvent func(model.ProgressEvent)) *Loader {
	return &Loader{
		policy:  policy,
		onEvent: onEvent,
	}
}

// Load opens and parses the file at path.
//
// If the file does not exist or cannot be opened, the condition is reported
// as a warning event and an empty catalog is returned with a nil error.
func (l *Loader) Load(path string) (*model.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if ioutils.IsNotFound(err) {
			l.event(model.LevelWarning, fmt.Sprintf("File '%s' not found!", path))
		} else {
			l.event(model.LevelWarning, fmt.Sprintf("Cannot open '%s': %v", path, err))
		}
		return model.NewCatalog(), nil
	}
	defer f.Close()

	c, err := l.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	l.event(model.LevelVerbose, fmt.Sprintf("Loaded %d albums, %d tracks from %s", c.Len(), c.TrackCount(), path))
	return c, nil
}

// Parse reads a discography from r.
//
// A leading byte order mark is removed. UTF-16 input is accepted when it
// starts with a BOM; otherwise the input is read as UTF-8 and invalid bytes
// are replaced with U+FFFD.
func (l *Loader) Parse(r io.Reader) (*model.Catalog, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	p := newParser()
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		err := p.feed(lineNo, scanner.Text())
		if err == nil {
			continue
		}

		var perr *ParseError
		if errors.As(err, &perr) && l.policy == SkipMalformed {
			l.event(model.LevelWarning, fmt.Sprintf("Skipping %v", perr))
			continue
		}
		return nil, err
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return p.catalog, nil
}

func (l *Loader) event(level model.ProgressLevel, message string) {
	if l.onEvent != nil {
		l.onEvent(model.ProgressEvent{Message: message, Level: level})
	}
}
