package importer

import (
	"io"
	"os"
	"sort"

	"github.com/alexanderramin/wbsimport/internal/domain"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned when no parser handles a file extension.
var ErrUnsupportedFormat = errors.New("unsupported schedule format")

// Parser turns raw schedule bytes into a Source.
type Parser interface {
	Format() string
	Parse(r io.Reader) (*Source, error)
}

// Registry maps file extensions to parsers.
type Registry struct {
	byFormat map[string]Parser
}

// NewRegistry returns a registry with the built-in XER, JSON and XLSX parsers.
func NewRegistry() *Registry {
	r := &Registry{byFormat: map[string]Parser{}}
	r.Register(XERParser{})
	r.Register(JSONParser{})
	r.Register(XLSXParser{})
	return r
}

func (r *Registry) Register(p Parser) {
	r.byFormat[p.Format()] = p
}

// ForFile returns the parser for name's extension.
func (r *Registry) ForFile(name string) (Parser, error) {
	ext := domain.FileExtension(name)
	p, ok := r.byFormat[ext]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	return p, nil
}

// Formats lists the registered extensions in sorted order.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Parse parses r using the parser registered for name's extension.
func (r *Registry) Parse(name string, in io.Reader) (*Source, error) {
	p, err := r.ForFile(name)
	if err != nil {
		return nil, err
	}
	src, err := p.Parse(in)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s file", p.Format())
	}
	return src, nil
}

// ParseFile opens path and parses it by extension.
func (r *Registry) ParseFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening schedule file")
	}
	defer f.Close()
	return r.Parse(path, f)
}
