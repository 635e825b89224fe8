// Package keystore writes uploaded tenant keystores to the local filesystem.
//
// Files land at <root>/<companyShortName>/<filename> and are referenced by the
// root-relative path "/<companyShortName>/<filename>". Concurrent uploads of
// the same tenant and filename are not serialized; the last writer wins and a
// reader may observe a partially written file.
package keystore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"credmgr/internal/platform/tracer"
)

var (
	// ErrInvalidName is returned for tenant or file names that cannot be used
	// as a single path element.
	ErrInvalidName = errors.New("invalid keystore path element")
)

// FileStore saves keystores under a root directory.
type FileStore struct {
	root   string
	tracer tracer.Tracer
}

type Option func(*FileStore)

func WithTracer(t tracer.Tracer) Option {
	return func(s *FileStore) {
		s.tracer = t
	}
}

// NewFileStore returns a store rooted at root. The root is created lazily.
func NewFileStore(root string, opts ...Option) *FileStore {
	s := &FileStore{root: root, tracer: tracer.NewNoop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes r to <root>/<tenant>/<base(filename)>, creating the tenant
// directory when absent and truncating any existing file of that name.
// It returns the reference "/<tenant>/<base(filename)>".
func (s *FileStore) Save(ctx context.Context, tenant, filename string, r io.Reader) (ref string, err error) {
	name := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	_, span := s.tracer.Start(ctx, tracer.SpanKeystoreSave,
		tracer.String(tracer.AttrTenant, tenant),
		tracer.String(tracer.AttrFilename, name),
	)
	defer func() { span.End(err) }()

	if !validElement(tenant) || !validElement(name) {
		return "", fmt.Errorf("tenant %q file %q: %w", tenant, filename, ErrInvalidName)
	}

	dir := filepath.Join(s.root, tenant)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create tenant keystore dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return "", fmt.Errorf("open keystore file: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("write keystore file: %w", err)
	}
	span.SetAttributes(tracer.Int64(tracer.AttrBytes, n))

	return path.Join("/", tenant, name), nil
}

// CheckWritable verifies the root can be created and written to.
func (s *FileStore) CheckWritable(_ context.Context) error {
	if err := os.MkdirAll(s.root, 0o750); err != nil {
		return err
	}
	f, err := os.CreateTemp(s.root, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func validElement(name string) bool {
	return name != "" && name != "." && name != ".." && name != "/" &&
		!strings.ContainsAny(name, `/\`)
}
