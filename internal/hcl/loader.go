package hcl

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/memgridgo/internal/ctxlog"
	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/fsutil"
	"github.com/specialistvlad/memgridgo/internal/schema"
)

// Extension is the file extension the loader picks up.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the design.Loader interface.
type Loader struct{}

var _ design.Loader = (*Loader)(nil)

// NewLoader creates a new HCL document loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths. A broken file does not stop
// the others from loading; all problems are returned together as a
// multierror alongside the documents that did load.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]design.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var docs []design.Document
	var result *multierror.Error

	for _, file := range files {
		fileDocs, err := l.loadFile(ctx, parser, file)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		docs = append(docs, fileDocs...)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "documents", len(docs))
	return docs, result.ErrorOrNil()
}

func (l *Loader) loadFile(ctx context.Context, parser *hclparse.Parser, file string) ([]design.Document, error) {
	ctx = ctxlog.With(ctx, "file", file)
	ctxlog.FromContext(ctx).Debug("Parsing HCL file.")

	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	var root schema.File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	t := &translator{src: hclFile.Bytes}
	var docs []design.Document
	for _, c := range root.Components {
		docs = append(docs, t.component(c))
	}
	for _, d := range root.Designs {
		des := t.design(d)
		l.checkUUIDs(ctx, des)
		docs = append(docs, des)
	}
	for _, c := range root.Configurations {
		docs = append(docs, t.configuration(c))
	}

	if t.errs.HasErrors() {
		return nil, fmt.Errorf("invalid documents in %s: %w", file, t.errs)
	}
	return docs, nil
}

// checkUUIDs warns about instance UUIDs that are not RFC 4122 formatted.
// They still become part of memory identifiers verbatim.
func (l *Loader) checkUUIDs(ctx context.Context, d *design.Design) {
	logger := ctxlog.FromContext(ctx)
	for _, inst := range d.ComponentInstances {
		if inst.UUID == "" {
			continue
		}
		if _, err := uuid.Parse(inst.UUID); err != nil {
			logger.Warn("Component instance has a malformed uuid.",
				"design", d.VLNV.String(), "instance", inst.Name, "uuid", inst.UUID)
		}
	}
}
