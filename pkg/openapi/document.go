package openapi

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"github.com/sarpt/openapi-utils/pkg/jsonref"
)

const (
	outputFileMode = os.FileMode(0644)
)

// Document represents single OpenAPI source file and it's content.
// A Document can be dependent on other Documents by using OpenAPI references.
type Document struct {
	Cfg                 Config
	RefDirectory        string
	FileName            string
	Root                *OpenAPI
	ReferencedDocuments map[string]*Document
}

// Config specifies document handling
type Config struct {
	InlineLocalRefs  bool
	InlineRemoteRefs bool
	KeepLocalRefs    bool
	Logger           logrus.FieldLogger
}

func (cfg Config) logger() logrus.FieldLogger {
	if cfg.Logger != nil {
		return cfg.Logger
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// referencedConfig is used for documents pulled in by remote references.
// Only the referenced object is taken from such document, so everything it points at
// has to be inlined into it: local refs would dangle in the root document,
// and copies of its remote refs would land in components of the referenced document instead of the root.
func (cfg Config) referencedConfig() Config {
	return Config{
		InlineLocalRefs:  true,
		InlineRemoteRefs: true,
		KeepLocalRefs:    true,
		Logger:           cfg.Logger,
	}
}

// NewDocument constructs new Document instance
func NewDocument(cfg Config) Document {
	return Document{
		Cfg:                 cfg,
		Root:                &OpenAPI{},
		ReferencedDocuments: make(map[string]*Document),
	}
}

// ParseDocument reads the file and resolves its references
func ParseDocument(cfg Config, path string) (Document, error) {
	doc := NewDocument(cfg)

	err := doc.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	return doc, doc.ResolveReferences()
}

// Parse unmarshalls the yaml content
func (doc Document) Parse(data []byte) error {
	err := yaml.Unmarshal(data, doc.Root)
	if err != nil {
		return fmt.Errorf("could not parse document %s: %w", doc.FileName, err)
	}

	return nil
}

// Read parses everything until EOF
func (doc Document) Read(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	return doc.Parse(data)
}

// ReadFile reads the file and sets the ref directory to the directory of the file
func (doc *Document) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc.RefDirectory, doc.FileName = filepath.Split(path)
	return doc.Parse(data)
}

// WriteFile writes content of a document to a YAML file pointed by path
func (doc Document) WriteFile(path string) error {
	data, err := doc.YAML()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, outputFileMode)
}

// Write writes content of a document to a writer
func (doc Document) Write(w io.Writer) error {
	data, err := doc.YAML()
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// YAML converts contents of a document to YAML
func (doc Document) YAML() ([]byte, error) {
	return yaml.Marshal(doc.Root)
}

// SetRefDirectory sets the directory which is used as root for refs relative paths resolution
func (doc *Document) SetRefDirectory(dir string) {
	doc.RefDirectory = dir
}

// ResolveReferences finds all references in the document and resolves them according to the Config.
// Remote references are resolved first, since a local reference can alias a remote one.
// Inlined local objects are removed only after all references are resolved, so many references can point to the same object.
func (doc Document) ResolveReferences() error {
	log := doc.Cfg.logger().WithField("document", doc.FileName)

	refs := rootObject(doc.Root).references()
	sort.SliceStable(refs, remoteFirst(refs))

	log.WithField("count", len(refs)).Debug("resolving references")

	inlined := make(map[string]OasObject)
	for _, ref := range refs {
		var err error
		switch {
		case ref.remote():
			err = doc.resolveRemote(ref)
		case doc.Cfg.InlineLocalRefs:
			err = doc.inlineLocal(ref, inlined)
		}

		if err != nil {
			return fmt.Errorf("could not resolve reference %s: %w", ref, err)
		}
	}

	if doc.Cfg.KeepLocalRefs {
		return nil
	}

	for pointer, object := range inlined {
		log.WithField("pointer", pointer).Debug("removing inlined object")

		err := object.Unset()
		if err != nil {
			return err
		}
	}

	return nil
}

func (doc Document) inlineLocal(ref reference, inlined map[string]OasObject) error {
	doc.Cfg.logger().WithField("ref", ref).Debug("inlining local reference")

	target, err := doc.lookup(ref.ref, false)
	if err != nil {
		return err
	}

	err = ref.object.Set(target.Instance())
	if err != nil {
		return err
	}

	inlined[ref.ref.Pointer] = target
	return nil
}

// resolveRemote takes the referenced object from the document ref.URI points at.
// The object is either inlined, or copied into the document under the same pointer with ref rewritten to point at the copy.
func (doc Document) resolveRemote(ref reference) error {
	log := doc.Cfg.logger().WithField("ref", ref)

	referenced, err := doc.referencedDocument(ref.ref.URI)
	if err != nil {
		return fmt.Errorf("could not get reference document: %w", err)
	}

	target, err := referenced.lookup(ref.ref, false)
	if err != nil {
		return err
	}

	if doc.Cfg.InlineRemoteRefs {
		log.Debug("inlining remote reference")
		return ref.object.Set(target.Instance())
	}

	local := ref.local()
	log.WithField("local", local).Debug("copying remote reference")

	copied, err := doc.lookup(local, true)
	if err != nil {
		return err
	}

	err = copied.Set(target.Instance())
	if err != nil {
		return err
	}

	holder, ok := ref.object.holder()
	if !ok {
		return ErrIncorrectObjectType
	}

	holder.setReference(local.String())
	return nil
}

// lookup finds the object pointed by ref pointer in the document. URI of the ref is not taken into account.
// With create, objects missing on the way are created.
func (doc Document) lookup(ref jsonref.Reference, create bool) (OasObject, error) {
	tokens, err := pointerTokens(ref)
	if err != nil {
		return OasObject{}, err
	}

	object := rootObject(doc.Root)
	for i, token := range tokens {
		object, err = object.child(token, create)
		if err != nil {
			return object, fmt.Errorf("could not find %s in %s: %w", jsonref.Pointer(tokens[:i+1]...), doc.FileName, err)
		}
	}

	return object, nil
}

// referencedDocument returns the document the uri points at, relative to the RefDirectory.
// Every document is parsed only once.
func (doc Document) referencedDocument(uri string) (*Document, error) {
	path := filepath.Join(doc.RefDirectory, filepath.FromSlash(uri))
	if referenced, ok := doc.ReferencedDocuments[path]; ok {
		return referenced, nil
	}

	doc.Cfg.logger().WithField("path", path).Debug("parsing referenced document")

	referenced, err := ParseDocument(doc.Cfg.referencedConfig(), path)
	if err != nil {
		return nil, err
	}

	doc.ReferencedDocuments[path] = &referenced
	return &referenced, nil
}
