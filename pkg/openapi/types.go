package openapi

// refHolder is implemented by objects which can be replaced by a "$ref".
type refHolder interface {
	reference() string
	setReference(ref string)
}

// Reference is embedded by every object that can be replaced by a "$ref".
// When Ref is set, remaining fields of the object are ignored.
type Reference struct {
	Ref string `yaml:"$ref,omitempty"`
}

func (r *Reference) reference() string {
	return r.Ref
}

func (r *Reference) setReference(ref string) {
	r.Ref = ref
}

// OpenAPI is the root of the document
type OpenAPI struct {
	Version      string                 `yaml:"openapi,omitempty"`
	Info         *Info                  `yaml:"info,omitempty"`
	Servers      []*Server              `yaml:"servers,omitempty"`
	Paths        map[string]*PathItem   `yaml:"paths,omitempty"`
	Components   *Components            `yaml:"components,omitempty"`
	Security     []SecurityRequirement  `yaml:"security,omitempty"`
	Tags         []*Tag                 `yaml:"tags,omitempty"`
	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty"`
}

// Info describes the API itself.
type Info struct {
	Title          string   `yaml:"title,omitempty"`
	Description    string   `yaml:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty"`
	License        *License `yaml:"license,omitempty"`
	Version        string   `yaml:"version,omitempty"`
}

type Contact struct {
	Name  string `yaml:"name,omitempty"`
	URL   string `yaml:"url,omitempty"`
	Email string `yaml:"email,omitempty"`
}

type License struct {
	Name string `yaml:"name,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

type Server struct {
	URL         string                     `yaml:"url,omitempty"`
	Description string                     `yaml:"description,omitempty"`
	Variables   map[string]*ServerVariable `yaml:"variables,omitempty"`
}

// ServerVariable is substituted in the server URL template
type ServerVariable struct {
	Enum        []string `yaml:"enum,omitempty"`
	Default     string   `yaml:"default,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// Components holds the reusable objects. Copies of remotely referenced objects land here.
type Components struct {
	Schemas         map[string]*Schema         `yaml:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty"`
	Examples        map[string]*Example        `yaml:"examples,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty"`
	Links           map[string]*Link           `yaml:"links,omitempty"`
	Callbacks       map[string]*Callback       `yaml:"callbacks,omitempty"`
}

// PathItem describes operations available on a single path.
type PathItem struct {
	Reference   `yaml:",inline"`
	Summary     string       `yaml:"summary,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty"`
	Servers     []*Server    `yaml:"servers,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty"`
}

type Operation struct {
	Tags         []string               `yaml:"tags,omitempty"`
	Summary      string                 `yaml:"summary,omitempty"`
	Description  string                 `yaml:"description,omitempty"`
	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty"`
	OperationID  string                 `yaml:"operationId,omitempty"`
	Parameters   []*Parameter           `yaml:"parameters,omitempty"`
	RequestBody  *RequestBody           `yaml:"requestBody,omitempty"`
	Responses    map[string]*Response   `yaml:"responses,omitempty"`
	Callbacks    map[string]*Callback   `yaml:"callbacks,omitempty"`
	Deprecated   bool                   `yaml:"deprecated,omitempty"`
	Security     []SecurityRequirement  `yaml:"security,omitempty"`
	Servers      []*Server              `yaml:"servers,omitempty"`
}

type Parameter struct {
	Reference       `yaml:",inline"`
	Name            string              `yaml:"name,omitempty"`
	In              string              `yaml:"in,omitempty"`
	Description     string              `yaml:"description,omitempty"`
	Required        bool                `yaml:"required,omitempty"`
	Deprecated      bool                `yaml:"deprecated,omitempty"`
	AllowEmptyValue bool                `yaml:"allowEmptyValue,omitempty"`
	Style           string              `yaml:"style,omitempty"`
	Explode         bool                `yaml:"explode,omitempty"`
	AllowReserved   bool                `yaml:"allowReserved,omitempty"`
	Schema          *Schema             `yaml:"schema,omitempty"`
	Example         interface{}         `yaml:"example,omitempty"`
	Examples        map[string]*Example `yaml:"examples,omitempty"`
}

type RequestBody struct {
	Reference   `yaml:",inline"`
	Description string                `yaml:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty"`
}

// MediaType pairs a schema with examples for a single content type
type MediaType struct {
	Reference `yaml:",inline"`
	Schema    *Schema              `yaml:"schema,omitempty"`
	Examples  map[string]*Example  `yaml:"examples,omitempty"`
	Encoding  map[string]*Encoding `yaml:"encoding,omitempty"`
}

type Encoding struct {
	ContentType   string             `yaml:"contentType,omitempty"`
	Headers       map[string]*Header `yaml:"headers,omitempty"`
	Style         string             `yaml:"style,omitempty"`
	Explode       bool               `yaml:"explode,omitempty"`
	AllowReserved bool               `yaml:"allowReserved,omitempty"`
}

type Response struct {
	Reference   `yaml:",inline"`
	Description string                `yaml:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty"`
	Links       map[string]*Link      `yaml:"links,omitempty"`
}

// Callback maps runtime expressions to path items called back by the API.
type Callback struct {
	Reference   `yaml:",inline"`
	Expressions map[string]*PathItem `yaml:",inline"`
}

type Example struct {
	Reference     `yaml:",inline"`
	Summary       string      `yaml:"summary,omitempty"`
	Description   string      `yaml:"description,omitempty"`
	Value         interface{} `yaml:"value,omitempty"`
	ExternalValue string      `yaml:"externalValue,omitempty"`
}

type Link struct {
	Reference    `yaml:",inline"`
	OperationRef string            `yaml:"operationRef,omitempty"`
	OperationID  string            `yaml:"operationId,omitempty"`
	Parameters   map[string]string `yaml:"parameters,omitempty"`
	Description  string            `yaml:"description,omitempty"`
}

type Header struct {
	Reference   `yaml:",inline"`
	Description string  `yaml:"description,omitempty"`
	Required    bool    `yaml:"required,omitempty"`
	Deprecated  bool    `yaml:"deprecated,omitempty"`
	Schema      *Schema `yaml:"schema,omitempty"`
}

type Tag struct {
	Name         string                 `yaml:"name,omitempty"`
	Description  string                 `yaml:"description,omitempty"`
	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty"`
}

type ExternalDocumentation struct {
	Description string `yaml:"description,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

type SecurityScheme struct {
	Reference        `yaml:",inline"`
	Type             string `yaml:"type,omitempty"`
	Description      string `yaml:"description,omitempty"`
	Name             string `yaml:"name,omitempty"`
	In               string `yaml:"in,omitempty"`
	Scheme           string `yaml:"scheme,omitempty"`
	BearerFormat     string `yaml:"bearerFormat,omitempty"`
	OpenIDConnectURL string `yaml:"openIdConnectUrl,omitempty"`
}

// SecurityRequirement maps security scheme names to required scopes
type SecurityRequirement = map[string][]string

// Schema is a subset of JSON Schema as used by OpenAPI 3.0
type Schema struct {
	Reference `yaml:",inline"`

	Title       string      `yaml:"title,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Type        string      `yaml:"type,omitempty"`
	Format      string      `yaml:"format,omitempty"`
	Default     interface{} `yaml:"default,omitempty"`
	Example     interface{} `yaml:"example,omitempty"`
	Enum        []string    `yaml:"enum,omitempty"`
	Nullable    bool        `yaml:"nullable,omitempty"`
	ReadOnly    bool        `yaml:"readOnly,omitempty"`
	WriteOnly   bool        `yaml:"writeOnly,omitempty"`
	Deprecated  bool        `yaml:"deprecated,omitempty"`

	MultipleOf       int  `yaml:"multipleOf,omitempty"`
	Maximum          int  `yaml:"maximum,omitempty"`
	ExclusiveMaximum bool `yaml:"exclusiveMaximum,omitempty"`
	Minimum          int  `yaml:"minimum,omitempty"`
	ExclusiveMinimum bool `yaml:"exclusiveMinimum,omitempty"`
	MaxLength        uint `yaml:"maxLength,omitempty"`
	MinLength        uint `yaml:"minLength,omitempty"`
	MaxItems         uint `yaml:"maxItems,omitempty"`
	MinItems         uint `yaml:"minItems,omitempty"`
	UniqueItems      bool `yaml:"uniqueItems,omitempty"`
	MaxProperties    uint `yaml:"maxProperties,omitempty"`
	MinProperties    uint `yaml:"minProperties,omitempty"`

	Pattern  string   `yaml:"pattern,omitempty"`
	Required []string `yaml:"required,omitempty"`

	Properties           map[string]*Schema `yaml:"properties,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties,omitempty"`
	Items                *Schema            `yaml:"items,omitempty"`
	AllOf                []*Schema          `yaml:"allOf,omitempty"`
	OneOf                []*Schema          `yaml:"oneOf,omitempty"`
	AnyOf                []*Schema          `yaml:"anyOf,omitempty"`
	Not                  *Schema            `yaml:"not,omitempty"`

	Discriminator *Discriminator         `yaml:"discriminator,omitempty"`
	XML           *XML                   `yaml:"xml,omitempty"`
	ExternalDocs  *ExternalDocumentation `yaml:"externalDocs,omitempty"`
}

type Discriminator struct {
	PropertyName string            `yaml:"propertyName,omitempty"`
	Mapping      map[string]string `yaml:"mapping,omitempty"`
}

type XML struct {
	Name      string `yaml:"name,omitempty"`
	Namespace string `yaml:"namespace,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Attribute bool   `yaml:"attribute,omitempty"`
	Wrapped   bool   `yaml:"wrapped,omitempty"`
}
