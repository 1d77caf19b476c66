package catalog

import (
	"log/slog"

	"github.com/hupe1980/facet/codec"
	"github.com/hupe1980/facet/record"
	"github.com/hupe1980/facet/schema"
)

// Option configures a Catalog.
type Option func(*options)

type options struct {
	roles          []record.Role
	acceptFields   map[string]struct{}
	ignoreFields   map[string]struct{}
	fullyQualified bool
	leafDepth      int
	leafDepthSet   bool
	projectID      int
	projectIDSet   bool
	schema         schema.Schema
	policy         AcceptancePolicy
	codec          codec.Codec
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		roles:          []record.Role{record.RoleDisplay},
		fullyQualified: true,
		policy:         AcceptAll,
		codec:          codec.Default,
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithRoles sets the payload roles sampled on every leaf. Defaults to
// record.RoleDisplay.
func WithRoles(roles ...record.Role) Option {
	return func(o *options) {
		if len(roles) > 0 {
			o.roles = roles
		}
	}
}

// WithAcceptFields restricts the catalog to the listed fields. Entries match
// FieldID.String() or, for entity fields, FieldID.Key(). An empty list
// accepts every field.
func WithAcceptFields(fields ...string) Option {
	return func(o *options) { o.acceptFields = toSet(fields) }
}

// WithIgnoreFields excludes the listed fields. Matching works as for
// WithAcceptFields.
func WithIgnoreFields(fields ...string) Option {
	return func(o *options) { o.ignoreFields = toSet(fields) }
}

// WithFullyQualifiedNames prefixes entity field names with their entity type
// and deep-link path. Enabled by default.
func WithFullyQualifiedNames(enabled bool) Option {
	return func(o *options) { o.fullyQualified = enabled }
}

// WithLeafDepth treats the nodes at depth (0 = top level) as leaves instead of
// the childless ones. Useful for sources that load children lazily.
func WithLeafDepth(depth int) Option {
	return func(o *options) {
		o.leafDepth = depth
		o.leafDepthSet = depth >= 0
	}
}

// WithProjectID selects project-specific schema overrides.
func WithProjectID(id int) Option {
	return func(o *options) {
		o.projectID = id
		o.projectIDSet = true
	}
}

// WithSchema enables entity extraction.
func WithSchema(s schema.Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithPolicy sets the acceptance policy. Defaults to AcceptAll.
func WithPolicy(p AcceptancePolicy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithCodec sets the codec used to label composite values.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger sets the logger. Passes are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig applies a configuration document. Zero-valued settings keep
// their current value.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if len(cfg.Roles) > 0 {
			roles := make([]record.Role, len(cfg.Roles))
			for i, r := range cfg.Roles {
				roles[i] = record.Role(r)
			}
			o.roles = roles
		}
		if len(cfg.AcceptFields) > 0 {
			o.acceptFields = toSet(cfg.AcceptFields)
		}
		if len(cfg.IgnoreFields) > 0 {
			o.ignoreFields = toSet(cfg.IgnoreFields)
		}
		if cfg.FullyQualifiedNames != nil {
			o.fullyQualified = *cfg.FullyQualifiedNames
		}
		if cfg.LeafDepth != nil {
			WithLeafDepth(*cfg.LeafDepth)(o)
		}
		if cfg.ProjectID != nil {
			WithProjectID(*cfg.ProjectID)(o)
		}
		if c, ok := codec.ByName(cfg.Codec); ok {
			o.codec = c
		}
	}
}

// resolvedSchema returns the schema scoped to the configured project.
func (o *options) resolvedSchema() schema.Schema {
	if o.schema == nil || !o.projectIDSet {
		return o.schema
	}
	if ps, ok := o.schema.(schema.ProjectScoper); ok {
		return ps.ForProject(o.projectID)
	}
	return o.schema
}

func (o *options) accepts(id FieldID) bool {
	if matches(o.ignoreFields, id) {
		return false
	}
	return len(o.acceptFields) == 0 || matches(o.acceptFields, id)
}

func matches(set map[string]struct{}, id FieldID) bool {
	if len(set) == 0 {
		return false
	}
	if _, ok := set[id.String()]; ok {
		return true
	}
	if key := id.Key(); key != "" {
		_, ok := set[key]
		return ok
	}
	return false
}

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
