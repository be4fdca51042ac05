// Package schema classifies filterable product properties and declares the
// operator vocabulary that is legal for each property class.
// The built-in catalog covers the standard discount-campaign fields; an
// optional YAML file supplied by the hosting application can add to or
// override it.
package schema

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Class represents the value class of a filterable property.
type Class string

// Property classes (string values for clean JSON/YAML serialization).
const (
	ClassNumeric Class = "numeric"
	ClassSelect  Class = "select"
	ClassBoolean Class = "boolean"
	ClassText    Class = "text"
	ClassDate    Class = "date"
)

// Property describes one filterable field of the record schema.
type Property struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Class Class  `json:"class" yaml:"class"`

	// Domain lists the legal values for select properties. Empty for
	// every other class.
	Domain []string `json:"domain,omitempty" yaml:"domain,omitempty"`

	// Min and Max bound numeric properties with a fixed domain
	// (e.g. a 0-5 rating). Nil means unbounded on that side.
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// Step is the minimum distinguishable increment for numeric and date
	// properties. Strict comparisons (greater_than, less_than) tighten an
	// interval bound by exactly one step.
	Step float64 `json:"step,omitempty" yaml:"step,omitempty"`

	// NonNegative marks numeric properties that can never be below zero.
	NonNegative bool `json:"non_negative,omitempty" yaml:"non_negative,omitempty"`
}

// Registry is an immutable lookup table of filterable properties.
type Registry struct {
	props map[string]Property
}

const (
	// StepCurrency is the minimum increment for money and dimension scales.
	StepCurrency = 0.01
	// StepCount is the minimum increment for integer quantities.
	StepCount = 1
	// StepDateMillis is the minimum increment for date properties,
	// expressed in epoch milliseconds (one minute).
	StepDateMillis = 60_000
)

func floatPtr(v float64) *float64 { return &v }

// defaultCatalog is the built-in product field schema.
func defaultCatalog() []Property {
	return []Property{
		{Key: "price", Label: "Price", Class: ClassNumeric, Step: StepCurrency, NonNegative: true},
		{Key: "sale_price", Label: "Sale price", Class: ClassNumeric, Step: StepCurrency, NonNegative: true},
		{Key: "regular_price", Label: "Regular price", Class: ClassNumeric, Step: StepCurrency, NonNegative: true},
		{Key: "stock_quantity", Label: "Stock quantity", Class: ClassNumeric, Step: StepCount},
		{Key: "low_stock_amount", Label: "Low stock threshold", Class: ClassNumeric, Step: StepCount, NonNegative: true},
		{Key: "weight", Label: "Weight", Class: ClassNumeric, Step: StepCurrency, NonNegative: true},
		{Key: "length", Label: "Length", Class: ClassNumeric, Step: StepCurrency, NonNegative: true},
		{Key: "width", Label: "Width", Class: ClassNumeric, Step: StepCurrency, NonNegative: true},
		{Key: "height", Label: "Height", Class: ClassNumeric, Step: StepCurrency, NonNegative: true},
		{Key: "average_rating", Label: "Average rating", Class: ClassNumeric, Step: StepCurrency, Min: floatPtr(0), Max: floatPtr(5), NonNegative: true},
		{Key: "review_count", Label: "Review count", Class: ClassNumeric, Step: StepCount, NonNegative: true},
		{Key: "total_sales", Label: "Total sales", Class: ClassNumeric, Step: StepCount, NonNegative: true},

		{Key: "stock_status", Label: "Stock status", Class: ClassSelect, Domain: []string{"instock", "outofstock", "onbackorder"}},
		{Key: "product_type", Label: "Product type", Class: ClassSelect, Domain: []string{"simple", "variable", "grouped", "external"}},
		{Key: "tax_status", Label: "Tax status", Class: ClassSelect, Domain: []string{"taxable", "shipping", "none"}},
		{Key: "catalog_visibility", Label: "Catalog visibility", Class: ClassSelect, Domain: []string{"visible", "catalog", "search", "hidden"}},

		{Key: "featured", Label: "Featured", Class: ClassBoolean},
		{Key: "virtual", Label: "Virtual", Class: ClassBoolean},
		{Key: "downloadable", Label: "Downloadable", Class: ClassBoolean},
		{Key: "sold_individually", Label: "Sold individually", Class: ClassBoolean},
		{Key: "manage_stock", Label: "Manage stock", Class: ClassBoolean},
		{Key: "on_sale", Label: "On sale", Class: ClassBoolean},

		{Key: "name", Label: "Name", Class: ClassText},
		{Key: "sku", Label: "SKU", Class: ClassText},
		{Key: "description", Label: "Description", Class: ClassText},
		{Key: "short_description", Label: "Short description", Class: ClassText},

		{Key: "date_created", Label: "Date created", Class: ClassDate, Step: StepDateMillis},
		{Key: "date_modified", Label: "Date modified", Class: ClassDate, Step: StepDateMillis},
		{Key: "date_on_sale_from", Label: "Sale start date", Class: ClassDate, Step: StepDateMillis},
		{Key: "date_on_sale_to", Label: "Sale end date", Class: ClassDate, Step: StepDateMillis},
	}
}

// Default returns a registry preloaded with the built-in catalog.
func Default() *Registry {
	return New(defaultCatalog())
}

// New builds a registry from an explicit property list. Later entries with a
// duplicate key override earlier ones.
func New(props []Property) *Registry {
	m := make(map[string]Property, len(props))
	for _, p := range props {
		if p.Step == 0 && (p.Class == ClassNumeric || p.Class == ClassDate) {
			p.Step = StepCurrency
			if p.Class == ClassDate {
				p.Step = StepDateMillis
			}
		}
		m[p.Key] = p
	}
	return &Registry{props: m}
}

// LoadFile merges properties from a YAML file over the built-in catalog.
// The file holds a list of Property documents under a top-level
// "properties" key.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}

	var doc struct {
		Properties []Property `yaml:"properties"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema file: %w", err)
	}

	merged := append(defaultCatalog(), doc.Properties...)
	return New(merged), nil
}

// Classify looks up a property by key. Unknown keys classify as plain text,
// which carries the widest operator set and can never produce a false
// contradiction.
func (r *Registry) Classify(key string) Property {
	if p, ok := r.props[key]; ok {
		return p
	}
	return Property{Key: key, Label: key, Class: ClassText}
}

// Known reports whether key is part of the registered catalog.
func (r *Registry) Known(key string) bool {
	_, ok := r.props[key]
	return ok
}

// Properties returns every registered property in stable key order.
func (r *Registry) Properties() []Property {
	keys := make([]string, 0, len(r.props))
	for k := range r.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Property, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.props[k])
	}
	return out
}
