package main

import (
	"io"
	"os"
	"regexp"
	"strings"

	"bwestbro.com/gparse/extract"
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// RawExtractor is an extractor as written in the config file
type RawExtractor struct {
	Name        string
	Link        string
	Kind        string
	Pattern     string
	Group       string
	Label       string
	Activator   string
	Deactivator string
	Scale       float64
	Restart     bool
}

type RawConf struct {
	Quantities []string
	Format     string
	Workers    int
	Extractor  []RawExtractor
}

// Custom is a compiled user-defined extractor
type Custom struct {
	Name        string
	Link        extract.SectionID
	Kind        extract.Kind
	Pattern     *regexp.Regexp
	Group       string
	Label       string
	Activator   *regexp.Regexp
	Deactivator *regexp.Regexp
	Scale       float64
	Restart     bool
}

// New returns a fresh extractor for c
func (c Custom) New(opts ...extract.Option) *extract.Extractor {
	var col *extract.Collector
	switch c.Kind {
	case extract.Scalars:
		col = extract.NewScalars(c.Pattern, c.Group)
	case extract.Vectors:
		col = extract.NewVectors(c.Label)
	case extract.Symmetric:
		col = extract.NewSymmetric()
	case extract.Geometries:
		col = extract.NewGeometries(c.Pattern, c.Scale)
	}
	col.Restart = c.Restart
	if c.Activator != nil {
		opts = append([]extract.Option{
			extract.WithWindow(c.Activator, c.Deactivator),
		}, opts...)
	}
	return extract.New(c.Name, c.Link, col, opts...)
}

type Config struct {
	Quantities []string
	Format     string
	Workers    int
	Custom     []Custom
}

// Wants reports whether the quantity called name was asked for
func (c Config) Wants(name string) bool {
	for _, q := range c.Quantities {
		if q == name {
			return true
		}
	}
	return false
}

// Extractors returns fresh extractors for one pass, the presets
// followed by the custom ones, each gated on whether it was asked for
func (c Config) Extractors(opts ...extract.Option) []*extract.Extractor {
	ret := make([]*extract.Extractor, 0, len(extract.Presets())+len(c.Custom))
	gated := func(name string) []extract.Option {
		want := c.Wants(name)
		o := make([]extract.Option, 0, len(opts)+1)
		o = append(o, opts...)
		return append(o, extract.WithCondition(func() bool { return want }))
	}
	for _, name := range extract.Presets() {
		e, err := extract.Preset(name, gated(name)...)
		if err != nil {
			panic(err)
		}
		ret = append(ret, e)
	}
	for _, cu := range c.Custom {
		ret = append(ret, cu.New(gated(cu.Name)...))
	}
	return ret
}

var kinds = map[string]extract.Kind{
	"":           extract.Scalars,
	"scalars":    extract.Scalars,
	"vectors":    extract.Vectors,
	"symmetric":  extract.Symmetric,
	"geometries": extract.Geometries,
}

func compile(field, expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", field)
	}
	return re, nil
}

func (re RawExtractor) toCustom() (c Custom, err error) {
	if re.Name == "" || re.Link == "" {
		return c, errors.New("extractor needs a name and a link")
	}
	kind, ok := kinds[strings.ToLower(re.Kind)]
	if !ok {
		return c, errors.Newf("unknown kind %q", re.Kind)
	}
	c = Custom{
		Name:    re.Name,
		Link:    extract.SectionID(re.Link),
		Kind:    kind,
		Group:   re.Group,
		Label:   re.Label,
		Scale:   re.Scale,
		Restart: re.Restart,
	}
	if c.Group == "" {
		c.Group = "value"
	}
	if c.Scale == 0 {
		c.Scale = 1
	}
	if c.Pattern, err = compile("pattern", re.Pattern); err != nil {
		return
	}
	if c.Activator, err = compile("activator", re.Activator); err != nil {
		return
	}
	if c.Deactivator, err = compile("deactivator", re.Deactivator); err != nil {
		return
	}
	switch kind {
	case extract.Scalars:
		if c.Pattern == nil || c.Pattern.SubexpIndex(c.Group) < 0 {
			return c, errors.Newf(
				"scalars need a pattern with a (?P<%s>...) group",
				c.Group)
		}
	case extract.Geometries:
		if c.Pattern == nil || c.Pattern.SubexpIndex("x") < 0 ||
			c.Pattern.SubexpIndex("y") < 0 ||
			c.Pattern.SubexpIndex("z") < 0 {
			return c, errors.New(
				"geometries need a pattern with x, y and z groups")
		}
	case extract.Vectors:
		if c.Label == "" {
			return c, errors.New("vectors need a label")
		}
	}
	if c.Deactivator != nil && c.Activator == nil {
		return c, errors.New("deactivator without an activator")
	}
	return c, nil
}

func (rc RawConf) ToConfig() (conf Config, err error) {
	conf.Format = rc.Format
	conf.Workers = rc.Workers
	names := make(map[string]bool)
	for _, p := range extract.Presets() {
		names[p] = true
	}
	for _, re := range rc.Extractor {
		c, err := re.toCustom()
		if err != nil {
			return conf, errors.Wrapf(err, "extractor %q", re.Name)
		}
		if names[c.Name] {
			return conf, errors.Newf("extractor %q defined twice", c.Name)
		}
		names[c.Name] = true
		conf.Custom = append(conf.Custom, c)
	}
	conf.Quantities = rc.Quantities
	if len(conf.Quantities) == 0 {
		conf.Quantities = extract.Presets()
		for _, c := range conf.Custom {
			conf.Quantities = append(conf.Quantities, c.Name)
		}
	}
	for _, q := range conf.Quantities {
		if !names[q] {
			return conf, errors.WithHintf(
				errors.Wrapf(extract.ErrUnknownPreset, "%q", q),
				"known quantities are %s",
				strings.Join(extract.Presets(), ", "),
			)
		}
	}
	return conf, nil
}

// DefaultConfig extracts every preset quantity as text
func DefaultConfig() RawConf {
	return RawConf{
		Format:  "text",
		Workers: 4,
	}
}

// readRawConf reads a TOML config from filename on top of the
// defaults
func readRawConf(filename string) (RawConf, error) {
	rc := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return rc, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	cont, err := io.ReadAll(f)
	if err != nil {
		return rc, errors.Wrap(err, "reading config")
	}
	err = toml.Unmarshal(cont, &rc)
	if err != nil {
		return rc, errors.Wrapf(err, "parsing config %s", filename)
	}
	return rc, nil
}

// LoadConfig reads and checks the TOML config in filename
func LoadConfig(filename string) (Config, error) {
	rc, err := readRawConf(filename)
	if err != nil {
		return Config{}, err
	}
	return rc.ToConfig()
}
