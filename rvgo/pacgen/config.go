// Package pacgen generates numbering contract implementations from declarative
// enum definitions.
package pacgen

import (
	"errors"
	"fmt"
	"go/token"
	"math"

	"github.com/BurntSushi/toml"
)

type Kind string

const (
	KindException         Kind = "exception"
	KindInterrupt         Kind = "interrupt"
	KindCoreInterrupt     Kind = "core_interrupt"
	KindExternalInterrupt Kind = "external_interrupt"
	KindPriority          Kind = "priority"
	KindHartId            Kind = "hart_id"
)

type Variant struct {
	Name   string `toml:"name"`
	Number uint16 `toml:"number"`
	Doc    string `toml:"doc"`
}

// Enum is one enumeration; variants keep their declaration order.
type Enum struct {
	Name     string    `toml:"name"`
	Kind     Kind      `toml:"kind"`
	Doc      string    `toml:"doc"`
	Variants []Variant `toml:"variant"`
}

type Config struct {
	Package string `toml:"package"`
	Enums   []Enum `toml:"enum"`
}

func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return finish(&cfg, md)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode enum definitions: %w", err)
	}
	return finish(&cfg, md)
}

func finish(cfg *Config, md toml.MetaData) (*Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in enum definitions: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Max is the highest number among the variants.
func (e *Enum) Max() uint16 {
	var highest uint16
	for _, v := range e.Variants {
		if v.Number > highest {
			highest = v.Number
		}
	}
	return highest
}

func (c *Config) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if len(c.Enums) == 0 {
		return errors.New("no enums declared")
	}
	// all types and constants share the package scope
	idents := make(map[string]string)
	declare := func(name, what string) error {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return fmt.Errorf("%s %q is not an exported Go identifier", what, name)
		}
		if prev, ok := idents[name]; ok {
			return fmt.Errorf("%s %q collides with %s", what, name, prev)
		}
		idents[name] = what
		return nil
	}
	for i := range c.Enums {
		e := &c.Enums[i]
		if err := declare(e.Name, "enum"); err != nil {
			return err
		}
		if err := declare(e.Name+"Variants", "variant list"); err != nil {
			return err
		}
		if err := e.validate(declare); err != nil {
			return fmt.Errorf("enum %s: %w", e.Name, err)
		}
	}
	return nil
}

func (e *Enum) validate(declare func(name, what string) error) error {
	switch e.Kind {
	case KindException, KindInterrupt, KindCoreInterrupt, KindExternalInterrupt, KindPriority, KindHartId:
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	if len(e.Variants) == 0 {
		return errors.New("no variants declared")
	}
	numbers := make(map[uint16]string, len(e.Variants))
	for _, v := range e.Variants {
		if err := declare(v.Name, "variant"); err != nil {
			return err
		}
		if prev, ok := numbers[v.Number]; ok {
			return fmt.Errorf("variants %s and %s share number %d", prev, v.Name, v.Number)
		}
		numbers[v.Number] = v.Name
		if e.Kind == KindPriority && v.Number > math.MaxUint8 {
			return fmt.Errorf("priority %s number %d does not fit in 8 bits", v.Name, v.Number)
		}
	}
	return nil
}
