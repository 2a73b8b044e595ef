package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/cn/cn"
)

// BaseConfig is embedded in every component config
type BaseConfig struct {
	Classes []cn.ClassValue
	Attrs   templ.Attributes
}

// ConfigProvider interface allows generic options to work on any config
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option is a generic option function that modifies a ConfigProvider
type Option[T ConfigProvider] func(T)

// Class adds utility classes. They are merged after the component's own
// classes, so conflicting utilities override the defaults.
func Class[T ConfigProvider](classes ...cn.ClassValue) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, classes...)
	}
}

// Attr sets a raw HTML attribute (escape hatch). "class" is ignored; use Class.
func Attr[T ConfigProvider](name string, value any) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		if base.Attrs == nil {
			base.Attrs = templ.Attributes{}
		}
		base.Attrs[name] = value
	}
}

func apply[T ConfigProvider](cfg T, opts []Option[T]) T {
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// attributes merges the component classes with the caller's and returns
// the final attribute set.
func (b *BaseConfig) attributes(classes ...cn.ClassValue) templ.Attributes {
	attrs := make(templ.Attributes, len(b.Attrs)+1)
	for k, v := range b.Attrs {
		attrs[k] = v
	}
	attrs["class"] = cn.CN(append(classes, b.Classes...)...)
	return attrs
}
