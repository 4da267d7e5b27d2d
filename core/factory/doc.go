// Package factory provides a small generic registry used to build pluggable
// modules, such as metrics sinks, from a type name and a raw config map.
package factory
