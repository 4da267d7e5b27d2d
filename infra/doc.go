// Package infra contains technical adapters: table readers, history stores,
// the MQTT notifier and metrics exporters. These packages should depend only
// on the interfaces defined in the core packages.
package infra
