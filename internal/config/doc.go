// Package config holds the settings of a generation run.
//
// Settings come from an optional YAML file and are then overridden by
// command-line flags:
//
//	cs: true
//	class: Contoso.Bots.HomeAutomation
//	ts: true
//	interface: HomeAutomation
//	output: ./generated
//	log_level: debug
//
// A qualified class name carries its namespace: everything before the last
// dot is the namespace, the rest is the class.
package config
