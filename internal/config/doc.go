// Package config provides configuration parsing for Vellum projects.
//
// The configuration is stored in vellum.yaml at the project root.
// Every field is optional; missing fields fall back to defaults.
//
// # Configuration File Structure
//
//	name: my-app
//	documents: documents
//	theme: light
//	maxDepth: 256
//	gallery:
//	  port: 8090
//	  host: localhost
//	  watch: true
//	store:
//	  backend: fs
package config
