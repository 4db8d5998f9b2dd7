// Package gallery serves the example gallery: a small HTTP server that
// lists stored documents, validates them through the serialization engine
// before serving, accepts uploads, and pushes live-reload notifications to
// connected viewers when a watched document file changes.
//
// The gallery is tooling around the engine, not part of it; the engine
// stays transport-free. Decoding is done server-side only to reject broken
// documents early and to observe decode latency.
package gallery
