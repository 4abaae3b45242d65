// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and read by the ops
// HTTP adapter. Client ports are implemented by outbound adapters (the system
// clipboard) and called by the application layer.
package ports
