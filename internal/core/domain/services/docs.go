// Package services contains stateless domain services for the order
// workflow. Currently this is SelectionResolver, which converts client
// selection maps into durable order lines against a point-in-time catalog
// snapshot, dropping keys that no longer resolve.
package services
