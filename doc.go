// Package workspace provisions isolated Databricks analytics workspaces on
// Azure. Each workspace gets a dedicated spoke virtual network with two
// delegated subnets and network security groups, an optional one-way peering
// into a shared hub network, and a mandatory set of compliance tags.
//
// The package only declares resources through the Pulumi engine; it performs
// no cloud calls of its own and leaves creation order, retries and drift
// handling to the engine.
package workspace
