/*
Package ports defines the driven ports (interfaces) of vaultmap.

These interfaces decouple the conversion service from its storage, so the
HTTP and MCP surfaces can run with an in-memory cache in development and a
shared Redis cache in production.

# Key Interfaces

  - ResultCache: keeps rendered maps keyed by a digest of the request.
*/
package ports
