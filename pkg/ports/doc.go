/*
Package ports defines the driven ports (interfaces) for the firstrun engine.

These interfaces decouple the selection logic from platform detection, persistence and
content, allowing the engine to run against real platform adapters or test stubs.

# Key Interfaces

  - DefaultHandlerDetector: Answers whether the platform supports a default handler and whether this app is it.
  - InstallMetadataStore: Persists the promotion dialog counter (Memory, File or Redis).
  - PageBuilder: Materializes a PageBlueprint for a PageKind.
  - Planner: Consumer-facing plan API used by the HTTP and CLI adapters.
*/
package ports
