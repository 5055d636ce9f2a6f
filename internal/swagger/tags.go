package swagger

// @Tag.name Meta
// @Tag.description Operational probes and metadata about the service.

// @Tag.name Events
// @Tag.description Browse, manage and register for events.

// @Tag.name Users
// @Tag.description Accounts, sessions and personal audit trails.
