// Package eventia provides top-level metadata for the Eventia API.
//
// @title Eventia API
// @version 1.4.0
// @description Event management API: organizers publish capacity-bounded events, attendees register, and an audit log records the trail.
// @BasePath /
// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization
// @description Provide the user bearer token as `Bearer <token>`.
package eventia
