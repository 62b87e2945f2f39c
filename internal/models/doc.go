// Package models defines the core domain models for tripmate.
//
// # Models
//
//   - Group: a trip party, either travelling to a destination or following a leader
//   - Request: a pending invitation recorded on a group
//   - User: a registered account, with its notification list and saved trips
//   - Notification: an invitation record appended to a user's profile
//   - Destination: a catalog entry, looked up by id or by exact coordinates
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships reference user IDs (strings) and
// group/destination IDs (int64 assigned by the store).
// 2. **Membership is explicit**: a pending request never implies membership.
// Nothing in this codebase turns a request into a member; invitees must join
// with the group code.
package models
