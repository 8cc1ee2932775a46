// Package consts defines application-wide constants: context keys and the
// HTTP header names used by the server.
package consts
