// Package structs holds the public DTOs, request bodies, query parameters
// and sort mappings of the habits API.
package structs
