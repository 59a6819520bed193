// Package utils holds small shared helpers.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side record ids. UUIDv7 keeps ids roughly
// time-ordered, which keeps local index pages warm; it falls back to v4 when
// v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
