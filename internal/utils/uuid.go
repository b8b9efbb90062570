package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for users and loan applications.
// UUIDv7 is preferred for its time-ordered layout; it falls back to a
// random v4 when v7 generation fails.
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
