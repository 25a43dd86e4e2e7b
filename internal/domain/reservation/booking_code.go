package reservation

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

var ErrCodeGenerationExhausted = errors.New("booking code generation exhausted")

const (
	BookingCodePrefix  = "GC-"
	bookingCodeLength  = 8
	bookingCodeSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Largest multiple of len(bookingCodeSymbols) that fits in a byte; bytes at or
	// above it are discarded so every symbol is equally likely.
	bookingCodeByteLimit = 252

	DefaultCodeMaxAttempts = 100
)

// CodeRegistry answers whether a booking code is already taken.
type CodeRegistry interface {
	BookingCodeExists(ctx context.Context, code BookingCode) (bool, error)
}

type CodeGenerator struct {
	random      io.Reader
	maxAttempts int
}

func NewCodeGenerator(maxAttempts int) *CodeGenerator {
	return NewCodeGeneratorWithSource(rand.Reader, maxAttempts)
}

func NewCodeGeneratorWithSource(random io.Reader, maxAttempts int) *CodeGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultCodeMaxAttempts
	}
	return &CodeGenerator{random: random, maxAttempts: maxAttempts}
}

// Generate draws candidates until one is not present in registry.
func (g *CodeGenerator) Generate(ctx context.Context, registry CodeRegistry) (BookingCode, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code, err := g.candidate()
		if err != nil {
			return "", err
		}

		exists, err := registry.BookingCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrCodeGenerationExhausted, g.maxAttempts)
}

func (g *CodeGenerator) candidate() (BookingCode, error) {
	out := make([]byte, 0, len(BookingCodePrefix)+bookingCodeLength)
	out = append(out, BookingCodePrefix...)

	buf := make([]byte, bookingCodeLength*2)
	for len(out) < cap(out) {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= bookingCodeByteLimit {
				continue
			}
			out = append(out, bookingCodeSymbols[int(b)%len(bookingCodeSymbols)])
			if len(out) == cap(out) {
				break
			}
		}
	}
	return BookingCode(out), nil
}
