package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"slices"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoCharacterTypes = fmt.Errorf("%w: at least one character type must be selected", ErrInvalidInput)
	ErrNegativeLength   = fmt.Errorf("%w: password length must not be negative", ErrInvalidInput)
)

// IntSource draws integers uniformly from [0, n).
type IntSource interface {
	Intn(n int) (int, error)
}

// readerSource draws from r with rand.Int, which rejection-samples and has no modulo bias.
type readerSource struct {
	r io.Reader
}

func (s readerSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid range [0, %d)", n)
	}
	v, err := rand.Int(s.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Generator produces passwords from the character class registry.
type Generator struct {
	src IntSource
}

// NewGenerator creates a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{src: readerSource{r: rand.Reader}}
}

// NewGeneratorWithSource creates a Generator that draws from src.
func NewGeneratorWithSource(src IntSource) *Generator {
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator()

// Generate creates a password using the default crypto/rand generator.
func Generate(length int, classes []Class) (string, error) {
	return defaultGenerator.Generate(length, classes)
}

// GenerateMany creates count passwords using the default crypto/rand generator.
func GenerateMany(length int, classes []Class, count int) ([]string, error) {
	return defaultGenerator.GenerateMany(length, classes, count)
}

// RandomClassSubset picks a random non-empty class subset using the default generator.
func RandomClassSubset() ([]Class, error) {
	return defaultGenerator.RandomClassSubset()
}

// Generate draws length characters, each independently and uniformly, from the
// union of the requested classes.
func (g *Generator) Generate(length int, classes []Class) (string, error) {
	pool, err := alphabet(classes)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", ErrNegativeLength
	}
	return g.draw(pool, length)
}

// GenerateMany calls Generate count times. Identical passwords are not filtered.
func (g *Generator) GenerateMany(length int, classes []Class, count int) ([]string, error) {
	pool, err := alphabet(classes)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}

	passwords := make([]string, 0, max(count, 0))
	for i := 0; i < count; i++ {
		pw, err := g.draw(pool, length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// RandomClassSubset draws a subset size k from [1, 4], shuffles all classes
// with Fisher-Yates and keeps the first k. The result is in registry order.
func (g *Generator) RandomClassSubset() ([]Class, error) {
	all := AllClasses()

	n, err := g.src.Intn(len(all))
	if err != nil {
		return nil, fmt.Errorf("drawing subset size: %w", err)
	}
	k := n + 1

	for i := len(all) - 1; i > 0; i-- {
		j, err := g.src.Intn(i + 1)
		if err != nil {
			return nil, fmt.Errorf("shuffling classes: %w", err)
		}
		all[i], all[j] = all[j], all[i]
	}

	subset := all[:k]
	slices.Sort(subset)
	return subset, nil
}

func (g *Generator) draw(pool string, length int) (string, error) {
	result := make([]byte, length)
	for i := range result {
		idx, err := g.src.Intn(len(pool))
		if err != nil {
			return "", fmt.Errorf("drawing random index: %w", err)
		}
		result[i] = pool[idx]
	}
	return string(result), nil
}

// alphabet concatenates the character sets of the distinct classes in registry order.
func alphabet(classes []Class) (string, error) {
	var selected [len(registry)]bool
	for _, c := range classes {
		if c.Valid() {
			selected[c] = true
		}
	}

	var pool string
	for i, ok := range selected {
		if ok {
			pool += registry[i].chars
		}
	}

	if pool == "" {
		return "", ErrNoCharacterTypes
	}
	return pool, nil
}
