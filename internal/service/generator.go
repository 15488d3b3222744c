package service

import (
	"errors"
	"log/slog"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

const (
	MinLength     = 1
	MaxLength     = 256
	DefaultLength = 16
)

var (
	ErrLengthOutOfRange = errors.New("password length must be between 1-256")
	ErrInvalidCount     = errors.New("count must be at least 1")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService backed by crypto/rand.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: crypto.NewGenerator()}
}

// NewGeneratorServiceWith creates a GeneratorService using gen.
func NewGeneratorServiceWith(gen *crypto.Generator) *GeneratorService {
	return &GeneratorService{gen: gen}
}

// Generate validates the request, resolves its character classes and produces
// req.Count passwords.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := ValidateLength(req.Length); err != nil {
		return model.GenerateResponse{}, err
	}
	if err := ValidateCount(req.Count); err != nil {
		return model.GenerateResponse{}, err
	}

	classes, err := s.resolveClasses(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	slog.Debug("generating passwords",
		"length", req.Length,
		"count", req.Count,
		"classes", crypto.ClassNames(classes),
		"random", req.Random,
	)

	passwords, err := s.gen.GenerateMany(req.Length, classes, req.Count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passwords:  passwords,
		Classes:    classes,
		Randomized: req.Random,
	}, nil
}

// RandomClasses picks a random non-empty set of classes.
func (s *GeneratorService) RandomClasses() ([]crypto.Class, error) {
	return s.gen.RandomClassSubset()
}

func (s *GeneratorService) resolveClasses(req model.GenerateRequest) ([]crypto.Class, error) {
	if req.Random {
		return s.gen.RandomClassSubset()
	}
	if len(req.Classes) == 0 {
		return crypto.AllClasses(), nil
	}
	return req.Classes, nil
}

// ValidateLength checks that length is within [MinLength, MaxLength].
func ValidateLength(length int) error {
	if length < MinLength || length > MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// ValidateCount checks that at least one password is requested.
func ValidateCount(count int) error {
	if count < 1 {
		return ErrInvalidCount
	}
	return nil
}

// IsValidationError reports whether err was caused by invalid user input
// rather than a failure of the random source.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthOutOfRange) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, crypto.ErrInvalidInput)
}
