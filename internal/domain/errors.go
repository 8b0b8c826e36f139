package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")

	ErrLength       = errors.New("invalid sequence length")
	ErrAlphabet     = errors.New("sequence is not DNA")
	ErrCoreMismatch = errors.New("core mismatch")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Strand names which input site an error refers to.
type Strand string

const (
	StrandTarget Strand = "target"
	StrandDonor  Strand = "donor"
)

// LengthError reports a target or donor that is not SiteLength bases long.
type LengthError struct {
	Strand Strand
	Got    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s sequence must be %d bp, got %d", e.Strand, SiteLength, e.Got)
}

func (e *LengthError) Is(target error) bool { return target == ErrLength }

// AlphabetError reports a character outside A/C/G/T. Pos is 1-based.
type AlphabetError struct {
	Strand Strand
	Pos    int
	Char   rune
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("%s sequence is not DNA: invalid base %q at %d; allowed: A C G T", e.Strand, e.Char, e.Pos)
}

func (e *AlphabetError) Is(target error) bool { return target == ErrAlphabet }

// CoreMismatchError reports target and donor sites whose 2-bp cores differ.
type CoreMismatchError struct {
	TargetCore string
	DonorCore  string
}

func (e *CoreMismatchError) Error() string {
	return fmt.Sprintf("target core %s does not match donor core %s", e.TargetCore, e.DonorCore)
}

func (e *CoreMismatchError) Is(target error) bool { return target == ErrCoreMismatch }

// IsKind helps callers classify errors without depending on infra packages.
// Design validation errors classify as KindInvalidInput.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	if kind == KindInvalidInput {
		return IsValidationError(err)
	}
	return false
}

// IsValidationError reports whether err is one of the fatal design input errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLength) || errors.Is(err, ErrAlphabet) || errors.Is(err, ErrCoreMismatch)
}
