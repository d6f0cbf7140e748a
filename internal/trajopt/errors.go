package trajopt

import "errors"

var (
	// ErrEmptyGuess indicates Plan was called without an initial guess.
	ErrEmptyGuess = errors.New("trajopt: empty initial guess")

	// ErrGuessShape indicates a guess whose length is not a whole number
	// of state+input blocks.
	ErrGuessShape = errors.New("trajopt: guess length must be a multiple of 8")
)
