package diagnostics

// Error codes for the minilang front end
const (
	// Lexer errors (L prefix)
	ErrUnexpectedCharacter = "L0001"
	ErrUnterminatedString  = "L0002"
	ErrInvalidNumber       = "L0003"
	ErrDigitLedIdentifier  = "L0004"
	ErrUnterminatedComment = "L0005"

	// Parser errors (P prefix)
	ErrUnexpectedToken     = "P0001"
	ErrExpectedToken       = "P0002"
	ErrInvalidExpression   = "P0003"
	ErrEmptyProgram        = "P0004"
	ErrTrailingContent     = "P0005"
	ErrMissingIdentifier   = "P0006"
	ErrInvalidAssignTarget = "P0007"
	ErrInvalidBreak        = "P0008"
	ErrMissingSemiCol      = "P0009"
	ErrMax                 = "P0010"

	// Checker errors (T prefix)
	ErrTypeMismatch     = "T0001"
	ErrUndefinedSymbol  = "T0002"
	ErrRedeclaredSymbol = "T0003"
	ErrReservedWord     = "T0004"
)
