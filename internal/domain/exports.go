package domain

import (
	interfaces "twodes/internal/domain/interfaces"
	types "twodes/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Vector   = types.Vector
	Corpus   = types.Corpus
	Mismatch = types.Mismatch
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Oracle = interfaces.Oracle
)
