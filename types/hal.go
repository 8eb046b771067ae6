package types

// ------------------------
// Hardware capability interfaces
// ------------------------

// DigitalInput reads the raw electrical level of one GPIO line. Logical
// interpretation (active-low etc.) is the caller's concern.
type DigitalInput interface {
	Get() bool
}

// PWMOutput accepts an 8-bit duty-cycle level. Writes are best-effort and
// fire-and-forget; a failed hardware write is unobservable.
type PWMOutput interface {
	Set(level uint8)
}

// TextDisplay is a text-mode surface addressed in character cells.
// Implementations must make printing spaces erase previously drawn glyphs
// so callers can blank a field by overprinting it.
type TextDisplay interface {
	// Clear blanks the whole surface.
	Clear()
	// SetCursor moves the write position to the given cell.
	SetCursor(col, row uint8)
	// Print writes text at the cursor and advances it.
	Print(text []byte)
}
