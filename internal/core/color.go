package core

// Color is a hex RGB colour ("#rrggbb") attached to a screen cell.
// The empty string means the terminal's default foreground.
type Color string

// ColorDefault leaves the cell unstyled.
const ColorDefault Color = ""

// ColorGray is used for the border and status text drawn around the arena.
const ColorGray Color = "#8a8a8a"
