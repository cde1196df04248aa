package catalog

import "github.com/plamix/plamix/internal/colour"

// Category tags used by the built-in catalog.
const (
	CategoryBasic     = "basic"
	CategoryMetallic  = "metallic"
	CategoryClear     = "clear"
	CategoryCharacter = "character"
)

// Builtin returns a fresh copy of the built-in pigment catalog. Lab values
// were measured from sprayed-out cards of the actual paints.
func Builtin() []colour.Pigment {
	pigments := make([]colour.Pigment, len(builtinPigments))
	copy(pigments, builtinPigments)
	return pigments
}

var builtinPigments = []colour.Pigment{
	// Mr.Color lacquers.
	{Code: "C1", Name: "Red", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 48.2, A: 68.4, B: 45.6}},
	{Code: "C2", Name: "Black", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 15.3, A: 0.2, B: 0.1}},
	{Code: "C4", Name: "Yellow", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 85.2, A: 5.8, B: 78.3}},
	{Code: "C5", Name: "Blue", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 32.4, A: -12.5, B: -38.6}},
	{Code: "C6", Name: "Green", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 45.8, A: -42.3, B: 28.6}},
	{Code: "C7", Name: "Brown", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 35.2, A: 22.4, B: 26.8}},
	{Code: "C8", Name: "Silver", Manufacturer: "Mr.Color", Category: CategoryMetallic, Colour: colour.Lab{L: 76.0, A: 0.5, B: 2.1}},
	{Code: "C9", Name: "Gold", Manufacturer: "Mr.Color", Category: CategoryMetallic, Colour: colour.Lab{L: 70.2, A: 8.4, B: 42.5}},
	{Code: "C11", Name: "Gull Gray", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 62.4, A: -1.2, B: 2.8}},
	{Code: "C13", Name: "Neutral Gray", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 55.6, A: -0.5, B: 0.8}},
	{Code: "C14", Name: "Navy Blue", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 22.8, A: -2.4, B: -18.6}},
	{Code: "C15", Name: "IJN Green (Nakajima)", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 32.6, A: -12.8, B: 16.4}},
	{Code: "C29", Name: "Hull Red", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 28.4, A: 24.6, B: 18.2}},
	{Code: "C33", Name: "Flat Black", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 14.8, A: 0.3, B: 0.2}},
	{Code: "C41", Name: "Red Brown", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 32.5, A: 18.6, B: 20.4}},
	{Code: "C44", Name: "Tan", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 72.4, A: 8.2, B: 24.6}},
	{Code: "C46", Name: "Clear", Manufacturer: "Mr.Color", Category: CategoryClear, Colour: colour.Lab{L: 88.0, A: 0.2, B: 0.5}},
	{Code: "C52", Name: "Field Gray", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 46.5, A: -3.8, B: 4.2}},
	{Code: "C58", Name: "Orange Yellow", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 78.5, A: 18.2, B: 65.4}},
	{Code: "C62", Name: "Flat White", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 92.5, A: 0.1, B: 0.2}},
	{Code: "C72", Name: "Intermediate Blue", Manufacturer: "Mr.Color", Category: CategoryBasic, Colour: colour.Lab{L: 48.5, A: -6.2, B: -18.8}},
	{Code: "C108", Name: "Character Red", Manufacturer: "Mr.Color", Category: CategoryCharacter, Colour: colour.Lab{L: 45.2, A: 58.6, B: 38.4}},
	{Code: "C109", Name: "Character White", Manufacturer: "Mr.Color", Category: CategoryCharacter, Colour: colour.Lab{L: 90.2, A: 2.4, B: 4.8}},
	{Code: "C110", Name: "Character Blue", Manufacturer: "Mr.Color", Category: CategoryCharacter, Colour: colour.Lab{L: 38.4, A: -8.5, B: -32.6}},

	// Gaia Colour.
	{Code: "EX-01", Name: "Ex-White", Manufacturer: "Gaia Colour", Category: CategoryBasic, Colour: colour.Lab{L: 93.4, A: 0.1, B: 0.3}},
	{Code: "EX-02", Name: "Ex-Black", Manufacturer: "Gaia Colour", Category: CategoryBasic, Colour: colour.Lab{L: 14.2, A: 0.1, B: 0.1}},
	{Code: "003", Name: "Bright Red", Manufacturer: "Gaia Colour", Category: CategoryBasic, Colour: colour.Lab{L: 47.2, A: 69.5, B: 44.2}},
	{Code: "004", Name: "Bright Yellow", Manufacturer: "Gaia Colour", Category: CategoryBasic, Colour: colour.Lab{L: 86.0, A: 4.2, B: 80.1}},
	{Code: "005", Name: "Bright Blue", Manufacturer: "Gaia Colour", Category: CategoryBasic, Colour: colour.Lab{L: 31.8, A: -10.4, B: -40.2}},
	{Code: "023", Name: "Emerald Green", Manufacturer: "Gaia Colour", Category: CategoryBasic, Colour: colour.Lab{L: 52.4, A: -48.6, B: 18.2}},
	{Code: "122", Name: "Star Bright Iron", Manufacturer: "Gaia Colour", Category: CategoryMetallic, Colour: colour.Lab{L: 48.6, A: 0.8, B: 4.2}},

	// Tamiya lacquers.
	{Code: "LP-1", Name: "Black", Manufacturer: "Tamiya", Category: CategoryBasic, Colour: colour.Lab{L: 15.0, A: 0.2, B: 0.1}},
	{Code: "LP-2", Name: "White", Manufacturer: "Tamiya", Category: CategoryBasic, Colour: colour.Lab{L: 92.8, A: 0.0, B: 0.3}},
	{Code: "LP-7", Name: "Pure Red", Manufacturer: "Tamiya", Category: CategoryBasic, Colour: colour.Lab{L: 47.8, A: 67.2, B: 43.5}},
	{Code: "LP-8", Name: "Pure Yellow", Manufacturer: "Tamiya", Category: CategoryBasic, Colour: colour.Lab{L: 84.6, A: 6.4, B: 79.2}},
	{Code: "LP-9", Name: "Clear", Manufacturer: "Tamiya", Category: CategoryClear, Colour: colour.Lab{L: 87.5, A: 0.1, B: 0.4}},
	{Code: "LP-11", Name: "Silver", Manufacturer: "Tamiya", Category: CategoryMetallic, Colour: colour.Lab{L: 75.2, A: 0.4, B: 1.8}},
	{Code: "LP-18", Name: "Steel", Manufacturer: "Tamiya", Category: CategoryMetallic, Colour: colour.Lab{L: 58.2, A: 0.6, B: 3.4}},
	{Code: "LP-26", Name: "Dark Green (JGSDF)", Manufacturer: "Tamiya", Category: CategoryBasic, Colour: colour.Lab{L: 30.2, A: -16.5, B: 12.4}},
	{Code: "LP-36", Name: "Dark Ghost Gray", Manufacturer: "Tamiya", Category: CategoryBasic, Colour: colour.Lab{L: 58.6, A: -1.4, B: -0.8}},
}
