// internal/defs/tableau.go
package defs

// TableauGrid is the closing formation, one health value per cell. Zero
// cells hold corpses that disappear on their own.
var TableauGrid = [][]int{
	{1, 1, 1, 1, 1, 0, 2, 0, 2, 0, 3, 3, 3},
	{0, 0, 1, 0, 0, 0, 2, 0, 2, 0, 3, 0, 0},
	{0, 0, 1, 0, 0, 0, 2, 2, 2, 0, 3, 3, 3},
	{0, 0, 1, 0, 0, 0, 2, 0, 2, 0, 3, 0, 0},
	{0, 0, 1, 0, 0, 0, 2, 0, 2, 0, 3, 3, 3},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 2, 2, 0, 3, 0, 0, 0, 3, 0, 1, 1, 0},
	{2, 0, 0, 0, 3, 3, 0, 0, 3, 0, 1, 0, 1},
	{2, 2, 2, 0, 3, 0, 3, 0, 3, 0, 1, 0, 1},
	{2, 0, 0, 0, 3, 0, 0, 3, 3, 0, 1, 0, 1},
	{2, 2, 2, 0, 3, 0, 0, 0, 3, 0, 1, 1, 0},
}
