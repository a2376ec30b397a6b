package rules

/*
ApplyConwayRules returns the next state of a cell from its live neighbor
count in the current generation.

A live cell survives with 2 or 3 live neighbors and otherwise dies; a dead
cell becomes alive with exactly 3 live neighbors and otherwise stays dead.
Both cases reduce to: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
