package pack

// Configuration is the cell topology of a pack: Series cells per string to
// reach the target voltage, Parallel strings to reach the target capacity.
type Configuration struct {
	Parallel int `json:"parallel"`
	Series   int `json:"series"`
}
