package measurement

// DefaultData is the compiled-in ring measurement series: two ring orders
// read at five accelerating voltages each. Columns follow DefaultSchema.
var DefaultData = [][]any{
	{1, 3.0, 28.1, 26.5},
	{1, 3.5, 26.2, 24.4},
	{1, 4.0, 24.5, 22.5},
	{1, 4.5, 23.0, 21.1},
	{1, 5.0, 22.3, 20.0},
	{2, 3.0, 48.3, 46.7},
	{2, 3.5, 44.8, 43.1},
	{2, 4.0, 42.1, 40.0},
	{2, 4.5, 39.3, 37.6},
	{2, 5.0, 37.6, 35.6},
}

// Default builds the table from DefaultData.
func Default() (*Table, error) {
	return Build(DefaultData, DefaultSchema())
}
