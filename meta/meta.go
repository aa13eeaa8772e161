// meta/meta.go
package meta

// MAX_MOVES caps a driven game; random Kamisado games end well before it.
const MAX_MOVES = 2000

// NUM_GAMES defines the default number of self-play games per experiment.
const NUM_GAMES = 100

// GO_ROUTINES defines the number of goroutines playing games in parallel.
const GO_ROUTINES = 8

// TEMPERATURE_MOVES is the number of opening moves sampled at temperature 1
// during self-play; later moves are played greedily.
const TEMPERATURE_MOVES = 10
