// meta/meta.go
package meta

// BOARD_SIZE is the default Stonehenge side length.
const BOARD_SIZE = 2

// FIRST_PLAYER moves first unless configured otherwise.
const FIRST_PLAYER = "p1"

// STRATEGY_P1 and STRATEGY_P2 are the default strategies per side.
const STRATEGY_P1 = "interactive"
const STRATEGY_P2 = "minimax-iterative"

// MAX_TURNS bounds a single game.
const MAX_TURNS = 300

// NUM_GAMES is the number of games per experiment matchup.
const NUM_GAMES = 10

// CONCURRENCY bounds how many experiment games run at once.
const CONCURRENCY = 4

// OUTPUT_DIR receives experiment records.
const OUTPUT_DIR = "experiments"

// LOG_LEVEL is a zerolog level name.
const LOG_LEVEL = "info"
