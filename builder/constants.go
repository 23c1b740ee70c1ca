// Package builder defines shared constants used by the point-cloud
// generators, ensuring consistent defaults and validation across them.
package builder

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodHelix is the canonical name for the Helix generator.
	MethodHelix = "Helix"
	// MethodCircle is the canonical name for the Circle generator.
	MethodCircle = "Circle"
	// MethodSwissRoll is the canonical name for the SwissRoll generator.
	MethodSwissRoll = "SwissRoll"
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Shape names accepted by Generate.
//-----------------------------------------------------------------------------

const (
	ShapeHelix     = "helix"
	ShapeCircle    = "circle"
	ShapeSwissRoll = "swissroll"
)

//-----------------------------------------------------------------------------
// Minimum Point Counts
//-----------------------------------------------------------------------------

// MinCloudPoints is the smallest point count any generator accepts: evenly
// spaced parameters over a closed interval need both endpoints.
const MinCloudPoints = 2

//-----------------------------------------------------------------------------
// Default Shape Parameters
//-----------------------------------------------------------------------------

const (
	// DefaultRadius is the helix and circle radius.
	DefaultRadius = 1.0
	// DefaultTurns is the number of helix turns; 4 turns span s ∈ [0, 8π].
	DefaultTurns = 4.0
	// DefaultHeight is the swiss-roll width along its flat axis.
	DefaultHeight = 21.0
	// DefaultNoise is the additive Gaussian noise sigma (0 = noiseless).
	DefaultNoise = 0.0
)
