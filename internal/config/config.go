package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Particle Web"

	// Grid and spatial index
	GridSpacing = 75.0
	CellSize    = GridSpacing

	// Pointer interaction
	ActivationRadius = 150.0
	Ease             = 0.05

	// Drawing
	PointRadius = 3.0
	GlowBlur    = 10.0
	GlowSteps   = 5
	LineWidth   = 1.5

	// Frame pacing
	FPSLimit    = 60
	StatsWindow = 120
)
