package constants

// Clock face geometry in face units; the face ring sits at FaceRadius
const (
	FaceRadius = 1.3

	HourMarkerInner   = 1.15
	HourMarkerOuter   = 1.25
	MinuteMarkerInner = 1.2
	MinuteMarkerOuter = 1.25

	HourHandLength   = 0.9
	MinuteHandLength = 1.1
	SecondHandLength = 1.2

	// FaceExtent is the half-size of the drawn area in face units (ring plus margin)
	FaceExtent = 1.5
)

// Marker spacing in degrees
const (
	HourMarkerStep   = 30
	MinuteMarkerStep = 6
)

// CellAspect is the height/width ratio of a terminal cell
const CellAspect = 2.0

// UI text
const (
	// ScoreLabel prefixes the alignment score readout
	ScoreLabel = "MSE"

	// TimeLayout formats simulated and event timestamps
	TimeLayout = "15:04:05"

	// TextColumnGap is the number of columns between the face and the score text
	TextColumnGap = 3
)
