package model

// Segment is one cut in a processing plan. StartTime is either MM:SS (taken
// verbatim from a highlight) or HH:MM:SS (the default skeleton).
type Segment struct {
	StartTime   string `json:"startTime"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ProcessingPlan is a declarative description of how a downstream pipeline
// would cut a short preview from one source video. It performs no I/O; it is
// constructed once and serialized into the response.
type ProcessingPlan struct {
	VideoID         string    `json:"videoId"`
	VideoTitle      string    `json:"videoTitle"`
	VideoURL        string    `json:"videoUrl"`
	OutputFormat    string    `json:"outputFormat"`
	ClipSpeed       float64   `json:"clipSpeed"`
	AddCaptions     bool      `json:"addCaptions"`
	Segments        []Segment `json:"segments"`
	ProcessingSteps []string  `json:"processingSteps"`
	ProcessingCode  string    `json:"processingCode"`
}

// CompilationEntry is one source video's contribution to a compilation.
type CompilationEntry struct {
	YoutubeID  string               `json:"youtube_id"`
	Title      string               `json:"title"`
	Channel    string               `json:"channel"`
	Timestamps []HighlightTimestamp `json:"timestamps"`
}

// CompilationPlan generalizes ProcessingPlan to many videos. TargetDuration
// is advisory metadata for the simulated pipeline; nothing is trimmed or
// validated against it.
type CompilationPlan struct {
	Title              string             `json:"title"`
	Videos             []CompilationEntry `json:"videos"`
	TargetDuration     int                `json:"targetDuration"`
	ProcessingSteps    []string           `json:"processingSteps"`
	FFmpegInstructions string             `json:"ffmpegInstructions"`
}
