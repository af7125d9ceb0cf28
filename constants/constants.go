package constants

import (
	"os"
	"strconv"
	"strings"
)

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetPort() int {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return 8080
	}
	return port
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "INFO")
}

// GetScoreTable returns the DynamoDB table for stored scores. Empty means
// scores are only kept in memory.
func GetScoreTable() string {
	return os.Getenv("SCORE_TABLE")
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

func GetAwsRegion() string {
	return getEnv("AWS_REGION", "us-east-1")
}

func GetCorsOrigins() []string {
	return strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
}

const BeatsPerMeasure = 4

// viewport breakpoints in px
const (
	NarrowBreakpoint = 640
	MediumBreakpoint = 1024
)

const (
	StaveHeight      = 100
	StaveRowMargin   = 40
	StaveWidthOffset = 10
	// staff lines start this far below the stave y
	StaffTopOffset = 40
	StaffLineGap   = 10
)

// stems flip at B4, the middle line of the treble staff
const (
	ReferenceLetter = 'B'
	ReferenceOctave = 4
)

const (
	HighlightMargin = 4
	HighlightHeight = 80
)

// seconds
const SkipStep = 10.0
