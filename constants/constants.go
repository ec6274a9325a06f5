package constants

import "os"

// TicksPerBeat is the metric resolution of every file this tool writes.
const TicksPerBeat = 480

// DefaultVelocity is used for all note-on events.
const DefaultVelocity = 64

// Track defaults, used when neither the global section nor the track block
// sets a value. The default key (C major) lives in the key package since it
// is a composite value.
const (
	DefaultTempoBPM    = 120
	DefaultNumerator   = 4
	DefaultDenominator = 4
	DefaultInstrument  = 0
)

// MaxMIDIValue bounds pitches and program numbers.
const MaxMIDIValue = 127

// MaxMeterValue bounds time signature parts so they stay encodable in a
// single meta event byte.
const MaxMeterValue = 255

func GetServeAddr() string {
	addr := os.Getenv("JIANPU_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetS3Region() string {
	region := os.Getenv("JIANPU_S3_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

// GetS3Endpoint is only set when targeting a local stack; empty means the
// real service endpoint.
func GetS3Endpoint() string {
	return os.Getenv("JIANPU_S3_ENDPOINT")
}
