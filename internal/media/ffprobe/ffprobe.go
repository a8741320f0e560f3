package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index        int               `json:"index"`
	CodecName    string            `json:"codec_name"`
	CodecType    string            `json:"codec_type"`
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	Duration     string            `json:"duration"`
	Tags         map[string]string `json:"tags"`
	SideDataList []SideData        `json:"side_data_list"`
	Disposition  map[string]int    `json:"disposition"`
}

// SideData carries per-stream extras; only the display matrix rotation is read.
type SideData struct {
	SideDataType string  `json:"side_data_type"`
	Rotation     float64 `json:"rotation"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	Duration   string `json:"duration"`
	FormatName string `json:"format_name"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return Parse(output)
}

// Parse decodes an ffprobe JSON payload.
func Parse(payload []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// VideoDimensions returns the display size of the first video stream that
// is not an attached picture. Streams rotated by a quarter turn report their
// coded size, so width and height are swapped for them.
func (r Result) VideoDimensions() (width, height int, ok bool) {
	for _, stream := range r.Streams {
		if !strings.EqualFold(stream.CodecType, "video") || stream.Disposition["attached_pic"] == 1 {
			continue
		}
		if stream.Width <= 0 || stream.Height <= 0 {
			continue
		}
		if quarterTurn(stream.rotation()) {
			return stream.Height, stream.Width, true
		}
		return stream.Width, stream.Height, true
	}
	return 0, 0, false
}

// DurationSeconds returns the container duration in seconds, falling back to
// the longest stream duration. It returns 0 when neither is reported.
func (r Result) DurationSeconds() float64 {
	if duration := parseFloat(r.Format.Duration); duration > 0 {
		return duration
	}
	var longest float64
	for _, stream := range r.Streams {
		if duration := parseFloat(stream.Duration); duration > longest {
			longest = duration
		}
	}
	return longest
}

func (s Stream) rotation() float64 {
	for _, side := range s.SideDataList {
		if side.Rotation != 0 {
			return side.Rotation
		}
	}
	if value, ok := s.Tags["rotate"]; ok {
		return parseFloat(value)
	}
	return 0
}

func quarterTurn(degrees float64) bool {
	if math.IsNaN(degrees) {
		return false
	}
	turns := math.Mod(math.Abs(math.Round(degrees)), 180)
	return turns == 90
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
