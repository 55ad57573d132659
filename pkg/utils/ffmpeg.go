package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// GetVideoDuration 探测视频时长（秒）
func GetVideoDuration(videoPath string) (int, error) {
	data, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to probe video")
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		return 0, errors.WithMessage(err, "failed to parse probe output")
	}

	seconds, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "invalid duration in probe output")
	}
	return int(seconds), nil
}

// GetVideoThumbnail 截取首帧作为封面
func GetVideoThumbnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "failed to create folders")
	}
	outputPath := filepath.Join(outputDir, "thumbnail.jpg")
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "failed to generate the thumbnail")
	}
	return outputPath, nil
}

// ExtractVideoFrames 按均匀间隔抽取count帧 供封面候选选择
func ExtractVideoFrames(videoPath, outputDir string, count int) ([]string, error) {
	if count <= 0 {
		count = 3
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, errors.WithMessage(err, "failed to create folders")
	}

	duration, err := GetVideoDuration(videoPath)
	if err != nil {
		return nil, err
	}

	frames := make([]string, 0, count)
	for i := 0; i < count; i++ {
		offset := duration * i / count
		outputPath := filepath.Join(outputDir, fmt.Sprintf("frame_%d.jpg", i))
		err := ffmpeg.Input(videoPath, ffmpeg.KwArgs{"ss": strconv.Itoa(offset)}).
			Output(outputPath, ffmpeg.KwArgs{"vframes": "1"}).
			OverWriteOutput().
			Run()
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to extract frame %d", i)
		}
		frames = append(frames, outputPath)
	}
	return frames, nil
}
