// Package model contains domain records passed between agents.
package model

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// UploadedFile is a schedule image upload after validation and decoding.
type UploadedFile struct {
	TeamID       int64     // owning team identifier
	Content      []byte    // decoded image bytes
	FileName     string    // client-reported file name
	DeclaredSize int64     // size the client claimed, 0 if unset
	MIMEType     string    // client-reported MIME type
	UploadedAt   time.Time // upload timestamp, zero if unset
}

// Size returns the decoded content length in bytes.
func (f *UploadedFile) Size() int64 {
	return int64(len(f.Content))
}

// UploadInput carries the raw fields of an incoming upload before validation.
type UploadInput struct {
	TeamID       int64
	FileName     string
	MIMEType     string
	Content      string // base64-encoded bytes
	DeclaredSize int64
	UploadedAt   string // RFC3339 when set
}

// DecodeUpload validates in and decodes its base64 content. maxBytes caps
// the decoded size; 0 disables the cap. All failures carry ErrDecode so
// callers can classify them without string matching.
func DecodeUpload(in UploadInput, maxBytes int64) (*UploadedFile, error) {
	if in.TeamID <= 0 {
		return nil, fmt.Errorf("%w: team_id must be a positive integer", ErrDecode)
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: empty file content", ErrDecode)
	}

	raw, err := base64.StdEncoding.DecodeString(in.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 content: %v", ErrDecode, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty file content", ErrDecode)
	}
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return nil, fmt.Errorf("%w: content is %d bytes, cap is %d", ErrDecode, len(raw), maxBytes)
	}
	// A declared size that disagrees with the payload means the upload was
	// truncated or corrupted in transit.
	if in.DeclaredSize > 0 && in.DeclaredSize != int64(len(raw)) {
		return nil, fmt.Errorf("%w: declared size %d does not match decoded size %d", ErrDecode, in.DeclaredSize, len(raw))
	}

	var uploadedAt time.Time
	if strings.TrimSpace(in.UploadedAt) != "" {
		uploadedAt, err = time.Parse(time.RFC3339, in.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid upload timestamp: %v", ErrDecode, err)
		}
	}

	return &UploadedFile{
		TeamID:       in.TeamID,
		Content:      raw,
		FileName:     in.FileName,
		DeclaredSize: in.DeclaredSize,
		MIMEType:     in.MIMEType,
		UploadedAt:   uploadedAt,
	}, nil
}
