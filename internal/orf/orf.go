// Package orf holds the open-reading-frame track data consumed by the track
// renderer, and its layout onto a horizontal axis.
package orf

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed reports track data that could not be used at all.
var ErrMalformed = errors.New("orf: malformed track data")

// Record is one reading frame interval on the sequence.
type Record struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Frame  int `json:"frame"`
	Length int `json:"length"`
}

func (r Record) valid(seqLen int) bool {
	return r.Start >= 0 && r.End > r.Start && r.End <= seqLen && r.Frame >= 1 && r.Frame <= 3
}

// Track is a validated set of records plus the total sequence length.
type Track struct {
	Records []Record
	Length  int
}

func (t Track) Empty() bool { return t.Length <= 0 || len(t.Records) == 0 }

// Parse decodes a JSON array of records. Invalid records are dropped one by
// one; an undecodable document or a non-positive length yields an empty track
// and an error wrapping ErrMalformed.
func Parse(data []byte, seqLen int) (Track, error) {
	if seqLen <= 0 {
		return Track{}, fmt.Errorf("%w: sequence length %d", ErrMalformed, seqLen)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return Track{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	t := Track{Length: seqLen, Records: make([]Record, 0, len(records))}
	for i, r := range records {
		if !r.valid(seqLen) {
			Logger().Debug("orf record dropped", "index", i, "start", r.Start, "end", r.End, "frame", r.Frame, "length", seqLen)
			continue
		}
		if r.Length <= 0 {
			r.Length = r.End - r.Start
		}
		t.Records = append(t.Records, r)
	}
	return t, nil
}

type document struct {
	Length int             `json:"length"`
	ORFs   json.RawMessage `json:"orfs"`
}

// Load reads a track document of the form {"length": n, "orfs": [...]}.
func Load(path string) (Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Track{}, fmt.Errorf("read track: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Track{}, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if len(doc.ORFs) == 0 {
		doc.ORFs = json.RawMessage("[]")
	}
	return Parse(doc.ORFs, doc.Length)
}
