package types

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/servicehall/hallkeeper/internal/hall/codec"
)

// HallEntry is one persisted incident report. The ID is allocated by the
// store and doubles as the suffix of the storage key; everything else comes
// from the submission except Date (server clock at creation) and AnchorKey
// (derived, see GenerateAnchor).
type HallEntry struct {
	ID              uint64  `json:"id"`
	AnchorKey       *string `json:"anchor_key,omitempty"`
	ReferenceID     uint64  `json:"reference_id"`
	AffectedService string  `json:"affected_service"`
	Date            Date    `json:"date"`
	Summary         string  `json:"summary"`
	Reporter        string  `json:"reporter"`
	// ReporterHandle lets a reporter attach a handle, profile link, etc.
	// to be displayed by their name.
	ReporterHandle *string `json:"reporter_handle,omitempty"`
}

// GenerateAnchor derives the entry's display anchor from its current field
// values and stores it in AnchorKey. Anchors look like 2019-5B2CBFE78ED4BD69:
// the entry's year followed by the leading 64 bits of a BLAKE3 digest over
// the deterministically encoded entry.
//
// The digest covers the whole entry, AnchorKey included, so this must be
// called exactly once, before the entry is first persisted. A second call
// would hash an entry that already carries an anchor and mint a different
// one.
func (e *HallEntry) GenerateAnchor() error {
	enc, err := codec.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode entry for anchor: %w", err)
	}
	sum := blake3.Sum256(enc)
	anchor := fmt.Sprintf("%d-%X", e.Date.Year, binary.BigEndian.Uint64(sum[:8]))
	e.AnchorKey = &anchor
	return nil
}

// RecordSubmission is the request body for creating or updating an entry.
// ID is only meaningful for updates. Date is accepted but never used: on
// create the server clock is authoritative, on update the original date is
// preserved.
type RecordSubmission struct {
	ID              *uint64 `json:"id,omitempty"`
	ReferenceID     uint64  `json:"reference_id"`
	AffectedService string  `json:"affected_service"`
	Date            *Date   `json:"date,omitempty"`
	Summary         string  `json:"summary"`
	Reporter        string  `json:"reporter"`
	ReporterHandle  *string `json:"reporter_handle,omitempty"`
}
