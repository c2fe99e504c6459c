package model

import "time"

// Batch is one unit of raw moringa moving through the Raw -> Wet -> Dry ->
// Powder processing stages. Only the raw stage is set at creation; the later
// stage triples are filled in as the batch progresses.
type Batch struct {
	BatchID       int64
	RawWeight     int64
	InTimeRaw     time.Time
	InTimeWet     *time.Time
	OutTimeWet    *time.Time
	WetWeight     *int64
	InTimeDry     *time.Time
	OutTimeDry    *time.Time
	DryWeight     *int64
	InTimePowder  *time.Time
	OutTimePowder *time.Time
	PowderWeight  *int64
	// Free-form status string, no transition rules.
	Status        string
	CentraID      int64
	PackageID     *int64
	WeightRescale *int64
}

type RawStage struct {
	RawWeight int64
	InTimeRaw time.Time
}

type WetStage struct {
	WetWeight  *int64
	InTimeWet  *time.Time
	OutTimeWet *time.Time
}

type DryStage struct {
	DryWeight  *int64
	InTimeDry  *time.Time
	OutTimeDry *time.Time
}

type PowderStage struct {
	PowderWeight  *int64
	InTimePowder  *time.Time
	OutTimePowder *time.Time
}

type CreateBatchParams struct {
	RawWeight int64
	Status    string
	CentraID  int64
	InTimeRaw time.Time
}

type SetWetStageParams struct {
	InTimeWet  time.Time
	OutTimeWet time.Time
	WetWeight  int64
}

type SetDryStageParams struct {
	InTimeDry  time.Time
	OutTimeDry time.Time
	DryWeight  int64
}

type SetPowderStageParams struct {
	InTimePowder  time.Time
	OutTimePowder time.Time
	PowderWeight  int64
}

// BatchWeight is the reduced view served by the recent-activity listing:
// one raw-weight entry per batch.
type BatchWeight struct {
	BatchID   int64
	RawWeight int64
	InTimeRaw time.Time
}
