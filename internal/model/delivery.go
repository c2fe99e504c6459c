package model

import "time"

// Delivery is a shipment record ("package"), optionally linked to batches
// through batch_id.package_id.
type Delivery struct {
	PackageID       int64
	Status          string
	InDeliveryTime  time.Time
	OutDeliveryTime *time.Time
	ExpeditionType  string
	WeightRescale   *int64
}

type CreateDeliveryParams struct {
	Status         string
	InDeliveryTime time.Time
	ExpeditionType string
}

// CompleteDeliveryParams records delivery completion: the out time plus the
// weight measured again on arrival.
type CompleteDeliveryParams struct {
	OutDeliveryTime time.Time
	WeightRescale   int64
}
