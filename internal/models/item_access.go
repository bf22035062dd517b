package models

import "time"

// ItemAccess is the state behind an access token for a linked bank item.
// The server keeps no item store: this struct is sealed into the access
// token itself and opened again on every transactions fetch.
type ItemAccess struct {
	ItemID        string    `json:"item_id"`
	InstitutionID string    `json:"institution_id"`
	CreatedAt     time.Time `json:"created_at"`
}
