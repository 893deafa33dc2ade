package release_reservations

// ReleaseResponse HTTP response model
type ReleaseResponse struct {
	OwnerRef      string `json:"ownerRef"`
	ReleasedCount int64  `json:"releasedCount"`
}
