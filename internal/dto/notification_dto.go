package dto

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
