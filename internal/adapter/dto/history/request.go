package history

// ListMeetingsRequest binds query parameters for the full-history endpoint.
type ListMeetingsRequest struct {
	Refresh bool `query:"refresh"`
}

// RecentMeetingsRequest binds query parameters for the recent-slice endpoint.
type RecentMeetingsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// ClearCacheRequest binds query parameters for cache invalidation.
type ClearCacheRequest struct {
	UserID string `query:"user_id"`
}
