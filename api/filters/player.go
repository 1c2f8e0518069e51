package filters

// URI params for the player endpoints.
type PlayerURIParams struct {
	Puuid string `uri:"puuid" binding:"required,uuid"`
}

// Query params for the player stats endpoint.
type PlayerStatsQueryParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type GetPlayerStatsFilter struct {
	Puuid string
	Limit int
}

func NewGetPlayerStatsFilter(up *PlayerURIParams, qp *PlayerStatsQueryParams) *GetPlayerStatsFilter {
	limit := qp.Limit
	if limit == 0 {
		limit = 20
	}

	return &GetPlayerStatsFilter{
		Puuid: up.Puuid,
		Limit: limit,
	}
}

// Body for the track and untrack endpoints.
type TrackPlayerBody struct {
	Name string `json:"name" binding:"required"`
	Tag  string `json:"tag" binding:"required"`
}
