package filters

// URI params for the match endpoints.
type MatchURIParams struct {
	MatchId string `uri:"matchId" binding:"required,uuid"`
}

// Query params for the match stats endpoint.
type MatchQueryParams struct {
	// Allow forcing a fetch when the match was never processed.
	OnDemand bool `form:"onDemand"`
}

type GetMatchStatsFilter struct {
	MatchId  string
	OnDemand bool
}

func NewGetMatchStatsFilter(up *MatchURIParams, qp *MatchQueryParams) *GetMatchStatsFilter {
	return &GetMatchStatsFilter{
		MatchId:  up.MatchId,
		OnDemand: qp.OnDemand,
	}
}
