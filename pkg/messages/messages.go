package messages

const (
	AccountNotFound  = "couldn't find the account %s#%s"
	BadStatusCodeMsg = "API returned status code %d on URL %s"
	FailedToParseMsg = "failed to parse API response"
	MatchNotFound    = "couldn't find the match %s"
	RequestFailedMsg = "API request failed on URL %s"
)
