package course

type IssueTokenResp struct {
	Token string `json:"token"`
}
