package course

type CreatePaymentIntentReq struct {
	Price float64 `form:"price" json:"price"`
}

type CreatePaymentIntentResp struct {
	ClientSecret string `json:"clientSecret"`
}

type CreatePaymentReq struct {
	Email         string   `form:"email" json:"email" vd:"len($)>0"`
	TransactionID string   `form:"transactionId" json:"transactionId"`
	Amount        float64  `form:"amount" json:"amount"`
	Currency      string   `form:"currency" json:"currency"`
	ClassIDs      []string `form:"classIds" json:"classIds"`
}

type PaymentVO struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	TransactionID string   `json:"transactionId"`
	Amount        float64  `json:"amount"`
	Currency      string   `json:"currency"`
	ClassIDs      []string `json:"classIds,omitempty"`
}
